package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
)

type StatusCategory struct {
	Status   string
	Category match.Category
	Badge    string
}

type ScheduleService struct {
	records SnapshotReader
}

func NewScheduleService(records SnapshotReader) *ScheduleService {
	return &ScheduleService{records: records}
}

// Matches joins both sides of every match to the current teams, optionally filtered by status label.
func (s *ScheduleService) Matches(ctx context.Context, status string) ([]snapshot.MatchView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Matches")
	defer span.End()

	status = strings.TrimSpace(status)
	if status != "" && !match.IsKnownStatus(status) {
		return nil, fmt.Errorf("%w: unknown match status=%s", ErrInvalidInput, status)
	}

	return matchViews(s.records.Current(), status), nil
}

func (s *ScheduleService) Champions(ctx context.Context) []snapshot.ChampionView {
	_, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Champions")
	defer span.End()

	return championViews(s.records.Current())
}

func (s *ScheduleService) Statuses(ctx context.Context) []StatusCategory {
	_, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Statuses")
	defer span.End()

	statuses := match.Statuses()
	out := make([]StatusCategory, 0, len(statuses))
	for _, status := range statuses {
		category := match.Classify(status)
		out = append(out, StatusCategory{Status: status, Category: category, Badge: category.Badge()})
	}
	return out
}

func matchViews(snap *snapshot.Snapshot, status string) []snapshot.MatchView {
	idx := snap.TeamIndex()
	out := make([]snapshot.MatchView, 0, len(snap.Matches))
	for _, item := range snap.Matches {
		if status != "" && strings.TrimSpace(item.Status) != status {
			continue
		}
		out = append(out, idx.Match(item))
	}
	return out
}

func championViews(snap *snapshot.Snapshot) []snapshot.ChampionView {
	idx := snap.TeamIndex()
	out := make([]snapshot.ChampionView, 0, len(snap.Champions))
	for _, item := range snap.Champions {
		out = append(out, idx.Champion(item))
	}
	return out
}
