package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/standing"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// SnapshotReader exposes the committed snapshot to read-side services.
type SnapshotReader interface {
	Current() *snapshot.Snapshot
}

type DivisionTable struct {
	Division league.Division
	Rows     []standing.Row
}

type StandingsService struct {
	records SnapshotReader
	profile league.Profile
}

func NewStandingsService(records SnapshotReader, profile league.Profile) *StandingsService {
	return &StandingsService{records: records, profile: profile}
}

func (s *StandingsService) Divisions(ctx context.Context) []league.Division {
	_, span := startUsecaseSpan(ctx, "usecase.StandingsService.Divisions")
	defer span.End()

	return append([]league.Division(nil), s.profile.Divisions...)
}

// Teams returns the snapshot teams in backend order, optionally limited to one division.
func (s *StandingsService) Teams(ctx context.Context, division string) ([]team.Team, error) {
	_, span := startUsecaseSpan(ctx, "usecase.StandingsService.Teams")
	defer span.End()

	teams := s.records.Current().Teams
	division = strings.TrimSpace(division)
	if division == "" {
		return append([]team.Team{}, teams...), nil
	}
	out := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		if item.Division == division {
			out = append(out, item)
		}
	}
	return out, nil
}

// Table ranks one division. Public and admin views share this ordering.
func (s *StandingsService) Table(ctx context.Context, division string) (DivisionTable, error) {
	_, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	division = strings.TrimSpace(division)
	if division == "" {
		return DivisionTable{}, fmt.Errorf("%w: division is required", ErrInvalidInput)
	}
	teams := s.records.Current().Teams
	meta, ok := s.profile.Division(division)
	if !ok {
		// divisions are an open set; one the profile does not list still ranks if teams use it
		if !hasDivision(teams, division) {
			return DivisionTable{}, fmt.Errorf("%w: unknown division=%s", ErrNotFound, division)
		}
		meta = league.Division{Code: division, Title: division}
	}

	return DivisionTable{
		Division: meta,
		Rows:     standing.Table(teams, meta.Code),
	}, nil
}

// Tables ranks every profile division from the same snapshot.
func (s *StandingsService) Tables(ctx context.Context) []DivisionTable {
	_, span := startUsecaseSpan(ctx, "usecase.StandingsService.Tables")
	defer span.End()

	return tablesFor(s.records.Current(), s.profile)
}

func tablesFor(snap *snapshot.Snapshot, profile league.Profile) []DivisionTable {
	out := make([]DivisionTable, 0, len(profile.Divisions))
	for _, division := range profile.Divisions {
		out = append(out, DivisionTable{
			Division: division,
			Rows:     standing.Table(snap.Teams, division.Code),
		})
	}
	return out
}

func hasDivision(teams []team.Team, division string) bool {
	for _, item := range teams {
		if item.Division == division {
			return true
		}
	}
	return false
}
