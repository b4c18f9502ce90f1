package usecase

import (
	"context"
	"sync/atomic"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// stubRecordBackend serves the five snapshot reads and the players endpoint.
// Mutations are not implemented; the embedded nil interface panics if one is called.
type stubRecordBackend struct {
	LeagueBackend

	teams       func(ctx context.Context) ([]team.Team, error)
	matches     []match.Match
	champions   []champion.Champion
	info        league.Info
	regulations league.Regulations
	players     func(ctx context.Context, division string) ([]player.Player, error)

	playerCalls atomic.Int32
}

func (s *stubRecordBackend) ListTeams(ctx context.Context) ([]team.Team, error) {
	if s.teams == nil {
		return nil, nil
	}
	return s.teams(ctx)
}

func (s *stubRecordBackend) ListMatches(context.Context) ([]match.Match, error) {
	return s.matches, nil
}

func (s *stubRecordBackend) ListChampions(context.Context) ([]champion.Champion, error) {
	return s.champions, nil
}

func (s *stubRecordBackend) GetLeagueInfo(context.Context) (league.Info, error) {
	return s.info, nil
}

func (s *stubRecordBackend) GetRegulations(context.Context) (league.Regulations, error) {
	return s.regulations, nil
}

func (s *stubRecordBackend) ListPlayers(ctx context.Context, division string) ([]player.Player, error) {
	s.playerCalls.Add(1)
	if s.players == nil {
		return []player.Player{}, nil
	}
	return s.players(ctx, division)
}

type staticSnapshot struct {
	snap *snapshot.Snapshot
}

func (s staticSnapshot) Current() *snapshot.Snapshot {
	return s.snap
}

func strPtr(v string) *string {
	return &v
}
