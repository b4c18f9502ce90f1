package usecase

import (
	"context"

	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// LeaderboardSource is the part of PlayerService the landing page needs.
type LeaderboardSource interface {
	Leaderboards(ctx context.Context, filter string, limit int) ([]Leaderboard, error)
}

// Overview is everything the landing page renders, built from a single snapshot.
type Overview struct {
	Summary      snapshot.Summary
	Info         league.Info
	Regulations  league.Regulations
	Standings    []DivisionTable
	Matches      []snapshot.MatchView
	Champions    []snapshot.ChampionView
	Leaderboards []Leaderboard
	// LeaderboardsUnavailable is set when the players endpoint failed; the rest is still served.
	LeaderboardsUnavailable bool
}

type LeagueService struct {
	records SnapshotReader
	players LeaderboardSource
	profile league.Profile
	logger  *logging.Logger
}

func NewLeagueService(records SnapshotReader, players LeaderboardSource, profile league.Profile, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		records: records,
		players: players,
		profile: profile,
		logger:  logger,
	}
}

func (s *LeagueService) Info(ctx context.Context) league.Info {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.Info")
	defer span.End()

	return s.records.Current().Info.WithDefaults()
}

func (s *LeagueService) Regulations(ctx context.Context) league.Regulations {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.Regulations")
	defer span.End()

	return s.records.Current().Regulations.WithDefaults()
}

func (s *LeagueService) Overview(ctx context.Context) Overview {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Overview")
	defer span.End()

	snap := s.records.Current()
	out := Overview{
		Summary:     snap.Summary(),
		Info:        snap.Info.WithDefaults(),
		Regulations: snap.Regulations.WithDefaults(),
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(context.Context) error {
		out.Standings = tablesFor(snap, s.profile)
		return nil
	})
	p.Go(func(context.Context) error {
		out.Matches = matchViews(snap, "")
		return nil
	})
	p.Go(func(context.Context) error {
		out.Champions = championViews(snap)
		return nil
	})
	if s.players != nil {
		p.Go(func(ctx context.Context) error {
			boards, err := s.players.Leaderboards(ctx, league.PlayerFilterAll, -1)
			if err != nil {
				s.logger.WarnContext(ctx, "overview leaderboards unavailable", "error", err)
				out.LeaderboardsUnavailable = true
				return nil
			}
			out.Leaderboards = boards
			return nil
		})
	}
	_ = p.Wait()

	return out
}
