package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/phl-league/internal/domain/leaderboard"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/platform/cache"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
)

const playerCachePrefix = "players:"

type PlayerView struct {
	Player player.Player
	Team   snapshot.TeamRef
	Icon   string
	Points int
}

type Leaderboard struct {
	Stat    leaderboard.Stat
	Filter  string
	Players []PlayerView
}

type WarmResult struct {
	Loaded int
	Failed int
}

// PlayerService serves roster and leaderboard views. Players are not part of the
// record snapshot; each division filter is cached separately.
type PlayerService struct {
	backend LeagueBackend
	records SnapshotReader
	profile league.Profile
	cache   *cache.Store[[]player.Player]
	logger  *logging.Logger
}

func NewPlayerService(backend LeagueBackend, records SnapshotReader, profile league.Profile, store *cache.Store[[]player.Player], logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		backend: backend,
		records: records,
		profile: profile,
		cache:   store,
		logger:  logger,
	}
}

func (s *PlayerService) List(ctx context.Context, filter string) ([]PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	players, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.decorate(players), nil
}

// Leaderboards returns the goals and assists rankings for one filter. limit < 0 uses the
// profile size and limit == 0 returns the full ranking.
func (s *PlayerService) Leaderboards(ctx context.Context, filter string, limit int) ([]Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Leaderboards")
	defer span.End()

	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	players, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Leaderboard, 0, 2)
	for _, stat := range []leaderboard.Stat{leaderboard.StatGoals, leaderboard.StatAssists} {
		out = append(out, s.board(players, stat, filter, limit))
	}
	return out, nil
}

func (s *PlayerService) Leaderboard(ctx context.Context, rawStat, filter string, limit int) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Leaderboard")
	defer span.End()

	stat, err := leaderboard.ParseStat(rawStat)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter, err = s.normalizeFilter(filter)
	if err != nil {
		return Leaderboard{}, err
	}
	players, err := s.load(ctx, filter)
	if err != nil {
		return Leaderboard{}, err
	}
	return s.board(players, stat, filter, limit), nil
}

// Invalidate drops every cached roster so the next read goes to the backend.
func (s *PlayerService) Invalidate(ctx context.Context) {
	s.cache.DeletePrefix(ctx, playerCachePrefix)
}

// Warm reloads every filter in parallel and overwrites the cache with fresh rows.
// Failures keep the previous cache entry and are only logged.
func (s *PlayerService) Warm(ctx context.Context) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Warm")
	defer span.End()

	filters := s.profile.FilterCodes()
	workerPool, err := ants.NewPool(len(filters))
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var loaded, failed atomic.Int32
	var workers sync.WaitGroup
	for _, filter := range filters {
		filter := filter
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			players, err := s.backend.ListPlayers(ctx, backendDivision(filter))
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm player cache failed", "filter", filter, "error", err)
				return
			}
			s.cache.Set(ctx, playerCachePrefix+filter, players)
			loaded.Add(1)
		}); err != nil {
			workers.Done()
			return WarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return WarmResult{Loaded: int(loaded.Load()), Failed: int(failed.Load())}, nil
}

func (s *PlayerService) normalizeFilter(filter string) (string, error) {
	normalized, err := s.profile.NormalizePlayerFilter(filter)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return normalized, nil
}

func (s *PlayerService) load(ctx context.Context, filter string) ([]player.Player, error) {
	players, err := s.cache.GetOrLoad(ctx, playerCachePrefix+filter, func(ctx context.Context) ([]player.Player, error) {
		return s.backend.ListPlayers(ctx, backendDivision(filter))
	})
	if err != nil {
		return nil, fmt.Errorf("list players filter=%s: %w", filter, err)
	}
	return players, nil
}

func (s *PlayerService) board(players []player.Player, stat leaderboard.Stat, filter string, limit int) Leaderboard {
	if limit < 0 {
		limit = s.profile.LeaderboardSize
	}
	ranked := leaderboard.Top(leaderboard.Rank(players, stat), limit)
	return Leaderboard{Stat: stat, Filter: filter, Players: s.decorate(ranked)}
}

func (s *PlayerService) decorate(players []player.Player) []PlayerView {
	idx := s.records.Current().TeamIndex()
	out := make([]PlayerView, 0, len(players))
	for _, item := range players {
		out = append(out, PlayerView{
			Player: item,
			Team:   idx.ResolvePlayerTeam(item),
			Icon:   player.IconFor(item.Position),
			Points: item.Points(),
		})
	}
	return out
}

// backendDivision maps a filter code to the players endpoint parameter; "all" sends none.
func backendDivision(filter string) string {
	if filter == league.PlayerFilterAll {
		return ""
	}
	return filter
}
