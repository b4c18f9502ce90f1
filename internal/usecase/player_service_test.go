package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/leaderboard"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/platform/cache"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
)

func samplePlayers() []player.Player {
	return []player.Player{
		{ID: 1, Nickname: "P1", Position: "Нападающий", TeamName: "A", Goals: 5, Assists: 1},
		{ID: 2, Nickname: "P2", Position: "Защитник", TeamName: "Нет в таблице", TeamLogo: strPtr("https://cdn/own.png"), Goals: 5, Assists: 3},
		{ID: 3, Nickname: "P3", Position: "Goalie", TeamName: "B", Goals: 9, Assists: 0},
	}
}

func newPlayerServiceForTest(backend *stubRecordBackend) *PlayerService {
	return NewPlayerService(
		backend,
		staticSnapshot{snap: sampleSnapshot()},
		league.DefaultProfile(),
		cache.NewStore[[]player.Player](time.Minute),
		logging.NewNop(),
	)
}

func TestPlayerService_LeaderboardRanksStableByStat(t *testing.T) {
	t.Parallel()

	backend := &stubRecordBackend{players: func(context.Context, string) ([]player.Player, error) {
		return samplePlayers(), nil
	}}
	service := newPlayerServiceForTest(backend)

	goals, err := service.Leaderboard(context.Background(), "goals", "", 0)
	if err != nil {
		t.Fatalf("goals leaderboard: %v", err)
	}
	if ids := viewIDs(goals.Players); ids != "3,1,2" {
		t.Fatalf("unexpected goals order %s", ids)
	}

	assists, err := service.Leaderboard(context.Background(), "assists", "all", 0)
	if err != nil {
		t.Fatalf("assists leaderboard: %v", err)
	}
	if ids := viewIDs(assists.Players); ids != "2,1,3" {
		t.Fatalf("unexpected assists order %s", ids)
	}
	if backend.playerCalls.Load() != 1 {
		t.Fatalf("expected cached roster to be reused, got %d backend calls", backend.playerCalls.Load())
	}

	if _, err := service.Leaderboard(context.Background(), "points", "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown stat, got %v", err)
	}
}

func TestPlayerService_LeaderboardsUseProfileSizeByDefault(t *testing.T) {
	t.Parallel()

	backend := &stubRecordBackend{players: func(context.Context, string) ([]player.Player, error) {
		return samplePlayers(), nil
	}}
	service := NewPlayerService(backend, staticSnapshot{snap: sampleSnapshot()}, league.Profile{
		Divisions:       league.DefaultProfile().Divisions,
		PlayerFilters:   league.DefaultProfile().PlayerFilters,
		LeaderboardSize: 2,
	}, cache.NewStore[[]player.Player](time.Minute), logging.NewNop())

	boards, err := service.Leaderboards(context.Background(), "A", -1)
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}
	if len(boards) != 2 || boards[0].Stat != leaderboard.StatGoals || boards[1].Stat != leaderboard.StatAssists {
		t.Fatalf("unexpected boards: %+v", boards)
	}
	if len(boards[0].Players) != 2 || boards[0].Filter != "A" {
		t.Fatalf("expected top-2 for filter A, got %+v", boards[0])
	}
}

func TestPlayerService_ListDecoratesPlayers(t *testing.T) {
	t.Parallel()

	var gotDivision string
	backend := &stubRecordBackend{players: func(_ context.Context, division string) ([]player.Player, error) {
		gotDivision = division
		return samplePlayers(), nil
	}}
	service := newPlayerServiceForTest(backend)

	views, err := service.List(context.Background(), "B")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotDivision != "B" {
		t.Fatalf("expected division B to reach the backend, got %q", gotDivision)
	}
	if views[0].Icon != player.IconForward || views[0].Points != 6 || views[0].Team.LogoURL == nil {
		t.Fatalf("unexpected first view: %+v", views[0])
	}
	if views[1].Team.Found || views[1].Team.LogoURL == nil || *views[1].Team.LogoURL != "https://cdn/own.png" {
		t.Fatalf("expected player's own logo as fallback: %+v", views[1].Team)
	}
	if views[2].Icon != player.IconGoalie {
		t.Fatalf("unexpected goalie icon %q", views[2].Icon)
	}

	if _, err := service.List(context.Background(), "C"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown filter, got %v", err)
	}
}

func TestPlayerService_WarmAndInvalidate(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[string]int{}
	backend := &stubRecordBackend{players: func(_ context.Context, division string) ([]player.Player, error) {
		mu.Lock()
		seen[division]++
		mu.Unlock()
		if division == "B" {
			return nil, ErrDependencyUnavailable
		}
		return samplePlayers(), nil
	}}
	service := newPlayerServiceForTest(backend)

	result, err := service.Warm(context.Background())
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if result.Loaded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected warm result: %+v", result)
	}
	mu.Lock()
	if seen[""] != 1 || seen["A"] != 1 || seen["B"] != 1 {
		t.Fatalf("unexpected warm calls: %v", seen)
	}
	mu.Unlock()

	if _, err := service.List(context.Background(), "A"); err != nil {
		t.Fatalf("list after warm: %v", err)
	}
	if backend.playerCalls.Load() != 3 {
		t.Fatalf("expected warmed filter to be served from cache, got %d calls", backend.playerCalls.Load())
	}

	service.Invalidate(context.Background())
	if _, err := service.List(context.Background(), "A"); err != nil {
		t.Fatalf("list after invalidate: %v", err)
	}
	if backend.playerCalls.Load() != 4 {
		t.Fatalf("expected invalidate to force a reload, got %d calls", backend.playerCalls.Load())
	}
}

func TestPlayerService_BackendFailureIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	backend := &stubRecordBackend{players: func(context.Context, string) ([]player.Player, error) {
		return nil, ErrDependencyUnavailable
	}}
	service := newPlayerServiceForTest(backend)

	if _, err := service.List(context.Background(), ""); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func viewIDs(views []PlayerView) string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, strconv.FormatInt(v.Player.ID, 10))
	}
	return strings.Join(ids, ",")
}
