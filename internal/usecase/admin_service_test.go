package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	journalmock "github.com/riskibarqy/phl-league/internal/mocks/domain/journal"
	usecasemock "github.com/riskibarqy/phl-league/internal/mocks/usecase"
	"github.com/stretchr/testify/mock"
)

type refresherStub struct {
	calls   int
	summary snapshot.Summary
	err     error
}

func (r *refresherStub) Refresh(context.Context) (snapshot.Summary, error) {
	r.calls++
	return r.summary, r.err
}

type invalidatorStub struct {
	calls int
}

func (i *invalidatorStub) Invalidate(context.Context) {
	i.calls++
}

type fixedIDs struct{}

func (fixedIDs) NewID() (string, error) {
	return "entry-1", nil
}

type adminFixture struct {
	service   *AdminService
	backend   *usecasemock.LeagueBackend
	journal   *journalmock.Repository
	refresher *refresherStub
	players   *invalidatorStub
	clock     *clockwork.FakeClock
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()

	f := adminFixture{
		backend:   usecasemock.NewLeagueBackend(t),
		journal:   journalmock.NewRepository(t),
		refresher: &refresherStub{summary: snapshot.Summary{Generation: 9}},
		players:   &invalidatorStub{},
		clock:     clockwork.NewFakeClockAt(time.Date(2025, 2, 10, 18, 30, 0, 0, time.UTC)),
	}
	f.service = NewAdminService(AdminServiceConfig{
		Backend:   f.backend,
		Records:   staticSnapshot{snap: sampleSnapshot()},
		Refresher: f.refresher,
		Players:   f.players,
		Journal:   f.journal,
		IDs:       fixedIDs{},
		Profile:   league.DefaultProfile(),
		Clock:     f.clock,
		Logger:    logging.NewNop(),
	})
	return f
}

func TestAdminService_UpdateTeam_CallsBackendJournalsAndRefreshes(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()
	item := team.Team{ID: 2, Name: "B", Division: team.DivisionPHL, Points: 12}

	f.backend.On("UpdateTeam", ctx, item).Return(nil).Once()
	f.journal.
		On("Append", ctx, mock.MatchedBy(func(e journal.Entry) bool {
			return e.ID == "entry-1" &&
				e.Action == journal.ActionUpdate &&
				e.Resource == journal.ResourceTeam &&
				e.ResourceID == "2" &&
				e.Outcome == journal.OutcomeOK &&
				e.CreatedAt.Equal(f.clock.Now())
		})).
		Return(nil).
		Once()

	result, err := f.service.UpdateTeam(ctx, item)
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if !result.Refreshed || result.Summary.Generation != 9 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if f.refresher.calls != 1 {
		t.Fatalf("expected one refresh, got %d", f.refresher.calls)
	}
}

func TestAdminService_BackendFailureIsJournaledAndNotRefreshed(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()

	f.backend.On("DeleteMatch", ctx, int64(7)).Return(ErrDependencyUnavailable).Once()
	f.journal.
		On("Append", ctx, mock.MatchedBy(func(e journal.Entry) bool { return e.Outcome == journal.OutcomeFailed })).
		Return(nil).
		Once()

	_, err := f.service.DeleteMatch(ctx, 7)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if f.refresher.calls != 0 {
		t.Fatalf("failed mutation must not refresh")
	}
}

func TestAdminService_JournalFailureDoesNotFailMutation(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()
	f.refresher.err = ErrSnapshotSuperseded

	f.backend.On("DeleteSocialLink", ctx, int64(4)).Return(nil).Once()
	f.journal.On("Append", ctx, mock.Anything).Return(errors.New("db down")).Once()

	result, err := f.service.DeleteSocialLink(ctx, 4)
	if err != nil {
		t.Fatalf("expected success despite journal failure, got %v", err)
	}
	if result.Refreshed {
		t.Fatalf("superseded refresh must be reported as not refreshed")
	}
	if result.Summary.Generation != 4 {
		t.Fatalf("expected current snapshot summary, got %+v", result.Summary)
	}
}

func TestAdminService_ValidationRejectsBeforeBackend(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()

	if _, err := f.service.CreateMatch(ctx, match.Match{MatchDate: "2025-01-01", HomeTeamID: 1, AwayTeamID: 2, Status: "Перенесён"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown status to be rejected, got %v", err)
	}
	if _, err := f.service.CreateSocialLink(ctx, league.SocialLink{Platform: "X", URL: "https://x.example", Icon: "Globe"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown icon to be rejected, got %v", err)
	}
	if _, err := f.service.UpdateTeam(ctx, team.Team{Name: "B", Division: team.DivisionPHL}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected missing id to be rejected, got %v", err)
	}
	if err := f.service.UpdatePlayerStats(ctx, player.StatLine{PlayerID: 1, Division: "all"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected aggregate filter to be rejected as a stat division, got %v", err)
	}
}

func TestAdminService_CreateMatchDefaultsStatus(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()

	f.backend.
		On("CreateMatch", ctx, mock.MatchedBy(func(m match.Match) bool { return m.Status == match.StatusNotStarted && m.ID == 0 })).
		Return(nil).
		Once()
	f.journal.On("Append", ctx, mock.Anything).Return(nil).Once()

	if _, err := f.service.CreateMatch(ctx, match.Match{ID: 55, MatchDate: "2025-01-01T19:00", HomeTeamID: 1, AwayTeamID: 2}); err != nil {
		t.Fatalf("create match: %v", err)
	}
}

func TestAdminService_CreateChampionCapturesCurrentTeamName(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()

	f.backend.
		On("CreateChampion", ctx, mock.MatchedBy(func(c champion.Champion) bool { return c.TeamName == "C" && c.TeamID == 3 })).
		Return(nil).
		Once()
	f.journal.On("Append", ctx, mock.Anything).Return(nil).Once()

	if _, err := f.service.CreateChampion(ctx, champion.Champion{Season: "2024-2025", TeamID: 3, TeamName: "ignored"}); err != nil {
		t.Fatalf("create champion: %v", err)
	}

	if _, err := f.service.CreateChampion(ctx, champion.Champion{Season: "2024-2025", TeamID: 404}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown team to be rejected, got %v", err)
	}
}

func TestAdminService_UpdatePlayerStatsInvalidatesCache(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()
	line := player.StatLine{PlayerID: 5, Division: "A", Goals: 2, Assists: 1, GamesPlayed: 2}

	f.backend.On("UpdatePlayerStats", ctx, line).Return(nil).Once()
	f.journal.
		On("Append", ctx, mock.MatchedBy(func(e journal.Entry) bool { return e.Resource == journal.ResourcePlayerStats && e.ResourceID == "5" })).
		Return(nil).
		Once()

	if err := f.service.UpdatePlayerStats(ctx, line); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if f.players.calls != 1 {
		t.Fatalf("expected player cache invalidation, got %d", f.players.calls)
	}
	if f.refresher.calls != 0 {
		t.Fatalf("player stats are not part of the snapshot; no refresh expected")
	}
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}

func TestAdminService_UploadImageSniffsType(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	ctx := context.Background()

	f.backend.
		On("UploadImage", ctx, mock.MatchedBy(func(v string) bool { return strings.HasPrefix(v, "data:image/png;base64,") })).
		Return("https://cdn/logo.png", nil).
		Once()
	f.journal.On("Append", ctx, mock.Anything).Return(nil).Once()

	url, err := f.service.UploadImageDataURL(ctx, "data:application/octet-stream;base64,"+base64.StdEncoding.EncodeToString(pngHeader))
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if url != "https://cdn/logo.png" {
		t.Fatalf("unexpected url %q", url)
	}

	if _, err := f.service.UploadImage(ctx, []byte("just some text")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected non-image to be rejected, got %v", err)
	}
	if _, err := f.service.UploadImage(ctx, make([]byte, MaxImageBytes+1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected oversized image to be rejected, got %v", err)
	}
	if _, err := f.service.UploadImageDataURL(ctx, "https://not-a-data-url"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected malformed data url to be rejected, got %v", err)
	}
}

func TestAdminService_RefreshTreatsSupersededAsSuccess(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	f.refresher.err = ErrSnapshotSuperseded

	summary, err := f.service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if summary.Generation != 4 {
		t.Fatalf("expected committed snapshot summary, got %+v", summary)
	}

	f.refresher.err = ErrDependencyUnavailable
	if _, err := f.service.Refresh(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
