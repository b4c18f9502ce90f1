package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

func sampleSnapshot() *snapshot.Snapshot {
	snap := snapshot.Empty()
	snap.Generation = 4
	snap.Teams = []team.Team{
		{ID: 1, Name: "A", Division: team.DivisionPHL, Points: 10, GoalsFor: 20, GoalsAgainst: 15, LogoURL: strPtr("https://cdn/a.png")},
		{ID: 2, Name: "B", Division: team.DivisionPHL, Points: 10, GoalsFor: 18, GoalsAgainst: 10},
		{ID: 3, Name: "C", Division: team.DivisionPHL, Points: 12, GoalsFor: 5, GoalsAgainst: 5},
		{ID: 4, Name: "D", Division: team.DivisionVHL, Points: 1},
		{ID: 5, Name: "E", Division: "Лига ветеранов", Points: 2},
	}
	snap.Matches = []match.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeTeamName: "A", AwayTeamName: "B", Status: match.StatusFinished, HomeScore: 3, AwayScore: 1},
		{ID: 2, HomeTeamID: 3, AwayTeamID: 99, HomeTeamName: "C", AwayTeamName: "Исчезнувшие", Status: "Перенесён"},
	}
	snap.Champions = []champion.Champion{{ID: 1, Season: "2023-2024", TeamID: 1, TeamName: "A (old)"}}
	return snap
}

func TestStandingsService_TableRanksByPointsThenGoalDifference(t *testing.T) {
	t.Parallel()

	service := NewStandingsService(staticSnapshot{snap: sampleSnapshot()}, league.DefaultProfile())

	table, err := service.Table(context.Background(), team.DivisionPHL)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	got := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		got = append(got, row.Team.Name)
	}
	if len(got) != 3 || got[0] != "C" || got[1] != "B" || got[2] != "A" {
		t.Fatalf("unexpected order: %v", got)
	}
	if table.Rows[0].Position != 1 || table.Rows[1].GoalDifference != 8 {
		t.Fatalf("unexpected rows: %+v", table.Rows)
	}
}

func TestStandingsService_TableDivisionLookup(t *testing.T) {
	t.Parallel()

	service := NewStandingsService(staticSnapshot{snap: sampleSnapshot()}, league.DefaultProfile())

	thl, err := service.Table(context.Background(), team.DivisionTHL)
	if err != nil {
		t.Fatalf("profile division without teams: %v", err)
	}
	if thl.Rows == nil || len(thl.Rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", thl.Rows)
	}

	extra, err := service.Table(context.Background(), "Лига ветеранов")
	if err != nil || len(extra.Rows) != 1 {
		t.Fatalf("expected division used by teams to rank, rows=%v err=%v", extra.Rows, err)
	}

	if _, err := service.Table(context.Background(), "нет такой"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Table(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsService_TablesFollowProfileOrder(t *testing.T) {
	t.Parallel()

	service := NewStandingsService(staticSnapshot{snap: sampleSnapshot()}, league.DefaultProfile())
	tables := service.Tables(context.Background())
	if len(tables) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(tables))
	}
	if tables[0].Division.Code != team.DivisionPHL || tables[1].Division.Code != team.DivisionVHL || len(tables[2].Rows) != 0 {
		t.Fatalf("unexpected tables: %+v", tables)
	}

	teams, err := service.Teams(context.Background(), team.DivisionVHL)
	if err != nil || len(teams) != 1 || teams[0].Name != "D" {
		t.Fatalf("unexpected filtered teams: %v err=%v", teams, err)
	}
}

func TestScheduleService_MatchesJoinTeamsAndClassify(t *testing.T) {
	t.Parallel()

	service := NewScheduleService(staticSnapshot{snap: sampleSnapshot()})

	views, err := service.Matches(context.Background(), "")
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(views))
	}
	if views[0].Home.LogoURL == nil || views[0].Category != match.CategoryFinished {
		t.Fatalf("unexpected first view: %+v", views[0])
	}
	missing := views[1].Away
	if missing.Found || missing.Name != "Исчезнувшие" || missing.LogoURL != nil {
		t.Fatalf("missing team must keep its denormalized name: %+v", missing)
	}
	if views[1].Category != match.CategoryDefault {
		t.Fatalf("unknown status must classify as default, got %s", views[1].Category)
	}

	finished, err := service.Matches(context.Background(), match.StatusFinished)
	if err != nil || len(finished) != 1 {
		t.Fatalf("unexpected status filter result: %v err=%v", finished, err)
	}
	if _, err := service.Matches(context.Background(), "Перенесён"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown filter, got %v", err)
	}
}

func TestScheduleService_ChampionsKeepCapturedNameAndCurrentLogo(t *testing.T) {
	t.Parallel()

	service := NewScheduleService(staticSnapshot{snap: sampleSnapshot()})
	views := service.Champions(context.Background())
	if len(views) != 1 {
		t.Fatalf("expected 1 champion, got %d", len(views))
	}
	if views[0].Team.Name != "A (old)" || views[0].Team.LogoURL == nil {
		t.Fatalf("unexpected champion view: %+v", views[0])
	}

	statuses := service.Statuses(context.Background())
	if len(statuses) != 6 || statuses[5].Badge != "destructive" {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}

func TestLeagueService_OverviewUsesOneSnapshot(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	players := &leaderboardSourceStub{err: errors.New("players endpoint down")}
	service := NewLeagueService(staticSnapshot{snap: snap}, players, league.DefaultProfile(), nil)

	overview := service.Overview(context.Background())
	if overview.Summary.Generation != 4 {
		t.Fatalf("unexpected summary: %+v", overview.Summary)
	}
	if len(overview.Standings) != 3 || len(overview.Matches) != 2 || len(overview.Champions) != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
	if !overview.LeaderboardsUnavailable || overview.Leaderboards != nil {
		t.Fatalf("expected leaderboards to be flagged unavailable")
	}
	if overview.Regulations.Content != league.DefaultRegulationsText {
		t.Fatalf("expected fallback regulations, got %q", overview.Regulations.Content)
	}
	if info := service.Info(context.Background()); info.Name != league.DefaultName {
		t.Fatalf("unexpected info: %+v", info)
	}
}

type leaderboardSourceStub struct {
	boards []Leaderboard
	err    error
}

func (s *leaderboardSourceStub) Leaderboards(context.Context, string, int) ([]Leaderboard, error) {
	return s.boards, s.err
}
