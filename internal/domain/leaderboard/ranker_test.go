package leaderboard

import (
	"testing"

	"github.com/riskibarqy/phl-league/internal/domain/player"
)

func TestRank_ByGoalsKeepsTieOrder(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: 1, Nickname: "P1", Goals: 5, Assists: 1},
		{ID: 2, Nickname: "P2", Goals: 5, Assists: 3},
		{ID: 3, Nickname: "P3", Goals: 9, Assists: 0},
	}

	got := Rank(players, StatGoals)
	want := []int64{3, 1, 2}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: got=%d want=%d", i, got[i].ID, want[i])
		}
	}
}

func TestRank_ByAssistsIsIndependent(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: 1, Goals: 5, Assists: 1},
		{ID: 2, Goals: 5, Assists: 3},
		{ID: 3, Goals: 9, Assists: 0},
	}

	got := Rank(players, StatAssists)
	want := []int64{2, 1, 3}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: got=%d want=%d", i, got[i].ID, want[i])
		}
	}
	if players[0].ID != 1 || players[2].ID != 3 {
		t.Fatalf("input was reordered: %+v", players)
	}
}

func TestRank_IsPermutationWithNonIncreasingStat(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 0, 30)
	for i := 0; i < 30; i++ {
		players = append(players, player.Player{ID: int64(i + 1), Goals: (i * 7) % 5, Assists: (i * 3) % 4})
	}

	for _, stat := range []Stat{StatGoals, StatAssists} {
		ranked := Rank(players, stat)
		if len(ranked) != len(players) {
			t.Fatalf("%s: expected %d players, got %d", stat, len(players), len(ranked))
		}
		seen := make(map[int64]bool, len(ranked))
		for i, p := range ranked {
			if seen[p.ID] {
				t.Fatalf("%s: duplicate player %d", stat, p.ID)
			}
			seen[p.ID] = true
			if i > 0 && stat.Value(ranked[i-1]) < stat.Value(p) {
				t.Fatalf("%s: value increases at %d", stat, i)
			}
		}

		again := Rank(ranked, stat)
		for i := range ranked {
			if again[i].ID != ranked[i].ID {
				t.Fatalf("%s: re-ranking is not idempotent at %d", stat, i)
			}
		}
	}
}

func TestTop(t *testing.T) {
	t.Parallel()

	ranked := []player.Player{{ID: 1}, {ID: 2}, {ID: 3}}
	if got := Top(ranked, 2); len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got := Top(ranked, 0); len(got) != 3 {
		t.Fatalf("expected full ranking for n=0, got %d", len(got))
	}
	if got := Top(ranked, 10); len(got) != 3 {
		t.Fatalf("expected full ranking for large n, got %d", len(got))
	}
	if got := Top(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty ranking, got %d", len(got))
	}
}

func TestParseStat(t *testing.T) {
	t.Parallel()

	if s, err := ParseStat(" Goals "); err != nil || s != StatGoals {
		t.Fatalf("ParseStat goals: %v %v", s, err)
	}
	if s, err := ParseStat("assists"); err != nil || s != StatAssists {
		t.Fatalf("ParseStat assists: %v %v", s, err)
	}
	if _, err := ParseStat("points"); err == nil {
		t.Fatalf("expected error for unsupported stat")
	}
}
