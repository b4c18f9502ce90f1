// Package leaderboard ranks players by a single statistic.
package leaderboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/player"
)

type Stat string

const (
	StatGoals   Stat = "goals"
	StatAssists Stat = "assists"
)

// ParseStat accepts "goals" or "assists", ignoring case and surrounding space.
func ParseStat(raw string) (Stat, error) {
	switch Stat(strings.ToLower(strings.TrimSpace(raw))) {
	case StatGoals:
		return StatGoals, nil
	case StatAssists:
		return StatAssists, nil
	default:
		return "", fmt.Errorf("unknown leaderboard stat %q", raw)
	}
}

// Value reads the ranked statistic from p.
func (s Stat) Value(p player.Player) int {
	if s == StatAssists {
		return p.Assists
	}
	return p.Goals
}

// Rank orders every player by the selected stat descending. Ties keep input order
// and the input is not modified.
func Rank(players []player.Player, stat Stat) []player.Player {
	out := make([]player.Player, len(players))
	copy(out, players)
	slices.SortStableFunc(out, func(a, b player.Player) int {
		return cmp.Compare(stat.Value(b), stat.Value(a))
	})
	return out
}

// Top truncates a ranked sequence. n <= 0 keeps everything.
func Top(ranked []player.Player, n int) []player.Player {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
