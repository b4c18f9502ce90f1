// Package standing ranks teams inside a division table.
package standing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// Row is a ranked team with its 1-based table position.
type Row struct {
	Position       int
	Team           team.Team
	GoalDifference int
}

// Rank returns the teams of division ordered by points, then goal difference,
// both descending. Exact ties keep snapshot order. The input is not modified.
func Rank(teams []team.Team, division string) []team.Team {
	division = strings.TrimSpace(division)
	out := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if strings.TrimSpace(t.Division) == division {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, Compare)
	return out
}

// Compare is the single ordering used by every standings view.
func Compare(a, b team.Team) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalDifference(), a.GoalDifference())
}

// Table ranks division and numbers the rows from 1.
func Table(teams []team.Team, division string) []Row {
	ranked := Rank(teams, division)
	rows := make([]Row, 0, len(ranked))
	for i, t := range ranked {
		rows = append(rows, Row{
			Position:       i + 1,
			Team:           t,
			GoalDifference: t.GoalDifference(),
		})
	}
	return rows
}
