package team

import (
	"fmt"
	"strings"
)

// Division codes observed on the league site. Any other non-empty code is accepted.
const (
	DivisionPHL = "ПХЛ"
	DivisionVHL = "ВХЛ"
	DivisionTHL = "ТХЛ"
)

// Team is a club entry together with its season counters as reported by the backend.
// Points is authoritative and is never recomputed from the counters.
type Team struct {
	ID           int64
	Name         string
	Division     string
	GamesPlayed  int
	Wins         int
	WinsOT       int
	LossesOT     int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	LogoURL      *string
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// TotalWins folds overtime wins into regulation wins for the compact public table.
func (t Team) TotalWins() int {
	return t.Wins + t.WinsOT
}

// CountersConsistent reports whether the outcome counters add up to games played.
func (t Team) CountersConsistent() bool {
	return t.Wins+t.WinsOT+t.LossesOT+t.Losses == t.GamesPlayed
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Division) == "" {
		return fmt.Errorf("team division is required")
	}
	for name, v := range map[string]int{
		"games_played":  t.GamesPlayed,
		"wins":          t.Wins,
		"wins_ot":       t.WinsOT,
		"losses_ot":     t.LossesOT,
		"losses":        t.Losses,
		"goals_for":     t.GoalsFor,
		"goals_against": t.GoalsAgainst,
		"points":        t.Points,
	} {
		if v < 0 {
			return fmt.Errorf("team %s must be >= 0", name)
		}
	}

	return nil
}
