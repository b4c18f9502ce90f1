package player

import (
	"fmt"
	"strings"
)

// Player is a roster entry with its statistic line for the requested division filter.
// TeamName and TeamLogo are denormalized by the backend.
type Player struct {
	ID           int64
	Nickname     string
	JerseyNumber int
	Position     string
	TeamName     string
	TeamLogo     *string
	Goals        int
	Assists      int
	GamesPlayed  int
	Division     *string
}

// Points is derived for display and never stored.
func (p Player) Points() int {
	return p.Goals + p.Assists
}

// NewPlayer is the payload used to register a player on a team.
type NewPlayer struct {
	TeamID       int64
	Nickname     string
	JerseyNumber int
	Position     string
}

func (p NewPlayer) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Nickname) == "" {
		return fmt.Errorf("player nickname is required")
	}
	if p.JerseyNumber <= 0 || p.JerseyNumber > 99 {
		return fmt.Errorf("player jersey number must be between 1 and 99")
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("player position is required")
	}
	return nil
}

// StatLine is a per-division statistic upsert for one player.
type StatLine struct {
	PlayerID    int64
	Division    string
	Goals       int
	Assists     int
	GamesPlayed int
}

func (s StatLine) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(s.Division) == "" {
		return fmt.Errorf("stat division is required")
	}
	if s.Goals < 0 || s.Assists < 0 || s.GamesPlayed < 0 {
		return fmt.Errorf("stat values must be >= 0")
	}
	return nil
}
