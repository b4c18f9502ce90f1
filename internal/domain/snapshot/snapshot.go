// Package snapshot holds the immutable league records captured by one fetch cycle
// and the team lookups used to decorate matches, champions and players.
package snapshot

import (
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// Snapshot must be treated as read-only once committed.
type Snapshot struct {
	Generation  uint64
	FetchedAt   time.Time
	Teams       []team.Team
	Matches     []match.Match
	Champions   []champion.Champion
	Info        league.Info
	Regulations league.Regulations
}

// Empty is the valid snapshot served before the first successful fetch cycle.
func Empty() *Snapshot {
	return &Snapshot{
		Teams:       []team.Team{},
		Matches:     []match.Match{},
		Champions:   []champion.Champion{},
		Info:        league.Info{}.WithDefaults(),
		Regulations: league.Regulations{}.WithDefaults(),
	}
}

// Loaded reports whether the snapshot came from the backend.
func (s *Snapshot) Loaded() bool {
	return s != nil && s.Generation > 0
}

func (s *Snapshot) TeamIndex() TeamIndex {
	if s == nil {
		return NewTeamIndex(nil)
	}
	return NewTeamIndex(s.Teams)
}

type Summary struct {
	Generation int64
	FetchedAt  time.Time
	Teams      int
	Matches    int
	Champions  int
}

func (s *Snapshot) Summary() Summary {
	if s == nil {
		return Summary{}
	}
	return Summary{
		Generation: int64(s.Generation),
		FetchedAt:  s.FetchedAt,
		Teams:      len(s.Teams),
		Matches:    len(s.Matches),
		Champions:  len(s.Champions),
	}
}
