package match

import (
	"fmt"
	"strings"
	"time"
)

// Match is a scheduled or played game. HomeTeamName and AwayTeamName are labels
// denormalized by the backend and may lag behind team renames.
type Match struct {
	ID           int64
	MatchDate    string
	HomeTeamID   int64
	AwayTeamID   int64
	HomeTeamName string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
	Status       string
}

var matchDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ScheduledAt parses MatchDate with the layouts the backend is known to emit.
func (m Match) ScheduledAt() (time.Time, bool) {
	raw := strings.TrimSpace(m.MatchDate)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range matchDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Started reports whether scores carry meaning yet.
func (m Match) Started() bool {
	status := strings.TrimSpace(m.Status)
	return status != "" && status != StatusNotStarted
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.MatchDate) == "" {
		return fmt.Errorf("match date is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match home and away team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away team must differ")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores must be >= 0")
	}
	if !IsKnownStatus(m.Status) {
		return fmt.Errorf("match status %q is not recognized", m.Status)
	}

	return nil
}
