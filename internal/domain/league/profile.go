package league

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/team"
)

const (
	DefaultLeaderboardSize = 5
	PlayerFilterAll        = "all"
)

// Division is a standings table shown on the site. PlayerFilter links it to the
// player statistics division code accepted by the players endpoint, if any.
type Division struct {
	Code         string `yaml:"code"`
	Title        string `yaml:"title"`
	PlayerFilter string `yaml:"player_filter"`
}

type PlayerFilter struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`
}

// Profile describes how the league is laid out on the site.
type Profile struct {
	Divisions       []Division     `yaml:"divisions"`
	PlayerFilters   []PlayerFilter `yaml:"player_filters"`
	LeaderboardSize int            `yaml:"leaderboard_size"`
}

func DefaultProfile() Profile {
	return Profile{
		Divisions: []Division{
			{Code: team.DivisionPHL, Title: team.DivisionPHL, PlayerFilter: "A"},
			{Code: team.DivisionVHL, Title: team.DivisionVHL, PlayerFilter: "B"},
			{Code: team.DivisionTHL, Title: team.DivisionTHL},
		},
		PlayerFilters: []PlayerFilter{
			{Code: PlayerFilterAll, Title: "Все дивизионы"},
			{Code: "A", Title: "Дивизион А"},
			{Code: "B", Title: "Дивизион Б"},
		},
		LeaderboardSize: DefaultLeaderboardSize,
	}
}

func (p Profile) Validate() error {
	if len(p.Divisions) == 0 {
		return fmt.Errorf("profile needs at least one division")
	}
	seen := make(map[string]struct{}, len(p.Divisions))
	for _, d := range p.Divisions {
		code := strings.TrimSpace(d.Code)
		if code == "" {
			return fmt.Errorf("division code is required")
		}
		if _, dup := seen[code]; dup {
			return fmt.Errorf("duplicate division code %q", code)
		}
		seen[code] = struct{}{}
	}
	if p.LeaderboardSize < 0 {
		return fmt.Errorf("leaderboard_size must be >= 0")
	}
	for _, f := range p.PlayerFilters {
		if strings.TrimSpace(f.Code) == "" {
			return fmt.Errorf("player filter code is required")
		}
	}
	return nil
}

func (p Profile) HasDivision(code string) bool {
	_, ok := p.Division(code)
	return ok
}

func (p Profile) Division(code string) (Division, bool) {
	code = strings.TrimSpace(code)
	for _, d := range p.Divisions {
		if d.Code == code {
			return d, true
		}
	}
	return Division{}, false
}

// NormalizePlayerFilter maps the empty value to "all" and rejects unknown codes.
func (p Profile) NormalizePlayerFilter(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, PlayerFilterAll) {
		return PlayerFilterAll, nil
	}
	for _, f := range p.PlayerFilters {
		if f.Code == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown player division filter %q", code)
}

// FilterCodes lists every player filter, "all" included.
func (p Profile) FilterCodes() []string {
	out := []string{PlayerFilterAll}
	for _, f := range p.PlayerFilters {
		if f.Code == PlayerFilterAll {
			continue
		}
		out = append(out, f.Code)
	}
	return out
}
