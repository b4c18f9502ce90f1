package snapshot

import (
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// TeamRef is the display side of a join. Found is false when the referenced team
// is not in the snapshot; Name then comes from the denormalized label and LogoURL is nil.
type TeamRef struct {
	ID      int64
	Name    string
	LogoURL *string
	Found   bool
}

// TeamIndex resolves team references by id, the canonical key, with an exact name
// lookup used only when the record carries no id.
type TeamIndex struct {
	byID   map[int64]team.Team
	byName map[string]team.Team
}

func NewTeamIndex(teams []team.Team) TeamIndex {
	idx := TeamIndex{
		byID:   make(map[int64]team.Team, len(teams)),
		byName: make(map[string]team.Team, len(teams)),
	}
	for _, t := range teams {
		if t.ID > 0 {
			idx.byID[t.ID] = t
		}
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		if _, exists := idx.byName[name]; !exists {
			idx.byName[name] = t
		}
	}
	return idx
}

func (idx TeamIndex) ByID(id int64) (team.Team, bool) {
	t, ok := idx.byID[id]
	return t, ok
}

func (idx TeamIndex) Resolve(id int64, label string) TeamRef {
	label = strings.TrimSpace(label)
	if id > 0 {
		if t, ok := idx.byID[id]; ok {
			return fromTeam(t)
		}
		return TeamRef{ID: id, Name: label}
	}
	if label != "" {
		if t, ok := idx.byName[label]; ok {
			return fromTeam(t)
		}
	}
	return TeamRef{Name: label}
}

// ResolvePlayerTeam joins by exact team name because player rows carry no team id.
// A found team supplies the current logo; otherwise the player's own logo is kept.
func (idx TeamIndex) ResolvePlayerTeam(p player.Player) TeamRef {
	name := strings.TrimSpace(p.TeamName)
	if t, ok := idx.byName[name]; ok && name != "" {
		ref := fromTeam(t)
		if ref.LogoURL == nil {
			ref.LogoURL = nonEmpty(p.TeamLogo)
		}
		return ref
	}
	return TeamRef{Name: name, LogoURL: nonEmpty(p.TeamLogo)}
}

type MatchView struct {
	Match    match.Match
	Home     TeamRef
	Away     TeamRef
	Category match.Category
}

func (idx TeamIndex) Match(m match.Match) MatchView {
	return MatchView{
		Match:    m,
		Home:     idx.Resolve(m.HomeTeamID, m.HomeTeamName),
		Away:     idx.Resolve(m.AwayTeamID, m.AwayTeamName),
		Category: match.Classify(m.Status),
	}
}

type ChampionView struct {
	Champion champion.Champion
	Team     TeamRef
}

func (idx TeamIndex) Champion(c champion.Champion) ChampionView {
	ref := idx.Resolve(c.TeamID, c.TeamName)
	// the label captured at creation is what the site shows for past seasons
	if name := strings.TrimSpace(c.TeamName); name != "" {
		ref.Name = name
	}
	return ChampionView{Champion: c, Team: ref}
}

func fromTeam(t team.Team) TeamRef {
	return TeamRef{
		ID:      t.ID,
		Name:    t.Name,
		LogoURL: nonEmpty(t.LogoURL),
		Found:   true,
	}
}

func nonEmpty(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	out := *v
	return &out
}
