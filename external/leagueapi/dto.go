package leagueapi

import (
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

type teamDTO struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name"`
	Division     string  `json:"division"`
	GamesPlayed  int     `json:"games_played"`
	Wins         int     `json:"wins"`
	WinsOT       int     `json:"wins_ot"`
	LossesOT     int     `json:"losses_ot"`
	Losses       int     `json:"losses"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	Points       int     `json:"points"`
	LogoURL      *string `json:"logo_url"`
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{
		ID:           d.ID,
		Name:         d.Name,
		Division:     strings.TrimSpace(d.Division),
		GamesPlayed:  d.GamesPlayed,
		Wins:         d.Wins,
		WinsOT:       d.WinsOT,
		LossesOT:     d.LossesOT,
		Losses:       d.Losses,
		GoalsFor:     d.GoalsFor,
		GoalsAgainst: d.GoalsAgainst,
		Points:       d.Points,
		LogoURL:      d.LogoURL,
	}
}

func teamFromDomain(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Division:     t.Division,
		GamesPlayed:  t.GamesPlayed,
		Wins:         t.Wins,
		WinsOT:       t.WinsOT,
		LossesOT:     t.LossesOT,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		Points:       t.Points,
		LogoURL:      t.LogoURL,
	}
}

type matchDTO struct {
	ID           int64   `json:"id,omitempty"`
	MatchDate    string  `json:"match_date"`
	HomeTeamID   int64   `json:"home_team_id"`
	AwayTeamID   int64   `json:"away_team_id"`
	HomeTeamName *string `json:"home_team_name,omitempty"`
	AwayTeamName *string `json:"away_team_name,omitempty"`
	HomeScore    int     `json:"home_score"`
	AwayScore    int     `json:"away_score"`
	Status       string  `json:"status"`
}

func (d matchDTO) toDomain() match.Match {
	return match.Match{
		ID:           d.ID,
		MatchDate:    d.MatchDate,
		HomeTeamID:   d.HomeTeamID,
		AwayTeamID:   d.AwayTeamID,
		HomeTeamName: deref(d.HomeTeamName),
		AwayTeamName: deref(d.AwayTeamName),
		HomeScore:    d.HomeScore,
		AwayScore:    d.AwayScore,
		Status:       strings.TrimSpace(d.Status),
	}
}

// matchFromDomain omits the denormalized names; the backend derives them from the ids.
func matchFromDomain(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		MatchDate:  m.MatchDate,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Status:     m.Status,
	}
}

type championDTO struct {
	ID          int64   `json:"id,omitempty"`
	Season      string  `json:"season"`
	TeamID      int64   `json:"team_id"`
	TeamName    *string `json:"team_name"`
	Description *string `json:"description"`
}

func (d championDTO) toDomain() champion.Champion {
	return champion.Champion{
		ID:          d.ID,
		Season:      d.Season,
		TeamID:      d.TeamID,
		TeamName:    deref(d.TeamName),
		Description: d.Description,
	}
}

func championFromDomain(c champion.Champion) championDTO {
	name := c.TeamName
	return championDTO{
		Season:      c.Season,
		TeamID:      c.TeamID,
		TeamName:    &name,
		Description: c.Description,
	}
}

type socialLinkDTO struct {
	ID        int64  `json:"id,omitempty"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (d socialLinkDTO) toDomain() league.SocialLink {
	return league.SocialLink{
		ID:        d.ID,
		Platform:  d.Platform,
		URL:       d.URL,
		Icon:      d.Icon,
		SortOrder: d.SortOrder,
	}
}

type leagueInfoDTO struct {
	LeagueName  *string         `json:"league_name"`
	Description *string         `json:"description"`
	LogoURL     *string         `json:"logo_url"`
	SocialLinks []socialLinkDTO `json:"social_links,omitempty"`
}

func (d leagueInfoDTO) toDomain() league.Info {
	links := make([]league.SocialLink, 0, len(d.SocialLinks))
	for _, item := range d.SocialLinks {
		links = append(links, item.toDomain())
	}
	return league.Info{
		Name:        deref(d.LeagueName),
		Description: deref(d.Description),
		LogoURL:     d.LogoURL,
		SocialLinks: links,
	}.WithDefaults()
}

type regulationsDTO struct {
	Content *string `json:"content"`
}

type uploadImageRequest struct {
	Image string `json:"image"`
}

type uploadImageResponse struct {
	URL string `json:"url"`
}

type playerDTO struct {
	ID           int64   `json:"id"`
	Nickname     string  `json:"nickname"`
	JerseyNumber int     `json:"jersey_number"`
	Position     string  `json:"position"`
	TeamName     string  `json:"team_name"`
	TeamLogo     *string `json:"team_logo"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	GamesPlayed  int     `json:"games_played"`
	Division     *string `json:"division"`
}

func (d playerDTO) toDomain() player.Player {
	return player.Player{
		ID:           d.ID,
		Nickname:     d.Nickname,
		JerseyNumber: d.JerseyNumber,
		Position:     d.Position,
		TeamName:     d.TeamName,
		TeamLogo:     d.TeamLogo,
		Goals:        d.Goals,
		Assists:      d.Assists,
		GamesPlayed:  d.GamesPlayed,
		Division:     d.Division,
	}
}

type createPlayerRequest struct {
	TeamID       int64  `json:"team_id"`
	Nickname     string `json:"nickname"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position"`
}

type createPlayerResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type playerStatsRequest struct {
	PlayerID    int64  `json:"player_id"`
	Division    string `json:"division"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	GamesPlayed int    `json:"games_played"`
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
