package httpapi

import (
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/preference"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

type loginRequest struct {
	Password string `json:"password" validate:"required,max=256"`
}

type teamRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Division     string  `json:"division" validate:"required,max=32"`
	GamesPlayed  int     `json:"games_played" validate:"min=0"`
	Wins         int     `json:"wins" validate:"min=0"`
	WinsOT       int     `json:"wins_ot" validate:"min=0"`
	LossesOT     int     `json:"losses_ot" validate:"min=0"`
	Losses       int     `json:"losses" validate:"min=0"`
	GoalsFor     int     `json:"goals_for" validate:"min=0"`
	GoalsAgainst int     `json:"goals_against" validate:"min=0"`
	Points       int     `json:"points" validate:"min=0"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

// normalize drops blank optional urls so validation only sees real values.
func (r *teamRequest) normalize() {
	r.LogoURL = trimmedOrNil(r.LogoURL)
}

func (r teamRequest) toDomain(id int64) team.Team {
	return team.Team{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		Division:     strings.TrimSpace(r.Division),
		GamesPlayed:  r.GamesPlayed,
		Wins:         r.Wins,
		WinsOT:       r.WinsOT,
		LossesOT:     r.LossesOT,
		Losses:       r.Losses,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Points:       r.Points,
		LogoURL:      r.LogoURL,
	}
}

type matchRequest struct {
	MatchDate  string `json:"match_date" validate:"required"`
	HomeTeamID int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	HomeScore  int    `json:"home_score" validate:"min=0"`
	AwayScore  int    `json:"away_score" validate:"min=0"`
	Status     string `json:"status"`
}

func (r matchRequest) toDomain(id int64) match.Match {
	return match.Match{
		ID:         id,
		MatchDate:  strings.TrimSpace(r.MatchDate),
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		HomeScore:  r.HomeScore,
		AwayScore:  r.AwayScore,
		Status:     strings.TrimSpace(r.Status),
	}
}

type championRequest struct {
	Season      string  `json:"season" validate:"required,max=32"`
	TeamID      int64   `json:"team_id" validate:"required,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r championRequest) toDomain() champion.Champion {
	return champion.Champion{
		Season:      strings.TrimSpace(r.Season),
		TeamID:      r.TeamID,
		Description: trimmedOrNil(r.Description),
	}
}

type leagueInfoRequest struct {
	Name        string  `json:"league_name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=5000"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

func (r *leagueInfoRequest) normalize() {
	r.LogoURL = trimmedOrNil(r.LogoURL)
}

func (r leagueInfoRequest) toDomain() league.Info {
	return league.Info{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		LogoURL:     r.LogoURL,
	}
}

type regulationsRequest struct {
	Content string `json:"content" validate:"max=100000"`
}

type socialLinkRequest struct {
	Platform  string `json:"platform" validate:"required,max=64"`
	URL       string `json:"url" validate:"required,url"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (r socialLinkRequest) toDomain() league.SocialLink {
	return league.SocialLink{
		Platform:  strings.TrimSpace(r.Platform),
		URL:       strings.TrimSpace(r.URL),
		Icon:      strings.TrimSpace(r.Icon),
		SortOrder: r.SortOrder,
	}
}

type createPlayerRequest struct {
	TeamID       int64  `json:"team_id" validate:"required,gt=0"`
	Nickname     string `json:"nickname" validate:"required,max=64"`
	JerseyNumber int    `json:"jersey_number" validate:"required,min=1,max=99"`
	Position     string `json:"position" validate:"required,max=64"`
}

func (r createPlayerRequest) toDomain() player.NewPlayer {
	return player.NewPlayer{
		TeamID:       r.TeamID,
		Nickname:     strings.TrimSpace(r.Nickname),
		JerseyNumber: r.JerseyNumber,
		Position:     strings.TrimSpace(r.Position),
	}
}

type playerStatsRequest struct {
	Division    string `json:"division" validate:"required"`
	Goals       int    `json:"goals" validate:"min=0"`
	Assists     int    `json:"assists" validate:"min=0"`
	GamesPlayed int    `json:"games_played" validate:"min=0"`
}

func (r playerStatsRequest) toDomain(playerID int64) player.StatLine {
	return player.StatLine{
		PlayerID:    playerID,
		Division:    strings.TrimSpace(r.Division),
		Goals:       r.Goals,
		Assists:     r.Assists,
		GamesPlayed: r.GamesPlayed,
	}
}

type uploadImageRequest struct {
	Image string `json:"image" validate:"required"`
}

type preferencesRequest struct {
	Theme string `json:"theme" validate:"required"`
}

func (r preferencesRequest) toDomain() preference.Preferences {
	return preference.Preferences{Theme: r.Theme}
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
