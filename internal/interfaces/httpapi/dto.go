package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/standing"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

type socialLinkDTO struct {
	ID        int64  `json:"id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

type leagueInfoDTO struct {
	Name        string          `json:"league_name"`
	Description string          `json:"description"`
	LogoURL     *string         `json:"logo_url"`
	SocialLinks []socialLinkDTO `json:"social_links"`
}

type regulationsDTO struct {
	Content string `json:"content"`
}

type divisionDTO struct {
	Code         string `json:"code"`
	Title        string `json:"title"`
	PlayerFilter string `json:"player_filter,omitempty"`
}

type playerFilterDTO struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type divisionsDTO struct {
	Divisions       []divisionDTO     `json:"divisions"`
	PlayerFilters   []playerFilterDTO `json:"player_filters"`
	LeaderboardSize int               `json:"leaderboard_size"`
}

type teamDTO struct {
	ID           int64   `json:"id"`
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

// standingRowDTO is the public table row; overtime wins are folded into wins.
type standingRowDTO struct {
	Position       int     `json:"position"`
	TeamID         int64   `json:"team_id"`
	TeamName       string  `json:"team_name"`
	LogoURL        *string `json:"logo_url"`
	GamesPlayed    int     `json:"games_played"`
	Wins           int     `json:"wins"`
	LossesOT       int     `json:"losses_ot"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	Points         int     `json:"points"`
}

type adminStandingRowDTO struct {
	Position           int     `json:"position"`
	TeamID             int64   `json:"team_id"`
	TeamName           string  `json:"team_name"`
	LogoURL            *string `json:"logo_url"`
	GamesPlayed        int     `json:"games_played"`
	Wins               int     `json:"wins"`
	WinsOT             int     `json:"wins_ot"`
	LossesOT           int     `json:"losses_ot"`
	Losses             int     `json:"losses"`
	GoalsFor           int     `json:"goals_for"`
	GoalsAgainst       int     `json:"goals_against"`
	GoalDifference     int     `json:"goal_difference"`
	Points             int     `json:"points"`
	CountersConsistent bool    `json:"counters_consistent"`
}

type standingsTableDTO struct {
	Division string           `json:"division"`
	Title    string           `json:"title"`
	Rows     []standingRowDTO `json:"rows"`
}

type adminStandingsTableDTO struct {
	Division string                `json:"division"`
	Title    string                `json:"title"`
	Rows     []adminStandingRowDTO `json:"rows"`
}

type teamRefDTO struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
	Known   bool    `json:"known"`
}

type matchDTO struct {
	ID          int64      `json:"id"`
	MatchDate   string     `json:"match_date"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Home        teamRefDTO `json:"home"`
	Away        teamRefDTO `json:"away"`
	HomeScore   int        `json:"home_score"`
	AwayScore   int        `json:"away_score"`
	Started     bool       `json:"started"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Badge       string     `json:"badge"`
}

type matchStatusDTO struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Badge    string `json:"badge"`
}

type championDTO struct {
	ID          int64      `json:"id"`
	Season      string     `json:"season"`
	Team        teamRefDTO `json:"team"`
	Description *string    `json:"description"`
}

type playerDTO struct {
	ID           int64      `json:"id"`
	Nickname     string     `json:"nickname"`
	JerseyNumber int        `json:"jersey_number"`
	Position     string     `json:"position"`
	Icon         string     `json:"icon"`
	Team         teamRefDTO `json:"team"`
	Goals        int        `json:"goals"`
	Assists      int        `json:"assists"`
	Points       int        `json:"points"`
	GamesPlayed  int        `json:"games_played"`
	Division     *string    `json:"division"`
}

type leaderboardDTO struct {
	Stat    string      `json:"stat"`
	Filter  string      `json:"division"`
	Players []playerDTO `json:"players"`
}

type snapshotSummaryDTO struct {
	Generation int64      `json:"generation"`
	FetchedAt  *time.Time `json:"fetched_at"`
	Teams      int        `json:"teams"`
	Matches    int        `json:"matches"`
	Champions  int        `json:"champions"`
}

type overviewDTO struct {
	Snapshot                snapshotSummaryDTO  `json:"snapshot"`
	League                  leagueInfoDTO       `json:"league"`
	Regulations             regulationsDTO      `json:"regulations"`
	Standings               []standingsTableDTO `json:"standings"`
	Matches                 []matchDTO          `json:"matches"`
	Champions               []championDTO       `json:"champions"`
	Leaderboards            []leaderboardDTO    `json:"leaderboards"`
	LeaderboardsUnavailable bool                `json:"leaderboards_unavailable"`
}

type mutationResultDTO struct {
	Refreshed bool               `json:"refreshed"`
	Snapshot  snapshotSummaryDTO `json:"snapshot"`
}

type sessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type journalEntryDTO struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Summary    string    `json:"summary"`
	Outcome    string    `json:"outcome"`
	CreatedAt  time.Time `json:"created_at"`
}

type preferencesDTO struct {
	Theme string `json:"theme"`
}

type readinessDTO struct {
	Status              string     `json:"status"`
	Generation          uint64     `json:"generation"`
	LastSuccess         *time.Time `json:"last_success,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}

func leagueInfoToDTO(_ context.Context, info league.Info) leagueInfoDTO {
	links := make([]socialLinkDTO, 0, len(info.SocialLinks))
	for _, link := range info.SocialLinks {
		links = append(links, socialLinkDTO{
			ID:        link.ID,
			Platform:  link.Platform,
			URL:       link.URL,
			Icon:      link.Icon,
			SortOrder: link.SortOrder,
		})
	}
	return leagueInfoDTO{
		Name:        info.Name,
		Description: info.Description,
		LogoURL:     info.LogoURL,
		SocialLinks: links,
	}
}

func divisionsToDTO(_ context.Context, profile league.Profile) divisionsDTO {
	divisions := make([]divisionDTO, 0, len(profile.Divisions))
	for _, d := range profile.Divisions {
		divisions = append(divisions, divisionDTO{Code: d.Code, Title: d.Title, PlayerFilter: d.PlayerFilter})
	}
	filters := make([]playerFilterDTO, 0, len(profile.PlayerFilters))
	for _, f := range profile.PlayerFilters {
		filters = append(filters, playerFilterDTO{Code: f.Code, Title: f.Title})
	}
	return divisionsDTO{
		Divisions:       divisions,
		PlayerFilters:   filters,
		LeaderboardSize: profile.LeaderboardSize,
	}
}

func teamToDTO(_ context.Context, t team.Team) teamDTO {
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

func standingRowToDTO(row standing.Row) standingRowDTO {
	return standingRowDTO{
		Position:       row.Position,
		TeamID:         row.Team.ID,
		TeamName:       row.Team.Name,
		LogoURL:        row.Team.LogoURL,
		GamesPlayed:    row.Team.GamesPlayed,
		Wins:           row.Team.TotalWins(),
		LossesOT:       row.Team.LossesOT,
		Losses:         row.Team.Losses,
		GoalsFor:       row.Team.GoalsFor,
		GoalsAgainst:   row.Team.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Team.Points,
	}
}

func standingsTableToDTO(_ context.Context, table usecase.DivisionTable) standingsTableDTO {
	rows := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, standingRowToDTO(row))
	}
	return standingsTableDTO{Division: table.Division.Code, Title: table.Division.Title, Rows: rows}
}

func adminStandingsTableToDTO(_ context.Context, table usecase.DivisionTable) adminStandingsTableDTO {
	rows := make([]adminStandingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, adminStandingRowDTO{
			Position:           row.Position,
			TeamID:             row.Team.ID,
			TeamName:           row.Team.Name,
			LogoURL:            row.Team.LogoURL,
			GamesPlayed:        row.Team.GamesPlayed,
			Wins:               row.Team.Wins,
			WinsOT:             row.Team.WinsOT,
			LossesOT:           row.Team.LossesOT,
			Losses:             row.Team.Losses,
			GoalsFor:           row.Team.GoalsFor,
			GoalsAgainst:       row.Team.GoalsAgainst,
			GoalDifference:     row.GoalDifference,
			Points:             row.Team.Points,
			CountersConsistent: row.Team.CountersConsistent(),
		})
	}
	return adminStandingsTableDTO{Division: table.Division.Code, Title: table.Division.Title, Rows: rows}
}

func teamRefToDTO(ref snapshot.TeamRef) teamRefDTO {
	return teamRefDTO{ID: ref.ID, Name: ref.Name, LogoURL: ref.LogoURL, Known: ref.Found}
}

func matchToDTO(_ context.Context, view snapshot.MatchView) matchDTO {
	out := matchDTO{
		ID:        view.Match.ID,
		MatchDate: view.Match.MatchDate,
		Home:      teamRefToDTO(view.Home),
		Away:      teamRefToDTO(view.Away),
		HomeScore: view.Match.HomeScore,
		AwayScore: view.Match.AwayScore,
		Started:   view.Match.Started(),
		Status:    view.Match.Status,
		Category:  string(view.Category),
		Badge:     view.Category.Badge(),
	}
	if at, ok := view.Match.ScheduledAt(); ok {
		out.ScheduledAt = &at
	}
	if !out.Started {
		out.HomeScore, out.AwayScore = 0, 0
	}
	return out
}

func championToDTO(_ context.Context, view snapshot.ChampionView) championDTO {
	return championDTO{
		ID:          view.Champion.ID,
		Season:      view.Champion.Season,
		Team:        teamRefToDTO(view.Team),
		Description: view.Champion.Description,
	}
}

func playerToDTO(_ context.Context, view usecase.PlayerView) playerDTO {
	return playerDTO{
		ID:           view.Player.ID,
		Nickname:     view.Player.Nickname,
		JerseyNumber: view.Player.JerseyNumber,
		Position:     view.Player.Position,
		Icon:         view.Icon,
		Team:         teamRefToDTO(view.Team),
		Goals:        view.Player.Goals,
		Assists:      view.Player.Assists,
		Points:       view.Points,
		GamesPlayed:  view.Player.GamesPlayed,
		Division:     view.Player.Division,
	}
}

func playersToDTO(ctx context.Context, views []usecase.PlayerView) []playerDTO {
	out := make([]playerDTO, 0, len(views))
	for _, view := range views {
		out = append(out, playerToDTO(ctx, view))
	}
	return out
}

func leaderboardToDTO(ctx context.Context, board usecase.Leaderboard) leaderboardDTO {
	return leaderboardDTO{
		Stat:    string(board.Stat),
		Filter:  board.Filter,
		Players: playersToDTO(ctx, board.Players),
	}
}

func summaryToDTO(summary snapshot.Summary) snapshotSummaryDTO {
	out := snapshotSummaryDTO{
		Generation: summary.Generation,
		Teams:      summary.Teams,
		Matches:    summary.Matches,
		Champions:  summary.Champions,
	}
	if !summary.FetchedAt.IsZero() {
		at := summary.FetchedAt.UTC()
		out.FetchedAt = &at
	}
	return out
}

func overviewToDTO(ctx context.Context, overview usecase.Overview) overviewDTO {
	standings := make([]standingsTableDTO, 0, len(overview.Standings))
	for _, table := range overview.Standings {
		standings = append(standings, standingsTableToDTO(ctx, table))
	}
	matches := make([]matchDTO, 0, len(overview.Matches))
	for _, view := range overview.Matches {
		matches = append(matches, matchToDTO(ctx, view))
	}
	champions := make([]championDTO, 0, len(overview.Champions))
	for _, view := range overview.Champions {
		champions = append(champions, championToDTO(ctx, view))
	}
	boards := make([]leaderboardDTO, 0, len(overview.Leaderboards))
	for _, board := range overview.Leaderboards {
		boards = append(boards, leaderboardToDTO(ctx, board))
	}

	return overviewDTO{
		Snapshot:                summaryToDTO(overview.Summary),
		League:                  leagueInfoToDTO(ctx, overview.Info),
		Regulations:             regulationsDTO{Content: overview.Regulations.Content},
		Standings:               standings,
		Matches:                 matches,
		Champions:               champions,
		Leaderboards:            boards,
		LeaderboardsUnavailable: overview.LeaderboardsUnavailable,
	}
}

func mutationResultToDTO(result usecase.MutationResult) mutationResultDTO {
	return mutationResultDTO{Refreshed: result.Refreshed, Snapshot: summaryToDTO(result.Summary)}
}

func journalEntryToDTO(_ context.Context, entry journal.Entry) journalEntryDTO {
	return journalEntryDTO{
		ID:         entry.ID,
		Action:     string(entry.Action),
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Summary:    entry.Summary,
		Outcome:    string(entry.Outcome),
		CreatedAt:  entry.CreatedAt.UTC(),
	}
}
