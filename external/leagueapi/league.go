package leagueapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

var _ usecase.LeagueBackend = (*Client)(nil)

const (
	pathTeams       = "teams"
	pathMatches     = "matches"
	pathChampions   = "champions"
	pathLeagueInfo  = "league-info"
	pathRegulations = "regulations"
	pathSocialLinks = "social-links"
	pathUploadImage = "upload-image"
)

func (c *Client) ListTeams(ctx context.Context) ([]team.Team, error) {
	var rows []teamDTO
	if err := c.doJSON(ctx, c.leagueCall("list_teams", http.MethodGet, pathTeams, 0, nil), &rows); err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (c *Client) CreateTeam(ctx context.Context, item team.Team) error {
	body := teamFromDomain(item)
	body.ID = 0
	return c.doJSON(ctx, c.leagueCall("create_team", http.MethodPost, pathTeams, 0, body), nil)
}

func (c *Client) UpdateTeam(ctx context.Context, item team.Team) error {
	return c.doJSON(ctx, c.leagueCall("update_team", http.MethodPut, pathTeams, 0, teamFromDomain(item)), nil)
}

func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return c.doJSON(ctx, c.leagueCall("delete_team", http.MethodDelete, pathTeams, id, nil), nil)
}

func (c *Client) ListMatches(ctx context.Context) ([]match.Match, error) {
	var rows []matchDTO
	if err := c.doJSON(ctx, c.leagueCall("list_matches", http.MethodGet, pathMatches, 0, nil), &rows); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (c *Client) CreateMatch(ctx context.Context, item match.Match) error {
	body := matchFromDomain(item)
	body.ID = 0
	return c.doJSON(ctx, c.leagueCall("create_match", http.MethodPost, pathMatches, 0, body), nil)
}

func (c *Client) UpdateMatch(ctx context.Context, item match.Match) error {
	return c.doJSON(ctx, c.leagueCall("update_match", http.MethodPut, pathMatches, 0, matchFromDomain(item)), nil)
}

func (c *Client) DeleteMatch(ctx context.Context, id int64) error {
	return c.doJSON(ctx, c.leagueCall("delete_match", http.MethodDelete, pathMatches, id, nil), nil)
}

func (c *Client) ListChampions(ctx context.Context) ([]champion.Champion, error) {
	var rows []championDTO
	if err := c.doJSON(ctx, c.leagueCall("list_champions", http.MethodGet, pathChampions, 0, nil), &rows); err != nil {
		return nil, err
	}

	out := make([]champion.Champion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (c *Client) CreateChampion(ctx context.Context, item champion.Champion) error {
	return c.doJSON(ctx, c.leagueCall("create_champion", http.MethodPost, pathChampions, 0, championFromDomain(item)), nil)
}

func (c *Client) DeleteChampion(ctx context.Context, id int64) error {
	return c.doJSON(ctx, c.leagueCall("delete_champion", http.MethodDelete, pathChampions, id, nil), nil)
}

func (c *Client) GetLeagueInfo(ctx context.Context) (league.Info, error) {
	var row leagueInfoDTO
	if err := c.doJSON(ctx, c.leagueCall("get_league_info", http.MethodGet, pathLeagueInfo, 0, nil), &row); err != nil {
		return league.Info{}, err
	}
	return row.toDomain(), nil
}

// SaveLeagueInfo writes the scalar fields only; social links have their own calls.
func (c *Client) SaveLeagueInfo(ctx context.Context, info league.Info) error {
	name := info.Name
	description := info.Description
	body := leagueInfoDTO{
		LeagueName:  &name,
		Description: &description,
		LogoURL:     info.LogoURL,
	}
	return c.doJSON(ctx, c.leagueCall("save_league_info", http.MethodPost, pathLeagueInfo, 0, body), nil)
}

func (c *Client) GetRegulations(ctx context.Context) (league.Regulations, error) {
	var row regulationsDTO
	if err := c.doJSON(ctx, c.leagueCall("get_regulations", http.MethodGet, pathRegulations, 0, nil), &row); err != nil {
		return league.Regulations{}, err
	}
	return league.Regulations{Content: deref(row.Content)}.WithDefaults(), nil
}

func (c *Client) SaveRegulations(ctx context.Context, regulations league.Regulations) error {
	content := regulations.Content
	return c.doJSON(ctx, c.leagueCall("save_regulations", http.MethodPost, pathRegulations, 0, regulationsDTO{Content: &content}), nil)
}

func (c *Client) CreateSocialLink(ctx context.Context, link league.SocialLink) error {
	body := socialLinkDTO{
		Platform:  link.Platform,
		URL:       link.URL,
		Icon:      link.Icon,
		SortOrder: link.SortOrder,
	}
	return c.doJSON(ctx, c.leagueCall("create_social_link", http.MethodPost, pathSocialLinks, 0, body), nil)
}

func (c *Client) DeleteSocialLink(ctx context.Context, id int64) error {
	return c.doJSON(ctx, c.leagueCall("delete_social_link", http.MethodDelete, pathSocialLinks, id, nil), nil)
}

// UploadImage hands a data URL to the backend and returns the URL it will serve the image from.
func (c *Client) UploadImage(ctx context.Context, dataURL string) (string, error) {
	var out uploadImageResponse
	if err := c.doJSON(ctx, c.leagueCall("upload_image", http.MethodPost, pathUploadImage, 0, uploadImageRequest{Image: dataURL}), &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ListPlayers returns the roster with stats for one division filter; an empty division aggregates all.
func (c *Client) ListPlayers(ctx context.Context, division string) ([]player.Player, error) {
	query := url.Values{}
	if division = strings.TrimSpace(division); division != "" {
		query.Set("division", division)
	}

	var rows []playerDTO
	if err := c.doJSON(ctx, c.playersCall("list_players", http.MethodGet, query, nil), &rows); err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (c *Client) CreatePlayer(ctx context.Context, item player.NewPlayer) (int64, error) {
	body := createPlayerRequest{
		TeamID:       item.TeamID,
		Nickname:     item.Nickname,
		JerseyNumber: item.JerseyNumber,
		Position:     item.Position,
	}

	var out createPlayerResponse
	if err := c.doJSON(ctx, c.playersCall("create_player", http.MethodPost, nil, body), &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdatePlayerStats(ctx context.Context, line player.StatLine) error {
	body := playerStatsRequest{
		PlayerID:    line.PlayerID,
		Division:    line.Division,
		Goals:       line.Goals,
		Assists:     line.Assists,
		GamesPlayed: line.GamesPlayed,
	}
	return c.doJSON(ctx, c.playersCall("update_player_stats", http.MethodPut, nil, body), nil)
}
