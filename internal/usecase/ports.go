package usecase

import (
	"context"

	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/team"
)

// LeagueBackend is the remote league API. Every failure it returns wraps ErrDependencyUnavailable.
type LeagueBackend interface {
	ListTeams(ctx context.Context) ([]team.Team, error)
	CreateTeam(ctx context.Context, item team.Team) error
	UpdateTeam(ctx context.Context, item team.Team) error
	DeleteTeam(ctx context.Context, id int64) error

	ListMatches(ctx context.Context) ([]match.Match, error)
	CreateMatch(ctx context.Context, item match.Match) error
	UpdateMatch(ctx context.Context, item match.Match) error
	DeleteMatch(ctx context.Context, id int64) error

	ListChampions(ctx context.Context) ([]champion.Champion, error)
	CreateChampion(ctx context.Context, item champion.Champion) error
	DeleteChampion(ctx context.Context, id int64) error

	GetLeagueInfo(ctx context.Context) (league.Info, error)
	SaveLeagueInfo(ctx context.Context, info league.Info) error
	GetRegulations(ctx context.Context) (league.Regulations, error)
	SaveRegulations(ctx context.Context, regulations league.Regulations) error
	CreateSocialLink(ctx context.Context, link league.SocialLink) error
	DeleteSocialLink(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, dataURL string) (string, error)

	ListPlayers(ctx context.Context, division string) ([]player.Player, error)
	CreatePlayer(ctx context.Context, item player.NewPlayer) (int64, error)
	UpdatePlayerStats(ctx context.Context, line player.StatLine) error
}
