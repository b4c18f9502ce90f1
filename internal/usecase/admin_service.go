package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/platform/id"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
)

const MaxImageBytes = 2 << 20

// Refresher runs a fetch cycle.
type Refresher interface {
	Refresh(ctx context.Context) (snapshot.Summary, error)
}

// PlayerCacheInvalidator drops cached rosters after stat changes.
type PlayerCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// MutationResult reports the snapshot a mutation was followed by. Refreshed is false
// when the follow-up fetch cycle failed or was superseded; the mutation itself succeeded.
type MutationResult struct {
	Summary   snapshot.Summary
	Refreshed bool
}

type AdminServiceConfig struct {
	Backend   LeagueBackend
	Records   SnapshotReader
	Refresher Refresher
	Players   PlayerCacheInvalidator
	Journal   journal.Repository
	IDs       id.Generator
	Profile   league.Profile
	Clock     clockwork.Clock
	Logger    *logging.Logger
}

// AdminService forwards curation changes to the league backend. Every mutation is one
// backend call, then a best-effort journal entry, then a fetch cycle.
type AdminService struct {
	backend   LeagueBackend
	records   SnapshotReader
	refresher Refresher
	players   PlayerCacheInvalidator
	journal   journal.Repository
	ids       id.Generator
	profile   league.Profile
	clock     clockwork.Clock
	logger    *logging.Logger
}

func NewAdminService(cfg AdminServiceConfig) *AdminService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &AdminService{
		backend:   cfg.Backend,
		records:   cfg.Records,
		refresher: cfg.Refresher,
		players:   cfg.Players,
		journal:   cfg.Journal,
		ids:       ids,
		profile:   cfg.Profile,
		clock:     clock,
		logger:    logger,
	}
}

func (s *AdminService) CreateTeam(ctx context.Context, item team.Team) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateTeam")
	defer span.End()

	item.ID = 0
	if err := item.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionCreate, journal.ResourceTeam, "", "team "+item.Name, func(ctx context.Context) error {
		return s.backend.CreateTeam(ctx, item)
	})
}

func (s *AdminService) UpdateTeam(ctx context.Context, item team.Team) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdateTeam")
	defer span.End()

	if item.ID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := item.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionUpdate, journal.ResourceTeam, formatID(item.ID), "team "+item.Name, func(ctx context.Context) error {
		return s.backend.UpdateTeam(ctx, item)
	})
}

func (s *AdminService) DeleteTeam(ctx context.Context, teamID int64) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteTeam")
	defer span.End()

	if teamID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.mutate(ctx, journal.ActionDelete, journal.ResourceTeam, formatID(teamID), "", func(ctx context.Context) error {
		return s.backend.DeleteTeam(ctx, teamID)
	})
}

func (s *AdminService) CreateMatch(ctx context.Context, item match.Match) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateMatch")
	defer span.End()

	item.ID = 0
	if strings.TrimSpace(item.Status) == "" {
		item.Status = match.StatusNotStarted
	}
	if err := item.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionCreate, journal.ResourceMatch, "", matchSummary(item), func(ctx context.Context) error {
		return s.backend.CreateMatch(ctx, item)
	})
}

func (s *AdminService) UpdateMatch(ctx context.Context, item match.Match) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdateMatch")
	defer span.End()

	if item.ID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := item.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionUpdate, journal.ResourceMatch, formatID(item.ID), matchSummary(item), func(ctx context.Context) error {
		return s.backend.UpdateMatch(ctx, item)
	})
}

func (s *AdminService) DeleteMatch(ctx context.Context, matchID int64) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteMatch")
	defer span.End()

	if matchID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.mutate(ctx, journal.ActionDelete, journal.ResourceMatch, formatID(matchID), "", func(ctx context.Context) error {
		return s.backend.DeleteMatch(ctx, matchID)
	})
}

// CreateChampion captures the team's current name from the snapshot; the backend keeps
// it as-is even if the team is renamed later.
func (s *AdminService) CreateChampion(ctx context.Context, item champion.Champion) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateChampion")
	defer span.End()

	item.ID = 0
	if err := item.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	current, ok := s.records.Current().TeamIndex().ByID(item.TeamID)
	if !ok {
		return MutationResult{}, fmt.Errorf("%w: team=%d is not in the current snapshot", ErrInvalidInput, item.TeamID)
	}
	item.TeamName = current.Name

	return s.mutate(ctx, journal.ActionCreate, journal.ResourceChampion, "", item.Season+" "+item.TeamName, func(ctx context.Context) error {
		return s.backend.CreateChampion(ctx, item)
	})
}

func (s *AdminService) DeleteChampion(ctx context.Context, championID int64) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteChampion")
	defer span.End()

	if championID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: champion id is required", ErrInvalidInput)
	}
	return s.mutate(ctx, journal.ActionDelete, journal.ResourceChampion, formatID(championID), "", func(ctx context.Context) error {
		return s.backend.DeleteChampion(ctx, championID)
	})
}

func (s *AdminService) SaveLeagueInfo(ctx context.Context, info league.Info) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveLeagueInfo")
	defer span.End()

	info.Name = strings.TrimSpace(info.Name)
	if err := info.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionUpdate, journal.ResourceLeague, "", "league "+info.Name, func(ctx context.Context) error {
		return s.backend.SaveLeagueInfo(ctx, info)
	})
}

func (s *AdminService) SaveRegulations(ctx context.Context, regulations league.Regulations) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveRegulations")
	defer span.End()

	summary := fmt.Sprintf("%d characters", len([]rune(regulations.Content)))
	return s.mutate(ctx, journal.ActionUpdate, journal.ResourceRegulations, "", summary, func(ctx context.Context) error {
		return s.backend.SaveRegulations(ctx, regulations)
	})
}

func (s *AdminService) CreateSocialLink(ctx context.Context, link league.SocialLink) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateSocialLink")
	defer span.End()

	link.ID = 0
	if strings.TrimSpace(link.Icon) == "" {
		link.Icon = league.IconLink
	}
	if err := link.Validate(); err != nil {
		return MutationResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.mutate(ctx, journal.ActionCreate, journal.ResourceSocialLink, "", link.Platform+" "+link.URL, func(ctx context.Context) error {
		return s.backend.CreateSocialLink(ctx, link)
	})
}

func (s *AdminService) DeleteSocialLink(ctx context.Context, linkID int64) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteSocialLink")
	defer span.End()

	if linkID <= 0 {
		return MutationResult{}, fmt.Errorf("%w: social link id is required", ErrInvalidInput)
	}
	return s.mutate(ctx, journal.ActionDelete, journal.ResourceSocialLink, formatID(linkID), "", func(ctx context.Context) error {
		return s.backend.DeleteSocialLink(ctx, linkID)
	})
}

// CreatePlayer registers a player. Rosters are not in the snapshot, so only the player
// cache is invalidated.
func (s *AdminService) CreatePlayer(ctx context.Context, item player.NewPlayer) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreatePlayer")
	defer span.End()

	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.backend.CreatePlayer(ctx, item)
	s.record(ctx, journal.ActionCreate, journal.ResourcePlayer, formatID(playerID), fmt.Sprintf("#%d %s", item.JerseyNumber, item.Nickname), err)
	if err != nil {
		return 0, err
	}
	s.invalidatePlayers(ctx)
	return playerID, nil
}

func (s *AdminService) UpdatePlayerStats(ctx context.Context, line player.StatLine) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdatePlayerStats")
	defer span.End()

	line.Division = strings.TrimSpace(line.Division)
	if err := line.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter, err := s.profile.NormalizePlayerFilter(line.Division)
	if err != nil || filter == league.PlayerFilterAll {
		return fmt.Errorf("%w: stat division %q is not a player division", ErrInvalidInput, line.Division)
	}

	err = s.backend.UpdatePlayerStats(ctx, line)
	summary := fmt.Sprintf("division=%s goals=%d assists=%d games=%d", line.Division, line.Goals, line.Assists, line.GamesPlayed)
	s.record(ctx, journal.ActionUpdate, journal.ResourcePlayerStats, formatID(line.PlayerID), summary, err)
	if err != nil {
		return err
	}
	s.invalidatePlayers(ctx)
	return nil
}

// UploadImage sniffs raw bytes, requires an image type and forwards it as a data URL.
func (s *AdminService) UploadImage(ctx context.Context, raw []byte) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UploadImage")
	defer span.End()

	dataURL, mimeType, err := buildImageDataURL(raw)
	if err != nil {
		return "", err
	}

	url, err := s.backend.UploadImage(ctx, dataURL)
	s.record(ctx, journal.ActionCreate, journal.ResourceImage, "", fmt.Sprintf("%s %d bytes", mimeType, len(raw)), err)
	if err != nil {
		return "", err
	}
	return url, nil
}

// UploadImageDataURL accepts a client-built data URL and re-checks its payload.
func (s *AdminService) UploadImageDataURL(ctx context.Context, dataURL string) (string, error) {
	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	return s.UploadImage(ctx, raw)
}

// Refresh runs a fetch cycle on demand. Losing to a concurrent cycle is not an error;
// the summary then describes whatever is committed.
func (s *AdminService) Refresh(ctx context.Context) (snapshot.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Refresh")
	defer span.End()

	summary, err := s.refresher.Refresh(ctx)
	if errors.Is(err, ErrSnapshotSuperseded) {
		return s.records.Current().Summary(), nil
	}
	if err != nil {
		return snapshot.Summary{}, err
	}
	return summary, nil
}

func (s *AdminService) mutate(
	ctx context.Context,
	action journal.Action,
	resource string,
	resourceID string,
	summary string,
	call func(context.Context) error,
) (MutationResult, error) {
	err := call(ctx)
	s.record(ctx, action, resource, resourceID, summary, err)
	if err != nil {
		return MutationResult{}, err
	}

	result, refreshErr := s.refresher.Refresh(ctx)
	if refreshErr != nil {
		if !errors.Is(refreshErr, ErrSnapshotSuperseded) {
			s.logger.WarnContext(ctx, "refresh after admin mutation failed", "resource", resource, "error", refreshErr)
		}
		return MutationResult{Summary: s.records.Current().Summary()}, nil
	}
	return MutationResult{Summary: result, Refreshed: true}, nil
}

// record appends to the journal. Journal failures never fail the request.
func (s *AdminService) record(ctx context.Context, action journal.Action, resource, resourceID, summary string, callErr error) {
	if s.journal == nil {
		return
	}

	entryID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate journal id failed", "error", err)
		return
	}
	outcome := journal.OutcomeOK
	if callErr != nil {
		outcome = journal.OutcomeFailed
	}

	entry := journal.Entry{
		ID:         entryID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Summary:    strings.TrimSpace(summary),
		Outcome:    outcome,
		CreatedAt:  s.clock.Now().UTC(),
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "append admin journal failed", "resource", resource, "action", string(action), "error", err)
	}
}

func (s *AdminService) invalidatePlayers(ctx context.Context) {
	if s.players != nil {
		s.players.Invalidate(ctx)
	}
}

func buildImageDataURL(raw []byte) (string, string, error) {
	if len(raw) == 0 {
		return "", "", fmt.Errorf("%w: image is empty", ErrInvalidInput)
	}
	if len(raw) > MaxImageBytes {
		return "", "", fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidInput, MaxImageBytes)
	}

	detected := mimetype.Detect(raw)
	mimeType := detected.String()
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", "", fmt.Errorf("%w: unsupported image type %s", ErrInvalidInput, mimeType)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), mimeType, nil
}

func decodeDataURL(dataURL string) ([]byte, error) {
	dataURL = strings.TrimSpace(dataURL)
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("%w: image must be a base64 data url", ErrInvalidInput)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidInput, MaxImageBytes)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrInvalidInput, err)
	}
	return raw, nil
}

func matchSummary(item match.Match) string {
	return fmt.Sprintf("%d vs %d %d:%d %s", item.HomeTeamID, item.AwayTeamID, item.HomeScore, item.AwayScore, item.Status)
}

func formatID(v int64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
