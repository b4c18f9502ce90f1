package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

// ReadinessReporter exposes the record store health for /readyz.
type ReadinessReporter interface {
	IsReady() bool
	Status() usecase.SnapshotStatus
}

type HandlerConfig struct {
	League      *usecase.LeagueService
	Standings   *usecase.StandingsService
	Schedule    *usecase.ScheduleService
	Players     *usecase.PlayerService
	Admin       *usecase.AdminService
	Auth        *usecase.AuthService
	Journal     *usecase.JournalService
	Preferences *usecase.PreferenceService
	Readiness   ReadinessReporter
	Profile     league.Profile
	Logger      *logging.Logger
}

type Handler struct {
	leagueService     *usecase.LeagueService
	standingsService  *usecase.StandingsService
	scheduleService   *usecase.ScheduleService
	playerService     *usecase.PlayerService
	adminService      *usecase.AdminService
	authService       *usecase.AuthService
	journalService    *usecase.JournalService
	preferenceService *usecase.PreferenceService
	readiness         ReadinessReporter
	profile           league.Profile
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     cfg.League,
		standingsService:  cfg.Standings,
		scheduleService:   cfg.Schedule,
		playerService:     cfg.Players,
		adminService:      cfg.Admin,
		authService:       cfg.Auth,
		journalService:    cfg.Journal,
		preferenceService: cfg.Preferences,
		readiness:         cfg.Readiness,
		profile:           cfg.Profile,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	status := h.readiness.Status()
	payload := readinessDTO{
		Status:              "ready",
		Generation:          status.Generation,
		ConsecutiveFailures: status.ConsecutiveFailures,
	}
	if !status.LastSuccess.IsZero() {
		at := status.LastSuccess.UTC()
		payload.LastSuccess = &at
	}

	if !h.readiness.IsReady() {
		payload.Status = "not_ready"
		writeSuccess(ctx, w, http.StatusServiceUnavailable, payload)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, payload)
}

// decodeJSON reads a single JSON document and rejects unknown fields.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, limit int64, target any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, target any) error {
	if err := h.decodeJSON(ctx, w, r, maxJSONBodyBytes, target); err != nil {
		return err
	}
	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryLimit returns fallback when the parameter is absent.
func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}
