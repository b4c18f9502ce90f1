package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/phl-league/external/leagueapi"
	"github.com/riskibarqy/phl-league/internal/config"
	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/player"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/phl-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/phl-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/phl-league/internal/observability"
	"github.com/riskibarqy/phl-league/internal/platform/cache"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/riskibarqy/phl-league/internal/platform/resilience"
	"github.com/riskibarqy/phl-league/internal/scheduler"
	"github.com/riskibarqy/phl-league/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	journalMemoryCapacity = 500
	playerWarmTimeout     = 30 * time.Second
	sessionSweepInterval  = 10 * time.Minute
)

// App owns the long-lived pieces main needs to start and stop.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Service
	Snapshots *usecase.SnapshotService

	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	backend := leagueapi.NewClient(leagueapi.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.LeagueAPITimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:    cfg.LeagueAPIBaseURL,
		PlayersURL: cfg.LeaguePlayersURL,
		Timeout:    cfg.LeagueAPITimeout,
		MaxRetries: cfg.LeagueAPIMaxRetries,
		Logger:     logger.Named("leagueapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.LeagueAPICircuitEnabled,
			FailureThreshold: cfg.LeagueAPICircuitFailureCount,
			OpenTimeout:      cfg.LeagueAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.LeagueAPICircuitHalfOpenMaxReq,
		},
		Recorder:             metrics,
		OnCircuitStateChange: metrics.OnCircuitStateChange,
	})
	metrics.SetCircuitState(backend.CircuitState())

	snapshots := usecase.NewSnapshotService(backend, logger.Named("snapshot"),
		usecase.WithSnapshotClock(clock),
		usecase.WithFetchCycleRecorder(metrics),
	)

	players := usecase.NewPlayerService(backend, snapshots, cfg.Profile,
		cache.NewStore[[]player.Player](cfg.PlayersCacheTTL), logger.Named("players"))
	snapshots.OnCommit(func(_ context.Context, _ *snapshot.Snapshot) {
		// The commit context belongs to the fetch cycle and ends with it.
		go warmPlayers(players, logger)
	})

	app := &App{cfg: cfg, logger: logger, Snapshots: snapshots}

	journalRepo, err := app.journalRepository()
	if err != nil {
		return nil, err
	}

	passwordHash, err := adminPasswordHash(cfg)
	if err != nil {
		app.closeDB()
		return nil, err
	}
	auth := usecase.NewAuthService(passwordHash,
		cache.NewStore[usecase.AdminSession](cfg.AdminSessionTTL), nil, logger.Named("auth"))

	journals := usecase.NewJournalService(journalRepo, cfg.JournalRetention, clock, logger.Named("journal"))
	admin := usecase.NewAdminService(usecase.AdminServiceConfig{
		Backend:   backend,
		Records:   snapshots,
		Refresher: snapshots,
		Players:   players,
		Journal:   journalRepo,
		Profile:   cfg.Profile,
		Clock:     clock,
		Logger:    logger.Named("admin"),
	})

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		League:      usecase.NewLeagueService(snapshots, players, cfg.Profile, logger.Named("league")),
		Standings:   usecase.NewStandingsService(snapshots, cfg.Profile),
		Schedule:    usecase.NewScheduleService(snapshots),
		Players:     players,
		Admin:       admin,
		Auth:        auth,
		Journal:     journals,
		Preferences: usecase.NewPreferenceService(memory.NewPreferenceRepository()),
		Readiness:   snapshots,
		Profile:     cfg.Profile,
		Logger:      logger,
	})

	routerCfg := httpapi.RouterConfig{
		Handler:            handler,
		Verifier:           auth,
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		routerCfg.Metrics = metrics.Handler()
	}

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	sched, err := scheduler.New(clock, logger)
	if err != nil {
		app.closeDB()
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	var pruner scheduler.Pruner
	if cfg.JournalRetention > 0 {
		pruner = journals
	}
	if err := scheduler.RegisterJobs(sched, scheduler.JobsConfig{
		RefreshInterval:      cfg.SnapshotRefreshInterval,
		PruneCron:            cfg.JournalPruneCron,
		SessionSweepInterval: sessionSweepInterval,
	}, snapshots, pruner, auth); err != nil {
		_ = sched.Stop()
		app.closeDB()
		return nil, err
	}
	app.Scheduler = sched

	return app, nil
}

// WarmUp runs the first fetch cycle. A failure leaves the service unready but running.
func (a *App) WarmUp(ctx context.Context) bool {
	return scheduler.WarmUp(ctx, a.Snapshots, a.cfg.LeagueAPITimeout*4, a.logger)
}

// Shutdown stops the HTTP server, then background jobs, then closes the journal database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := a.Scheduler.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
	}
	if err := a.closeDB(); err != nil {
		errs = append(errs, fmt.Errorf("close journal db: %w", err))
	}
	return errors.Join(errs...)
}

func (a *App) journalRepository() (journal.Repository, error) {
	if a.cfg.JournalDriver != config.JournalDriverPostgres {
		a.logger.Info("admin journal kept in memory", "capacity", journalMemoryCapacity)
		return memory.NewJournalRepository(journalMemoryCapacity), nil
	}

	dsn := parseJournalDSN(a.cfg.DBURL, a.cfg.DBDisablePreparedBinary)
	db, err := openJournalDB(context.Background(), dsn)
	if err != nil {
		return nil, err
	}

	a.db = db
	a.logger.Info("admin journal stored in postgres", "db", dsn.Name)
	return postgres.NewJournalRepository(db), nil
}

func (a *App) closeDB() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func adminPasswordHash(cfg config.Config) ([]byte, error) {
	if hash := strings.TrimSpace(cfg.AdminPasswordHash); hash != "" {
		return []byte(hash), nil
	}
	hash, err := usecase.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}
	return hash, nil
}

func warmPlayers(players *usecase.PlayerService, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), playerWarmTimeout)
	defer cancel()

	result, err := players.Warm(ctx)
	if err != nil {
		logger.WarnContext(ctx, "player cache warm failed", "error", err, "loaded", result.Loaded, "failed", result.Failed)
		return
	}
	logger.DebugContext(ctx, "player cache warmed", "loaded", result.Loaded)
}
