package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/domain/champion"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/domain/match"
	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/domain/team"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	FetchOutcomeCommitted  = "committed"
	FetchOutcomeFailed     = "failed"
	FetchOutcomeSuperseded = "superseded"

	readinessFailureLimit = 3
)

// FetchCycleRecorder receives one observation per fetch cycle.
type FetchCycleRecorder interface {
	ObserveFetchCycle(outcome string, elapsed time.Duration)
}

type SnapshotStatus struct {
	Generation          uint64
	LastAttempt         time.Time
	LastSuccess         time.Time
	ConsecutiveFailures int
	LastError           string
}

type SnapshotServiceOption func(*SnapshotService)

func WithSnapshotClock(clock clockwork.Clock) SnapshotServiceOption {
	return func(s *SnapshotService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithFetchCycleRecorder(recorder FetchCycleRecorder) SnapshotServiceOption {
	return func(s *SnapshotService) {
		s.recorder = recorder
	}
}

// SnapshotService is the record store. Readers always see a complete snapshot; a fetch
// cycle replaces it wholesale or not at all.
type SnapshotService struct {
	backend  LeagueBackend
	logger   *logging.Logger
	clock    clockwork.Clock
	recorder FetchCycleRecorder

	current   atomic.Pointer[snapshot.Snapshot]
	initiated atomic.Uint64

	mu       sync.Mutex
	status   SnapshotStatus
	onCommit []func(context.Context, *snapshot.Snapshot)
}

func NewSnapshotService(backend LeagueBackend, logger *logging.Logger, opts ...SnapshotServiceOption) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &SnapshotService{
		backend: backend,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(snapshot.Empty())
	return s
}

// OnCommit registers a hook run synchronously after every committed cycle.
func (s *SnapshotService) OnCommit(fn func(context.Context, *snapshot.Snapshot)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onCommit = append(s.onCommit, fn)
	s.mu.Unlock()
}

func (s *SnapshotService) Current() *snapshot.Snapshot {
	return s.current.Load()
}

func (s *SnapshotService) Status() SnapshotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsReady is true once a snapshot has been committed and the backend has not failed
// several cycles in a row since.
func (s *SnapshotService) IsReady() bool {
	status := s.Status()
	return !status.LastSuccess.IsZero() && status.ConsecutiveFailures < readinessFailureLimit
}

// Refresh runs one fetch cycle: five concurrent reads, then an atomic commit. A cycle
// that completes after a newer one was initiated is discarded with ErrSnapshotSuperseded.
func (s *SnapshotService) Refresh(ctx context.Context) (snapshot.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Refresh")
	defer span.End()

	generation := s.initiated.Add(1)
	startedAt := s.clock.Now()

	next, err := s.fetch(ctx)
	if err != nil {
		s.recordFailure(startedAt, err)
		s.observe(FetchOutcomeFailed, startedAt)
		s.logger.WarnContext(ctx, "snapshot fetch cycle failed", "generation", generation, "error", err)
		return snapshot.Summary{}, err
	}

	next.Generation = generation
	next.FetchedAt = s.clock.Now()

	s.mu.Lock()
	if latest := s.initiated.Load(); latest != generation {
		s.mu.Unlock()
		s.observe(FetchOutcomeSuperseded, startedAt)
		s.logger.InfoContext(ctx, "snapshot fetch cycle superseded", "generation", generation, "latest", latest)
		return snapshot.Summary{}, fmt.Errorf("%w: generation=%d latest=%d", ErrSnapshotSuperseded, generation, latest)
	}
	s.current.Store(next)
	s.status.Generation = generation
	s.status.LastAttempt = startedAt
	s.status.LastSuccess = next.FetchedAt
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	hooks := slices.Clone(s.onCommit)
	s.mu.Unlock()

	s.observe(FetchOutcomeCommitted, startedAt)
	summary := next.Summary()
	s.logger.InfoContext(ctx, "snapshot committed",
		"generation", generation,
		"teams", summary.Teams,
		"matches", summary.Matches,
		"champions", summary.Champions,
	)
	for _, hook := range hooks {
		hook(ctx, next)
	}
	return summary, nil
}

func (s *SnapshotService) fetch(ctx context.Context) (*snapshot.Snapshot, error) {
	var (
		teams       []team.Team
		matches     []match.Match
		champions   []champion.Champion
		info        league.Info
		regulations league.Regulations
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.backend.ListTeams(ctx)
		if err != nil {
			return fmt.Errorf("fetch teams: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.backend.ListMatches(ctx)
		if err != nil {
			return fmt.Errorf("fetch matches: %w", err)
		}
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.backend.ListChampions(ctx)
		if err != nil {
			return fmt.Errorf("fetch champions: %w", err)
		}
		champions = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, err := s.backend.GetLeagueInfo(ctx)
		if err != nil {
			return fmt.Errorf("fetch league info: %w", err)
		}
		info = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, err := s.backend.GetRegulations(ctx)
		if err != nil {
			return fmt.Errorf("fetch regulations: %w", err)
		}
		regulations = item
		return nil
	})
	if err := p.Wait(); err != nil {
		if !errors.Is(err, ErrDependencyUnavailable) {
			err = fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
		}
		return nil, err
	}

	next := snapshot.Empty()
	if teams != nil {
		next.Teams = teams
	}
	if matches != nil {
		next.Matches = matches
	}
	if champions != nil {
		next.Champions = champions
	}
	next.Info = info.WithDefaults()
	next.Regulations = regulations.WithDefaults()
	return next, nil
}

func (s *SnapshotService) recordFailure(startedAt time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastAttempt = startedAt
	s.status.ConsecutiveFailures++
	s.status.LastError = err.Error()
}

func (s *SnapshotService) observe(outcome string, startedAt time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveFetchCycle(outcome, s.clock.Since(startedAt))
}
