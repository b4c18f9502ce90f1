package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/snapshot"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

const (
	SnapshotRefreshJob = "snapshot-refresh"
	JournalPruneJob    = "journal-prune"
	SessionSweepJob    = "session-sweep"

	pruneTimeout = time.Minute
)

type Refresher interface {
	Refresh(ctx context.Context) (snapshot.Summary, error)
}

type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

type SessionSweeper interface {
	SweepSessions(ctx context.Context) int
}

type JobsConfig struct {
	RefreshInterval      time.Duration
	PruneCron            string
	SessionSweepInterval time.Duration
}

// RegisterJobs adds the periodic snapshot refresh, the journal prune when pruner is set
// and the admin session sweep when sessions is set.
func RegisterJobs(s *Service, cfg JobsConfig, refresher Refresher, pruner Pruner, sessions SessionSweeper) error {
	if _, err := s.AddDurationJob(SnapshotRefreshJob, cfg.RefreshInterval, refreshTask(refresher, cfg.RefreshInterval, s.logger)); err != nil {
		return fmt.Errorf("register %s: %w", SnapshotRefreshJob, err)
	}
	if pruner != nil {
		if _, err := s.AddCronJob(JournalPruneJob, cfg.PruneCron, pruneTask(pruner, s.logger)); err != nil {
			return fmt.Errorf("register %s: %w", JournalPruneJob, err)
		}
	}
	if sessions != nil {
		if _, err := s.AddDurationJob(SessionSweepJob, cfg.SessionSweepInterval, sweepTask(sessions)); err != nil {
			return fmt.Errorf("register %s: %w", SessionSweepJob, err)
		}
	}
	return nil
}

// WarmUp runs one fetch cycle before the server starts. Failure is logged and tolerated;
// the periodic job keeps retrying.
func WarmUp(ctx context.Context, refresher Refresher, timeout time.Duration, logger *logging.Logger) bool {
	if logger == nil {
		logger = logging.Default()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summary, err := refresher.Refresh(ctx)
	if err != nil {
		logger.WarnContext(ctx, "warm snapshot fetch failed; serving empty snapshot until the next cycle", "error", err)
		return false
	}
	logger.InfoContext(ctx, "warm snapshot fetched",
		"generation", summary.Generation,
		"teams", summary.Teams,
		"matches", summary.Matches,
		"champions", summary.Champions,
	)
	return true
}

func refreshTask(refresher Refresher, timeout time.Duration, logger *logging.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		summary, err := refresher.Refresh(ctx)
		switch {
		case errors.Is(err, usecase.ErrSnapshotSuperseded):
			logger.DebugContext(ctx, "scheduled refresh superseded by a newer cycle")
			return nil
		case err != nil:
			return err
		}
		logger.DebugContext(ctx, "scheduled refresh committed", "generation", summary.Generation)
		return nil
	}
}

func pruneTask(pruner Pruner, logger *logging.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, pruneTimeout)
		defer cancel()

		removed, err := pruner.Prune(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "admin journal pruned", "removed", removed)
		return nil
	}
}

func sweepTask(sessions SessionSweeper) func(context.Context) error {
	return func(ctx context.Context) error {
		sessions.SweepSessions(ctx)
		return nil
	}
}
