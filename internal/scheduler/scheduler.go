package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrBadInterval   = errors.New("job interval must be > 0")
)

// Service wraps a gocron scheduler. Job tasks receive a context that is cancelled on Stop.
type Service struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	stopOnce  sync.Once
	stopErr   error
}

func New(clock clockwork.Clock, logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger = logger.Named("scheduler")

	sched, err := gocron.NewScheduler(
		gocron.WithClock(clock),
		gocron.WithLogger(logger),
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
				gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
					logger.Warn("scheduler job failed",
						"job_id", jobID.String(),
						"job_name", jobName,
						"error", err,
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{scheduler: sched, logger: logger, ctx: ctx, cancel: cancel}, nil
}

func (s *Service) Start() {
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.cancel()
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

func (s *Service) Jobs() []gocron.Job {
	return s.scheduler.Jobs()
}

// AddDurationJob runs task every interval. A run that is still going when the next is due
// causes that next run to be skipped.
func (s *Service) AddDurationJob(name string, interval time.Duration, task func(context.Context) error) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if interval <= 0 {
		return nil, ErrBadInterval
	}

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.wrap(name, task)),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.logger.Error("register scheduler job failed", "job_name", name, "error", err)
		return nil, err
	}
	s.logger.Info("scheduler job registered", "job_name", name, "interval", interval.String())
	return job, nil
}

func (s *Service) AddCronJob(name, cronExpr string, task func(context.Context) error) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(s.wrap(name, task)),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.logger.Error("register scheduler job failed", "job_name", name, "cron", cronExpr, "error", err)
		return nil, err
	}
	s.logger.Info("scheduler job registered", "job_name", name, "cron", cronExpr)
	return job, nil
}

func (s *Service) wrap(name string, task func(context.Context) error) func() error {
	return func() error {
		s.logger.Debug("scheduler job started", "job_name", name)
		if err := task(s.ctx); err != nil {
			return err
		}
		s.logger.Debug("scheduler job completed", "job_name", name)
		return nil
	}
}
