package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
)

const (
	defaultJournalLimit = 50
	maxJournalLimit     = 500
)

var journalResources = map[string]struct{}{
	journal.ResourceTeam:        {},
	journal.ResourceMatch:       {},
	journal.ResourceChampion:    {},
	journal.ResourceLeague:      {},
	journal.ResourceRegulations: {},
	journal.ResourceSocialLink:  {},
	journal.ResourcePlayer:      {},
	journal.ResourcePlayerStats: {},
	journal.ResourceImage:       {},
}

type JournalService struct {
	repo      journal.Repository
	retention time.Duration
	clock     clockwork.Clock
	logger    *logging.Logger
}

func NewJournalService(repo journal.Repository, retention time.Duration, clock clockwork.Clock, logger *logging.Logger) *JournalService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &JournalService{
		repo:      repo,
		retention: retention,
		clock:     clock,
		logger:    logger,
	}
}

// List returns the newest entries first.
func (s *JournalService) List(ctx context.Context, query journal.Query) ([]journal.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JournalService.List")
	defer span.End()

	query.Resource = strings.TrimSpace(query.Resource)
	if query.Resource != "" {
		if _, ok := journalResources[query.Resource]; !ok {
			return nil, fmt.Errorf("%w: unknown journal resource=%s", ErrInvalidInput, query.Resource)
		}
	}
	switch {
	case query.Limit < 0:
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	case query.Limit == 0:
		query.Limit = defaultJournalLimit
	case query.Limit > maxJournalLimit:
		query.Limit = maxJournalLimit
	}

	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return items, nil
}

// Prune deletes entries older than the retention window. A zero retention keeps everything.
func (s *JournalService) Prune(ctx context.Context) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JournalService.Prune")
	defer span.End()

	if s.retention <= 0 {
		return 0, nil
	}
	cutoff := s.clock.Now().UTC().Add(-s.retention)
	removed, err := s.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	s.logger.InfoContext(ctx, "admin journal pruned", "removed", removed, "cutoff", cutoff)
	return removed, nil
}
