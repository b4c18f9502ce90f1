package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/journal"
)

const DefaultJournalCapacity = 500

// JournalRepository keeps the most recent entries in a fixed-size ring.
type JournalRepository struct {
	mu       sync.RWMutex
	entries  []journal.Entry
	next     int
	size     int
	capacity int
}

func NewJournalRepository(capacity int) *JournalRepository {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &JournalRepository{
		entries:  make([]journal.Entry, capacity),
		capacity: capacity,
	}
}

func (r *JournalRepository) Append(_ context.Context, entry journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
	return nil
}

// List walks the ring newest first.
func (r *JournalRepository) List(_ context.Context, query journal.Query) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journal.Entry, 0, min(r.size, max(query.Limit, 0)))
	for i := 0; i < r.size; i++ {
		if query.Limit > 0 && len(out) >= query.Limit {
			break
		}
		item := r.entries[(r.next-1-i+r.capacity)%r.capacity]
		if query.Resource != "" && item.Resource != query.Resource {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *JournalRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]journal.Entry, 0, r.size)
	for i := r.size - 1; i >= 0; i-- {
		item := r.entries[(r.next-1-i+r.capacity)%r.capacity]
		if item.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, item)
	}

	removed := int64(r.size - len(kept))
	r.entries = make([]journal.Entry, r.capacity)
	copy(r.entries, kept)
	r.size = len(kept)
	r.next = len(kept) % r.capacity
	return removed, nil
}
