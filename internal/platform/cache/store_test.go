package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "players:all", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("backend down")
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_ExpiresEntriesWithClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStoreWithClock[string](time.Minute, clock)
	ctx := context.Background()

	expiresAt := store.Set(ctx, "session:abc", "admin")
	if !expiresAt.Equal(clock.Now().Add(time.Minute)) {
		t.Fatalf("unexpected expiry %s", expiresAt)
	}
	if v, ok := store.Get(ctx, "session:abc"); !ok || v != "admin" {
		t.Fatalf("expected live entry, got %q %v", v, ok)
	}

	clock.Advance(time.Minute)
	if _, ok := store.Get(ctx, "session:abc"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be dropped on read")
	}
}

func TestStore_SweepAndDeletePrefix(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStoreWithClock[int](time.Minute, clock)
	ctx := context.Background()

	store.Set(ctx, "players:all", 1)
	store.Set(ctx, "players:A", 2)
	clock.Advance(30 * time.Second)
	store.Set(ctx, "session:x", 3)
	clock.Advance(45 * time.Second)

	if removed := store.Sweep(ctx); removed != 2 {
		t.Fatalf("expected two expired entries swept, got %d", removed)
	}

	store.Set(ctx, "players:B", 4)
	store.DeletePrefix(ctx, "players:")
	if _, ok := store.Get(ctx, "players:B"); ok {
		t.Fatalf("expected prefix delete to remove players:B")
	}
	if _, ok := store.Get(ctx, "session:x"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
