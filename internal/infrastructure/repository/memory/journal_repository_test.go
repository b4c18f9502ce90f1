package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/preference"
)

func TestJournalRepository_RingKeepsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewJournalRepository(3)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		resource := journal.ResourceTeam
		if i%2 == 0 {
			resource = journal.ResourceMatch
		}
		if err := repo.Append(ctx, journal.Entry{ID: fmt.Sprintf("e%d", i), Resource: resource, CreatedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	items, err := repo.List(ctx, journal.Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 || items[0].ID != "e5" || items[1].ID != "e4" || items[2].ID != "e3" {
		t.Fatalf("unexpected ring contents: %+v", items)
	}

	teams, _ := repo.List(ctx, journal.Query{Resource: journal.ResourceTeam, Limit: 1})
	if len(teams) != 1 || teams[0].ID != "e5" {
		t.Fatalf("unexpected filtered contents: %+v", teams)
	}
}

func TestJournalRepository_DeleteBefore(t *testing.T) {
	t.Parallel()

	repo := NewJournalRepository(4)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		_ = repo.Append(ctx, journal.Entry{ID: fmt.Sprintf("e%d", i), CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	removed, err := repo.DeleteBefore(ctx, base.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("delete before: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	_ = repo.Append(ctx, journal.Entry{ID: "e7", CreatedAt: base.Add(7 * time.Hour)})
	items, _ := repo.List(ctx, journal.Query{})
	if len(items) != 3 || items[0].ID != "e7" || items[2].ID != "e5" {
		t.Fatalf("unexpected contents after prune: %+v", items)
	}
}

func TestPreferenceRepository_GetPut(t *testing.T) {
	t.Parallel()

	repo := NewPreferenceRepository()
	ctx := context.Background()

	if _, ok, _ := repo.Get(ctx, "c1"); ok {
		t.Fatalf("expected missing preferences")
	}
	_ = repo.Put(ctx, "c1", preferenceDark)
	got, ok, err := repo.Get(ctx, "c1")
	if err != nil || !ok || got != preferenceDark {
		t.Fatalf("unexpected get: %+v ok=%v err=%v", got, ok, err)
	}
}

var preferenceDark = preference.Preferences{Theme: preference.ThemeDark}
