package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/phl-league/internal/domain/preference"
)

type PreferenceRepository struct {
	mu    sync.RWMutex
	items map[string]preference.Preferences
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{items: make(map[string]preference.Preferences)}
}

func (r *PreferenceRepository) Get(_ context.Context, clientID string) (preference.Preferences, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[clientID]
	return item, ok, nil
}

func (r *PreferenceRepository) Put(_ context.Context, clientID string, prefs preference.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[clientID] = prefs
	return nil
}
