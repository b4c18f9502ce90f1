package preference

import (
	"context"
	"fmt"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Preferences struct {
	Theme string
}

func Default() Preferences {
	return Preferences{Theme: ThemeLight}
}

func (p Preferences) Validate() error {
	switch strings.TrimSpace(p.Theme) {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("theme must be %q or %q", ThemeLight, ThemeDark)
	}
}

// Repository is a key-value store of presentation preferences per client.
type Repository interface {
	Get(ctx context.Context, clientID string) (Preferences, bool, error)
	Put(ctx context.Context, clientID string, prefs Preferences) error
}
