package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/phl-league/internal/domain/preference"
	preferencemock "github.com/riskibarqy/phl-league/internal/mocks/domain/preference"
)

func TestPreferenceService_GetDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	repo := preferencemock.NewRepository(t)
	ctx := context.Background()
	repo.On("Get", ctx, "client-1").Return(preference.Preferences{}, false, nil).Once()

	prefs, err := NewPreferenceService(repo).Get(ctx, " client-1 ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prefs.Theme != preference.ThemeLight {
		t.Fatalf("expected default theme, got %q", prefs.Theme)
	}
}

func TestPreferenceService_PutNormalizesTheme(t *testing.T) {
	t.Parallel()

	repo := preferencemock.NewRepository(t)
	ctx := context.Background()
	repo.On("Put", ctx, "client-1", preference.Preferences{Theme: preference.ThemeDark}).Return(nil).Once()

	prefs, err := NewPreferenceService(repo).Put(ctx, "client-1", preference.Preferences{Theme: " Dark "})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if prefs.Theme != preference.ThemeDark {
		t.Fatalf("unexpected theme %q", prefs.Theme)
	}
}

func TestPreferenceService_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	repo := preferencemock.NewRepository(t)
	service := NewPreferenceService(repo)
	ctx := context.Background()

	if _, err := service.Put(ctx, "client-1", preference.Preferences{Theme: "sepia"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for theme, got %v", err)
	}
	if _, err := service.Get(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank client, got %v", err)
	}
	if _, err := service.Get(ctx, strings.Repeat("x", maxClientIDLength+1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long client id, got %v", err)
	}
}

func TestPreferenceService_WrapsRepositoryError(t *testing.T) {
	t.Parallel()

	repo := preferencemock.NewRepository(t)
	ctx := context.Background()
	storeErr := errors.New("store down")
	repo.On("Get", ctx, "client-1").Return(preference.Preferences{}, false, storeErr).Once()

	if _, err := NewPreferenceService(repo).Get(ctx, "client-1"); !errors.Is(err, storeErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
