package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/preference"
)

const maxClientIDLength = 128

type PreferenceService struct {
	repo preference.Repository
}

func NewPreferenceService(repo preference.Repository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) Get(ctx context.Context, clientID string) (preference.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Get")
	defer span.End()

	clientID, err := normalizeClientID(clientID)
	if err != nil {
		return preference.Preferences{}, err
	}

	prefs, ok, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return preference.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	if !ok {
		return preference.Default(), nil
	}
	return prefs, nil
}

func (s *PreferenceService) Put(ctx context.Context, clientID string, prefs preference.Preferences) (preference.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Put")
	defer span.End()

	clientID, err := normalizeClientID(clientID)
	if err != nil {
		return preference.Preferences{}, err
	}
	prefs.Theme = strings.ToLower(strings.TrimSpace(prefs.Theme))
	if err := prefs.Validate(); err != nil {
		return preference.Preferences{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Put(ctx, clientID, prefs); err != nil {
		return preference.Preferences{}, fmt.Errorf("put preferences: %w", err)
	}
	return prefs, nil
}

func normalizeClientID(clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if len(clientID) > maxClientIDLength {
		return "", fmt.Errorf("%w: client id is too long", ErrInvalidInput)
	}
	return clientID, nil
}
