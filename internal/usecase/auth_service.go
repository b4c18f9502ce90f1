package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/phl-league/internal/platform/cache"
	"github.com/riskibarqy/phl-league/internal/platform/id"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"golang.org/x/crypto/bcrypt"
)

const sessionCachePrefix = "session:"

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService gates the admin surface with a shared password. Sessions live only in
// this process and expire after the store TTL.
type AuthService struct {
	passwordHash []byte
	sessions     *cache.Store[AdminSession]
	tokens       id.Generator
	logger       *logging.Logger
}

func NewAuthService(passwordHash []byte, sessions *cache.Store[AdminSession], tokens id.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	if tokens == nil {
		tokens = id.NewTokenGenerator(32)
	}
	return &AuthService{
		passwordHash: passwordHash,
		sessions:     sessions,
		tokens:       tokens,
		logger:       logger,
	}
}

// HashPassword is used at start-up when only a plain password is configured.
func HashPassword(plain string) ([]byte, error) {
	if strings.TrimSpace(plain) == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (s *AuthService) Login(ctx context.Context, password string) (AdminSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if password == "" {
		return AdminSession{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "admin login rejected")
		return AdminSession{}, fmt.Errorf("%w: invalid password", ErrUnauthorized)
	}

	token, err := s.tokens.NewID()
	if err != nil {
		return AdminSession{}, fmt.Errorf("issue session token: %w", err)
	}
	session := AdminSession{Token: token}
	session.ExpiresAt = s.sessions.Set(ctx, sessionCachePrefix+token, session)

	s.logger.InfoContext(ctx, "admin session opened", "expires_at", session.ExpiresAt)
	return session, nil
}

// Verify accepts a token issued by Login that has not expired or been revoked.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: admin token is required", ErrUnauthorized)
	}
	if _, ok := s.sessions.Get(ctx, sessionCachePrefix+token); !ok {
		return fmt.Errorf("%w: admin session expired or unknown", ErrUnauthorized)
	}
	return nil
}

func (s *AuthService) Logout(ctx context.Context, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	s.sessions.Delete(ctx, sessionCachePrefix+token)
}

// SweepSessions drops expired sessions that were never presented again.
func (s *AuthService) SweepSessions(ctx context.Context) int {
	removed := s.sessions.Sweep(ctx)
	if removed > 0 {
		s.logger.DebugContext(ctx, "expired admin sessions swept", "removed", removed)
	}
	return removed
}
