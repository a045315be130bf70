package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const minPasswordLength = 6

type AuthService struct {
	api        ports.AuthAPI
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     logger.Logger
}

func NewAuthService(
	api ports.AuthAPI,
	sessions ports.SessionStore,
	sessionTTL time.Duration,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		api:        api,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login exchanges credentials for a bearer token and stores it in a fresh
// session. The token itself is never inspected beyond this point.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	token, err := s.api.Token(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.New().String(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err = s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created",
		logger.String("session_id", sess.ID),
	)

	return sess, nil
}

// Signup validates the form locally first: a password mismatch or a short
// password never reaches the network. On success the account is logged in
// right away.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.Session, error) {
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	creds := domain.Credentials{
		Email:    input.Email,
		Password: input.Password,
	}

	if err := s.api.Signup(ctx, creds); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	return s.Login(ctx, creds)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info("session deleted",
		logger.String("session_id", sessionID),
	)

	return nil
}

// Resolve loads the session behind a cookie. Expired sessions count as absent
// even before the sweeper gets to them.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionNotFound
	}

	return sess, nil
}

func (s *AuthService) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup expired: %w", err)
	}

	if n > 0 {
		s.logger.Info("expired sessions removed",
			logger.Int64("count", n),
		)
	}

	return n, nil
}
