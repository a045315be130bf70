package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports/mocks"
)

func TestAuthService_Login_CreatesSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	creds := domain.Credentials{Email: "alice@tum.de", Password: "secret123"}
	api.EXPECT().Token(mock.Anything, creds).Return("jwt-token", nil)

	var stored *domain.Session
	store.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Session) { stored = s }).
		Return(nil)

	sess, err := svc.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "jwt-token", sess.Token)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))
	assert.Equal(t, sess, stored)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	api.EXPECT().Token(mock.Anything, mock.Anything).Return("", domain.ErrUnauthorized)

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "alice@tum.de", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	store.AssertNotCalled(t, "Create")
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:           "alice@tum.de",
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "do not match")
	api.AssertNotCalled(t, "Signup")
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:           "alice@tum.de",
		Password:        "abc12",
		ConfirmPassword: "abc12",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	api.AssertNotCalled(t, "Signup")
}

func TestAuthService_Signup_LogsInAfterwards(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	creds := domain.Credentials{Email: "alice@tum.de", Password: "secret123"}
	api.EXPECT().Signup(mock.Anything, creds).Return(nil)
	api.EXPECT().Token(mock.Anything, creds).Return("jwt-token", nil)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	sess, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:           "alice@tum.de",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", sess.Token)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	apiErr := &domain.APIError{StatusCode: 400, Detail: "Email already registered"}
	api.EXPECT().Signup(mock.Anything, mock.Anything).Return(apiErr)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:           "alice@tum.de",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	require.Error(t, err)
	var got *domain.APIError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Email already registered", got.Detail)
	api.AssertNotCalled(t, "Token")
}

func TestAuthService_Resolve_Expired(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	sess := &domain.Session{
		ID:        "s1",
		Token:     "jwt-token",
		CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-12 * time.Hour),
	}
	store.EXPECT().GetByID(mock.Anything, "s1").Return(sess, nil)

	_, err := svc.Resolve(context.Background(), "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthService_Resolve_Valid(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	sess := &domain.Session{
		ID:        "s1",
		Token:     "jwt-token",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	store.EXPECT().GetByID(mock.Anything, "s1").Return(sess, nil)

	got, err := svc.Resolve(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", got.Token)
}

func TestAuthService_Logout(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	store.EXPECT().Delete(mock.Anything, "s1").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "s1"))
}

func TestAuthService_CleanupExpired(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := mocks.NewMockSessionStore(t)
	log := newTestLogger(t)

	svc := NewAuthService(api, store, 12*time.Hour, log)

	store.EXPECT().DeleteExpired(mock.Anything).Return(int64(3), nil)

	n, err := svc.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
