package ports

import (
	"context"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type AuthAPI interface {
	Token(ctx context.Context, creds domain.Credentials) (string, error)
	Signup(ctx context.Context, creds domain.Credentials) error
}
