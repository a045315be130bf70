package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/session"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// SessionKey is where the resolved *domain.Session lives in the gin context.
const SessionKey = "session"

type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// LoadSession resolves the session cookie once per request and injects the
// bearer token into the request context. Handlers and the API client read
// this single snapshot instead of going back to the store.
func LoadSession(cookieName string, resolver SessionResolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionNotFound) {
				log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session lookup failed",
					logger.String("error", err.Error()),
				)
			}
			c.Next()
			return
		}

		c.Set(SessionKey, sess)
		c.Request = c.Request.WithContext(session.WithToken(c.Request.Context(), sess.Token))

		c.Next()
	}
}

// RequireAuth gates pages that only make sense with a token present.
func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := c.Get(SessionKey); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
