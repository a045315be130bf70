package domain

import "time"

// Session is the only state this service persists: an opaque bearer token
// issued by the platform API, keyed by the browser's session cookie. Token
// presence, not validity, is what the front-end branches on.
type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
