package session

import (
	"time"

	"github.com/google/uuid"
)

// Session asserts that a specific token string is currently bound to an
// active login. The gate only ever asks whether one exists; creation and
// revocation belong to the login flow.
type Session struct {
	Token       string
	PersonalKey uuid.UUID
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func (s *Session) TTL(now time.Time) time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}
