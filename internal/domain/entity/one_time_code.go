package entity

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCode is an emailed verification code bound to one account.
// Only the hash of the code is kept.
type OneTimeCode struct {
	ID        uuid.UUID
	AccountID uuid.UUID // Weak reference; the account record is owned by the credential store.
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be accepted at the given instant.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
