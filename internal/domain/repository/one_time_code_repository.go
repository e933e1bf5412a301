package repository

import (
	"context"
	"errors"
	"time"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCodeNotFound is returned when an account has no outstanding one-time code.
var ErrCodeNotFound = errors.New("one-time code not found")

// OneTimeCodeRepository defines persistence for hashed verification codes.
type OneTimeCodeRepository interface {
	// Create persists a new code record.
	Create(ctx context.Context, code *entity.OneTimeCode) error

	// FindLatestByAccountID returns the most recently created code of the account.
	FindLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.OneTimeCode, error)

	// DeleteByID removes a single code. Deleting a missing code yields ErrCodeNotFound.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByAccountID removes every code of the account and reports how many were removed.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)

	// DeleteExpired removes codes that expired before the given instant.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
