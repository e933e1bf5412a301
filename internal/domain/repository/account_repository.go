// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations of the credential store.
// Implementations must not cache: every call reads the source of truth.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. A duplicate email or username yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, account *entity.Account) error

	// MarkVerified flips the verification flag of the account.
	MarkVerified(ctx context.Context, id uuid.UUID) error
}
