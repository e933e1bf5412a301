package usecase

import (
	"context"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialUsecase owns account records and the check of their passwords.
type CredentialUsecase interface {
	// FindByEmail fails with repository.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID fails with repository.ErrAccountNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create stores a new unverified account. Duplicates fail with ErrUserAlreadyExists.
	Create(ctx context.Context, username, email, passwordHash string) (*entity.Account, error)

	MarkVerified(ctx context.Context, id uuid.UUID) error

	VerifyPassword(account *entity.Account, plaintext string) bool
}
