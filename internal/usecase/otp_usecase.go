package usecase

import (
	"context"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// OTPUsecase manages the one-time codes that prove email ownership.
type OTPUsecase interface {
	// Issue replaces any outstanding code of the account with a fresh one and returns its plaintext.
	Issue(ctx context.Context, accountID uuid.UUID) (string, error)

	// Validate checks the candidate against the latest code of the account.
	// It fails with ErrOTPNotFound, ErrOTPExpired or ErrOTPInvalid.
	Validate(ctx context.Context, accountID uuid.UUID, candidate string) (*entity.OneTimeCode, error)

	// Consume deletes a validated code so it cannot be used again.
	Consume(ctx context.Context, code *entity.OneTimeCode) error

	// CleanupExpired deletes every expired code and reports how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
