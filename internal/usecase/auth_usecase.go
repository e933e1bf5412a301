// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyOTPInput defines the data required to confirm an email address.
// A malformed email is simply an unknown account.
type VerifyOTPInput struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// ResendOTPInput defines the data required to replace the outstanding code.
type ResendOTPInput struct {
	Email string `json:"email" validate:"required"`
}

// LoginInput defines the data required for an account to log in.
// Only presence is checked so unknown and malformed emails fail the same way.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
	// PendingToken is the short-lived registration token. It never authorizes a request.
	PendingToken string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresIn time.Duration
	Profile   entity.Profile
}

// AuthUsecase drives the account through the verification state machine
// and issues session tokens once it is verified.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
	ResendOTP(ctx context.Context, input *ResendOTPInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a session token to its account. Pending tokens are rejected.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}
