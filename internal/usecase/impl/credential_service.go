package impl

import (
	"context"
	"log/slog"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo repository.AccountRepository
	hasher      service.SecretHasher
	logger      *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.SecretHasher
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// FindByEmail looks up an account by its exact email.
func (srv *credentialService) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

// FindByID looks up an account by its identifier.
func (srv *credentialService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// Create stores a new account in the pending verification state.
func (srv *credentialService) Create(ctx context.Context, username, email, passwordHash string) (*entity.Account, error) {
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsVerified:   false,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.String("accountID", account.ID.String()))

	return account, nil
}

// MarkVerified moves the account into the verified state.
func (srv *credentialService) MarkVerified(ctx context.Context, id uuid.UUID) error {
	if err := srv.accountRepo.MarkVerified(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark account verified")
	}

	return nil
}

// VerifyPassword compares the plaintext against the stored hash.
func (srv *credentialService) VerifyPassword(account *entity.Account, plaintext string) bool {
	if account == nil || account.PasswordHash == "" {
		return false
	}

	return srv.hasher.Compare(plaintext, account.PasswordHash)
}
