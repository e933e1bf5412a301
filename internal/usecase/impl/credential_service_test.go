package impl

import (
	"context"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCredentialService(t *testing.T) (usecase.CredentialUsecase, *mockRepo.MockAccountRepository, *mockSvc.MockSecretHasher) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockSecretHasher(t)

	service := NewCredentialService(CredentialServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return service, accountRepo, hasher
}

func TestCredentialService_Create(t *testing.T) {
	service, accountRepo, _ := createTestCredentialService(t)

	ctx := context.Background()
	accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.NotEqual(t, uuid.Nil, account.ID)
			assert.False(t, account.IsVerified)
			assert.Equal(t, "hashed_password", account.PasswordHash)
		}).
		Return(nil)

	account, err := service.Create(ctx, "alice", "a@x.com", "hashed_password")

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, entity.AccountStatePendingVerification, account.State())
}

func TestCredentialService_Create_Duplicate(t *testing.T) {
	service, accountRepo, _ := createTestCredentialService(t)

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	account, err := service.Create(context.Background(), "alice", "a@x.com", "hashed_password")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestCredentialService_FindByEmail_NotFound(t *testing.T) {
	service, accountRepo, _ := createTestCredentialService(t)

	accountRepo.EXPECT().FindByEmail(mock.Anything, "ghost@x.com").Return(nil, repository.ErrAccountNotFound)

	_, err := service.FindByEmail(context.Background(), "ghost@x.com")

	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestCredentialService_FindByID(t *testing.T) {
	service, accountRepo, _ := createTestCredentialService(t)

	account := &entity.Account{ID: uuid.New(), Username: "alice"}
	accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	got, err := service.FindByID(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestCredentialService_MarkVerified(t *testing.T) {
	service, accountRepo, _ := createTestCredentialService(t)

	id := uuid.New()
	accountRepo.EXPECT().MarkVerified(mock.Anything, id).Return(nil)

	assert.NoError(t, service.MarkVerified(context.Background(), id))
}

func TestCredentialService_VerifyPassword(t *testing.T) {
	service, _, hasher := createTestCredentialService(t)

	account := &entity.Account{PasswordHash: "hashed_password"}
	hasher.EXPECT().Compare("secret1", "hashed_password").Return(true)
	hasher.EXPECT().Compare("nope", "hashed_password").Return(false)

	assert.True(t, service.VerifyPassword(account, "secret1"))
	assert.False(t, service.VerifyPassword(account, "nope"))
	assert.False(t, service.VerifyPassword(&entity.Account{}, "secret1"))
	assert.False(t, service.VerifyPassword(nil, "secret1"))
}
