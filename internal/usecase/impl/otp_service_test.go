package impl

import (
	"bytes"
	"context"
	"crypto/rand"
	"strconv"
	"testing"
	"time"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// otpServiceFixtures holds all test dependencies for OTP service tests.
type otpServiceFixtures struct {
	service   *otpService
	txManager *mockRepo.MockTransactionManager
	codeRepo  *mockRepo.MockOneTimeCodeRepository
	hasher    *mockSvc.MockSecretHasher
	clock     *testClock
}

func createTestOTPService(t *testing.T) otpServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	codeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	hasher := mockSvc.NewMockSecretHasher(t)
	clock := newTestClock()

	service := newOTPService(OTPServiceParams{
		TxManager: txManager,
		CodeRepo:  codeRepo,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}, rand.Reader, clock.Now)

	return otpServiceFixtures{
		service:   service,
		txManager: txManager,
		codeRepo:  codeRepo,
		hasher:    hasher,
		clock:     clock,
	}
}

// runInTx makes the transaction manager mock run the callback against txCodeRepo.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, txCodeRepo *mockRepo.MockOneTimeCodeRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().OneTimeCodeRepo().Return(txCodeRepo)

			return fn(factory)
		})
}

func TestOTPService_Issue_ReplacesOutstandingCodes(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	accountID := uuid.New()
	txCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

	var hashedCode string
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).
		RunAndReturn(func(plaintext string) (string, error) {
			hashedCode = plaintext

			return "hashed:" + plaintext, nil
		})

	runInTx(t, fx.txManager, txCodeRepo)
	txCodeRepo.EXPECT().DeleteByAccountID(ctx, accountID).Return(1, nil)
	txCodeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
		Run(func(_ context.Context, code *entity.OneTimeCode) {
			assert.Equal(t, accountID, code.AccountID)
			assert.Equal(t, "hashed:"+hashedCode, code.CodeHash)
			assert.Equal(t, fx.clock.Now().Add(5*time.Minute), code.ExpiresAt)
			assert.NotEqual(t, uuid.Nil, code.ID)
		}).
		Return(nil)

	code, err := fx.service.Issue(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, hashedCode, code)
	assert.Len(t, code, 6)
}

func TestOTPService_Issue_StoreFailure(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	accountID := uuid.New()
	txCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)
	runInTx(t, fx.txManager, txCodeRepo)
	txCodeRepo.EXPECT().DeleteByAccountID(ctx, accountID).Return(0, nil)
	txCodeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(errors.New("connection reset"))

	code, err := fx.service.Issue(ctx, accountID)

	require.Error(t, err)
	assert.Empty(t, code)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestOTPService_Issue_HashFailure(t *testing.T) {
	fx := createTestOTPService(t)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.New("hash failed"))

	_, err := fx.service.Issue(context.Background(), uuid.New())

	require.Error(t, err)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOTPService_Generate_Range(t *testing.T) {
	srv := &otpService{random: rand.Reader}

	for range 500 {
		code, err := srv.generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestOTPService_Generate_LowerBound(t *testing.T) {
	srv := &otpService{random: bytes.NewReader(make([]byte, 16))}

	code, err := srv.generate()

	require.NoError(t, err)
	assert.Equal(t, "100000", code)
}

func TestOTPService_Generate_RandomFailure(t *testing.T) {
	srv := &otpService{random: bytes.NewReader(nil)}

	_, err := srv.generate()

	assert.Error(t, err)
}

func TestOTPService_Validate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx otpServiceFixtures, record *entity.OneTimeCode)
		wantErr error
	}{
		{
			name: "matching code",
			setup: func(fx otpServiceFixtures, record *entity.OneTimeCode) {
				fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, accountID).Return(record, nil)
				fx.hasher.EXPECT().Compare("482913", record.CodeHash).Return(true)
			},
		},
		{
			name: "no outstanding code",
			setup: func(fx otpServiceFixtures, _ *entity.OneTimeCode) {
				fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, accountID).Return(nil, repository.ErrCodeNotFound)
			},
			wantErr: domainerrors.ErrOTPNotFound,
		},
		{
			name: "expired code",
			setup: func(fx otpServiceFixtures, record *entity.OneTimeCode) {
				record.ExpiresAt = fx.clock.Now().Add(-time.Second)
				fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, accountID).Return(record, nil)
			},
			wantErr: domainerrors.ErrOTPExpired,
		},
		{
			name: "expiry instant is still valid",
			setup: func(fx otpServiceFixtures, record *entity.OneTimeCode) {
				record.ExpiresAt = fx.clock.Now()
				fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, accountID).Return(record, nil)
				fx.hasher.EXPECT().Compare("482913", record.CodeHash).Return(true)
			},
		},
		{
			name: "wrong code",
			setup: func(fx otpServiceFixtures, record *entity.OneTimeCode) {
				fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, accountID).Return(record, nil)
				fx.hasher.EXPECT().Compare("482913", record.CodeHash).Return(false)
			},
			wantErr: domainerrors.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOTPService(t)
			record := &entity.OneTimeCode{
				ID:        uuid.New(),
				AccountID: accountID,
				CodeHash:  "hashed",
				ExpiresAt: fx.clock.Now().Add(time.Minute),
			}
			tt.setup(fx, record)

			got, err := fx.service.Validate(context.Background(), accountID, "482913")

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, record.ID, got.ID)
		})
	}
}

func TestOTPService_Validate_StoreFailure(t *testing.T) {
	fx := createTestOTPService(t)

	fx.codeRepo.EXPECT().FindLatestByAccountID(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := fx.service.Validate(context.Background(), uuid.New(), "482913")

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestOTPService_Consume(t *testing.T) {
	fx := createTestOTPService(t)

	code := &entity.OneTimeCode{ID: uuid.New()}
	fx.codeRepo.EXPECT().DeleteByID(mock.Anything, code.ID).Return(nil).Once()
	fx.codeRepo.EXPECT().DeleteByID(mock.Anything, code.ID).Return(repository.ErrCodeNotFound).Once()

	require.NoError(t, fx.service.Consume(context.Background(), code))
	assert.ErrorIs(t, fx.service.Consume(context.Background(), code), domainerrors.ErrOTPNotFound)
}

func TestOTPService_CleanupExpired(t *testing.T) {
	fx := createTestOTPService(t)

	fx.codeRepo.EXPECT().DeleteExpired(mock.Anything, fx.clock.Now()).Return(3, nil)

	removed, err := fx.service.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestOTPService_SingleUse(t *testing.T) {
	store := newMemoryStore()
	clock := newTestClock()
	hasher := newPlainHasher()
	service := newOTPService(OTPServiceParams{
		TxManager: store,
		CodeRepo:  store.OneTimeCodeRepo(),
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}, rand.Reader, clock.Now)

	ctx := context.Background()
	accountID := uuid.New()

	code, err := service.Issue(ctx, accountID)
	require.NoError(t, err)

	record, err := service.Validate(ctx, accountID, code)
	require.NoError(t, err)
	require.NoError(t, service.Consume(ctx, record))

	_, err = service.Validate(ctx, accountID, code)
	assert.ErrorIs(t, err, domainerrors.ErrOTPNotFound)
}

func TestOTPService_ReissueInvalidatesPreviousCode(t *testing.T) {
	store := newMemoryStore()
	clock := newTestClock()
	service := newOTPService(OTPServiceParams{
		TxManager: store,
		CodeRepo:  store.OneTimeCodeRepo(),
		Hasher:    newPlainHasher(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}, bytes.NewReader(make([]byte, 64)), clock.Now)

	ctx := context.Background()
	accountID := uuid.New()

	_, err := service.Issue(ctx, accountID)
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = service.Issue(ctx, accountID)
	require.NoError(t, err)

	assert.Equal(t, 1, store.codeCount())
}

func TestOTPService_ExpiresAfterTTL(t *testing.T) {
	store := newMemoryStore()
	clock := newTestClock()
	service := newOTPService(OTPServiceParams{
		TxManager: store,
		CodeRepo:  store.OneTimeCodeRepo(),
		Hasher:    newPlainHasher(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}, rand.Reader, clock.Now)

	ctx := context.Background()
	accountID := uuid.New()

	code, err := service.Issue(ctx, accountID)
	require.NoError(t, err)

	clock.Advance(5*time.Minute + time.Second)

	_, err = service.Validate(ctx, accountID, code)
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)

	removed, err := service.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Zero(t, store.codeCount())
}
