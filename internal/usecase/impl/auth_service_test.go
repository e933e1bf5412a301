package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/domain/validation"
	mockSvc "authgate/internal/mocks/service"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	credentials  *mockUsecase.MockCredentialUsecase
	otp          *mockUsecase.MockOTPUsecase
	hasher       *mockSvc.MockSecretHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockNotifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	credentials := mockUsecase.NewMockCredentialUsecase(t)
	otp := mockUsecase.NewMockOTPUsecase(t)
	hasher := mockSvc.NewMockSecretHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockNotifier(t)

	service := NewAuthService(AuthServiceParams{
		Credentials:  credentials,
		OTP:          otp,
		Hasher:       hasher,
		TokenService: tokenService,
		Notifier:     notifier,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		credentials:  credentials,
		otp:          otp,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

func newPendingAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hashed_password",
	}
}

func newVerifiedAccount() *entity.Account {
	account := newPendingAccount()
	account.IsVerified = true

	return account
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}
	account := newPendingAccount()

	fx.credentials.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.credentials.EXPECT().Create(ctx, input.Username, input.Email, "hashed_password").Return(account, nil)
	fx.otp.EXPECT().Issue(ctx, account.ID).Return("482913", nil)
	fx.tokenService.EXPECT().Mint(account.ID, service.TokenKindPending, 24*time.Hour).Return("pending.token", nil)
	fx.notifier.EXPECT().
		Send(ctx, input.Email, "Verify your Account", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, htmlBody string) {
			assert.Contains(t, htmlBody, "<b>482913</b>")
			assert.Contains(t, htmlBody, "Hello alice")
			assert.Contains(t, htmlBody, "5 minutes")
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
	assert.Equal(t, "pending.token", output.PendingToken)
}

func TestAuthService_Register_ValidationBeforeStoreAccess(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.RegisterInput
		wantField string
	}{
		{"short username", usecase.RegisterInput{Username: "al", Email: "a@x.com", Password: "secret1"}, "username"},
		{"bad email", usecase.RegisterInput{Username: "alice", Email: "a-at-x.com", Password: "secret1"}, "email"},
		{"short password", usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "12345"}, "password"},
		{"password over bcrypt limit", usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any store, hasher or notifier call fails the test.
			fx := createTestAuthService(t)

			output, err := fx.service.Register(context.Background(), &tt.input)

			assert.Nil(t, output)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			details, ok := appErr.Details().([]validation.FieldError)
			require.True(t, ok)
			require.Len(t, details, 1)
			assert.Equal(t, tt.wantField, details[0].Field)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}

	fx.credentials.EXPECT().FindByEmail(ctx, input.Email).Return(newPendingAccount(), nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_DuplicateDetectedOnWrite(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}

	fx.credentials.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.credentials.EXPECT().Create(ctx, input.Username, input.Email, "hashed_password").
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create account"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_NotificationFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}
	account := newPendingAccount()

	fx.credentials.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.credentials.EXPECT().Create(ctx, input.Username, input.Email, "hashed_password").Return(account, nil)
	fx.otp.EXPECT().Issue(ctx, account.ID).Return("482913", nil)
	fx.tokenService.EXPECT().Mint(account.ID, service.TokenKindPending, 24*time.Hour).Return("pending.token", nil)
	fx.notifier.EXPECT().Send(ctx, input.Email, mock.Anything, mock.Anything).Return(errors.New("smtp unavailable"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationFailed)
}

func TestAuthService_VerifyOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := newPendingAccount()
	code := &entity.OneTimeCode{ID: uuid.New(), AccountID: account.ID}

	fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.otp.EXPECT().Validate(ctx, account.ID, "482913").Return(code, nil)
	fx.credentials.EXPECT().MarkVerified(ctx, account.ID).Return(nil)
	fx.otp.EXPECT().Consume(ctx, code).Return(nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: account.Email, OTP: "482913"})

	require.NoError(t, err)
}

func TestAuthService_VerifyOTP_UnknownAccount(t *testing.T) {
	for _, email := range []string{"ghost@x.com", "not-an-email"} {
		t.Run(email, func(t *testing.T) {
			fx := createTestAuthService(t)

			ctx := context.Background()
			fx.credentials.EXPECT().FindByEmail(ctx, email).Return(nil, repository.ErrAccountNotFound)

			err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: email, OTP: "482913"})

			assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
			assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_VerifyOTP_RejectedCodeLeavesAccountPending(t *testing.T) {
	for _, otpErr := range []error{domainerrors.ErrOTPNotFound, domainerrors.ErrOTPExpired, domainerrors.ErrOTPInvalid} {
		t.Run(otpErr.(domainerrors.AppError).ErrorCode(), func(t *testing.T) {
			fx := createTestAuthService(t)

			ctx := context.Background()
			account := newPendingAccount()

			fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
			fx.otp.EXPECT().Validate(ctx, account.ID, "000000").Return(nil, otpErr)

			err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: account.Email, OTP: "000000"})

			assert.ErrorIs(t, err, otpErr)
			fx.credentials.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_ResendOTP(t *testing.T) {
	t.Run("pending account gets a new code", func(t *testing.T) {
		fx := createTestAuthService(t)

		ctx := context.Background()
		account := newPendingAccount()

		fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
		fx.otp.EXPECT().Issue(ctx, account.ID).Return("731502", nil)
		fx.notifier.EXPECT().Send(ctx, account.Email, "Verify your Account", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "731502")
		})).Return(nil)

		require.NoError(t, fx.service.ResendOTP(ctx, &usecase.ResendOTPInput{Email: account.Email}))
	})

	t.Run("verified account", func(t *testing.T) {
		fx := createTestAuthService(t)

		ctx := context.Background()
		account := newVerifiedAccount()
		fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

		err := fx.service.ResendOTP(ctx, &usecase.ResendOTPInput{Email: account.Email})

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})

	t.Run("unknown account", func(t *testing.T) {
		fx := createTestAuthService(t)

		ctx := context.Background()
		fx.credentials.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrAccountNotFound)

		err := fx.service.ResendOTP(ctx, &usecase.ResendOTPInput{Email: "ghost@x.com"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := newVerifiedAccount()

	fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.credentials.EXPECT().VerifyPassword(account, "secret1").Return(true)
	fx.tokenService.EXPECT().Mint(account.ID, service.TokenKindSession, 7*24*time.Hour).Return("session.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "session.token", output.Token)
	assert.Equal(t, 7*24*time.Hour, output.ExpiresIn)
	assert.Equal(t, entity.Profile{Username: "alice", Email: "a@x.com"}, output.Profile)
}

func TestAuthService_Login_UnverifiedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := newPendingAccount()
	fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "secret1"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordMatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := newVerifiedAccount()

	fx.credentials.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrAccountNotFound)
	fx.credentials.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.credentials.EXPECT().VerifyPassword(account, "wrong-password").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "secret1"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "wrong-password"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_StoreFailureIsInternal(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.credentials.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection refused"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestAuthService_Authenticate(t *testing.T) {
	account := newVerifiedAccount()

	tests := []struct {
		name    string
		token   string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing token",
			token:   "",
			setup:   func(authServiceFixtures) {},
			wantErr: domainerrors.ErrTokenMissing,
		},
		{
			name:  "expired token",
			token: "expired",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Verify("expired").Return(nil, service.ErrTokenExpired)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "pending token",
			token: "pending",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Verify("pending").
					Return(&service.Claims{AccountID: account.ID, Kind: service.TokenKindPending}, nil)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "account removed",
			token: "orphan",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Verify("orphan").
					Return(&service.Claims{AccountID: account.ID, Kind: service.TokenKindSession}, nil)
				fx.credentials.EXPECT().FindByID(mock.Anything, account.ID).Return(nil, repository.ErrAccountNotFound)
			},
			wantErr: domainerrors.ErrSessionUserNotFound,
		},
		{
			name:  "valid session",
			token: "session",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Verify("session").
					Return(&service.Claims{AccountID: account.ID, Kind: service.TokenKindSession}, nil)
				fx.credentials.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			got, err := fx.service.Authenticate(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, account.ID, got.ID)
		})
	}
}
