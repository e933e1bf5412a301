// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/domain/validation"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
const maxPasswordBytes = 72

const verificationSubject = "Verify your Account"

// authService implements the AuthUsecase interface.
type authService struct {
	credentials     usecase.CredentialUsecase
	otp             usecase.OTPUsecase
	hasher          service.SecretHasher
	tokenService    service.TokenService
	notifier        service.Notifier
	otpTTL          time.Duration
	pendingTokenTTL time.Duration
	sessionTokenTTL time.Duration
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials  usecase.CredentialUsecase
	OTP          usecase.OTPUsecase
	Hasher       service.SecretHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		credentials:     params.Credentials,
		otp:             params.OTP,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		notifier:        params.Notifier,
		otpTTL:          config.DefaultOTPTTL,
		pendingTokenTTL: config.DefaultRegistrationTokenTTL,
		sessionTokenTTL: config.DefaultSessionTokenTTL,
		logger:          params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.OTPTTL > 0 {
			srv.otpTTL = params.Config.Auth.OTPTTL
		}
		if params.Config.Auth.RegistrationTokenTTL > 0 {
			srv.pendingTokenTTL = params.Config.Auth.RegistrationTokenTTL
		}
		if params.Config.Auth.SessionTokenTTL > 0 {
			srv.sessionTokenTTL = params.Config.Auth.SessionTokenTTL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates an unverified account and emails it a one-time code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	result := validation.Validate(input)
	if len(input.Password) > maxPasswordBytes {
		result.Errors = append(result.Errors, validation.FieldError{
			Field:   "password",
			Rule:    "max",
			Message: fmt.Sprintf("password must contain at most %d byte(s)", maxPasswordBytes),
		})
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.credentials.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	// The unique constraints still decide when two registrations race past the check above.
	account, err := srv.credentials.Create(ctx, input.Username, input.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	code, err := srv.otp.Issue(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification code")
	}

	pendingToken, err := srv.tokenService.Mint(account.ID, service.TokenKindPending, srv.pendingTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint registration token")
	}

	if err := srv.sendCode(ctx, account, code); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("accountID", account.ID.String()))

	return &usecase.RegisterOutput{Account: account, PendingToken: pendingToken}, nil
}

// VerifyOTP confirms the email of an account with the emailed code.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	if err := validation.Validate(input).Err(); err != nil {
		return err
	}

	account, err := srv.findAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	code, err := srv.otp.Validate(ctx, account.ID, input.OTP)
	if err != nil {
		srv.log(ctx).Info("One-time code rejected", slog.String("accountID", account.ID.String()), slog.Any("error", err))

		return err
	}

	if err := srv.credentials.MarkVerified(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to verify account")
	}

	if err := srv.otp.Consume(ctx, code); err != nil {
		return errors.Wrap(err, "failed to consume verification code")
	}

	srv.log(ctx).Info("Account verified", slog.String("accountID", account.ID.String()))

	return nil
}

// ResendOTP replaces the outstanding code of an unverified account and emails the new one.
func (srv *authService) ResendOTP(ctx context.Context, input *usecase.ResendOTPInput) error {
	if err := validation.Validate(input).Err(); err != nil {
		return err
	}

	account, err := srv.findAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	if account.State() == entity.AccountStateVerified {
		return domainerrors.ErrAlreadyVerified
	}

	code, err := srv.otp.Issue(ctx, account.ID)
	if err != nil {
		return errors.Wrap(err, "failed to issue verification code")
	}

	return srv.sendCode(ctx, account, code)
}

// Login checks the credentials of a verified account and mints a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validation.Validate(input).Err(); err != nil {
		return nil, err
	}

	account, err := srv.credentials.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.State() != entity.AccountStateVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	if !srv.credentials.VerifyPassword(account, input.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Mint(account.ID, service.TokenKindSession, srv.sessionTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("accountID", account.ID.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresIn: srv.sessionTokenTTL,
		Profile:   account.Profile(),
	}, nil
}

// Authenticate resolves a session token to the account it was minted for.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	if claims.Kind != service.TokenKindSession {
		return nil, domainerrors.ErrUnauthorized
	}

	account, err := srv.credentials.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrSessionUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session account")
	}

	return account, nil
}

func (srv *authService) findAccount(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.credentials.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// sendCode emails the code. The account and code stay stored when delivery fails.
func (srv *authService) sendCode(ctx context.Context, account *entity.Account, code string) error {
	body := verificationBody(account.Username, code, srv.otpTTL)

	if err := srv.notifier.Send(ctx, account.Email, verificationSubject, body); err != nil {
		srv.log(ctx).Error("Failed to send verification code",
			slog.String("accountID", account.ID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrNotificationFailed.WrapMessage(err.Error())
	}

	return nil
}

func verificationBody(username, code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"<h2>Hello %s,</h2>\n<p>Your verification OTP is: <b>%s</b></p>\n<p>This OTP will expire in %d minutes.</p>",
		html.EscapeString(username),
		code,
		int(ttl.Minutes()),
	)
}
