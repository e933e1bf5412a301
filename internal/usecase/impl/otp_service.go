package impl

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	otpMinValue = 100000
	otpSpan     = 900000 // codes fall in [100000, 999999]
)

// otpService implements the OTPUsecase interface.
type otpService struct {
	txManager repository.TransactionManager
	codeRepo  repository.OneTimeCodeRepository
	hasher    service.SecretHasher
	ttl       time.Duration
	random    io.Reader
	now       func() time.Time
	logger    *slog.Logger
}

// OTPServiceParams holds dependencies for OTPService, injected by Fx.
type OTPServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CodeRepo  repository.OneTimeCodeRepository
	Hasher    service.SecretHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	return newOTPService(params, rand.Reader, time.Now)
}

func newOTPService(params OTPServiceParams, random io.Reader, now func() time.Time) *otpService {
	ttl := config.DefaultOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		ttl = params.Config.Auth.OTPTTL
	}

	return &otpService{
		txManager: params.TxManager,
		codeRepo:  params.CodeRepo,
		hasher:    params.Hasher,
		ttl:       ttl,
		random:    random,
		now:       now,
		logger:    params.Logger,
	}
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Issue generates a code, stores its hash in place of any older code and returns the plaintext.
func (srv *otpService) Issue(ctx context.Context, accountID uuid.UUID) (string, error) {
	code, err := srv.generate()
	if err != nil {
		return "", err
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash one-time code")
	}

	now := srv.now()
	record := &entity.OneTimeCode{
		ID:        uuid.New(),
		AccountID: accountID,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(srv.ttl),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.OneTimeCodeRepo()

		replaced, err := codeRepo.DeleteByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to delete outstanding codes")
		}
		if replaced > 0 {
			srv.log(ctx).Debug("Replaced outstanding one-time codes", slog.String("accountID", accountID.String()), slog.Int64("count", replaced))
		}

		return errors.Wrap(codeRepo.Create(ctx, record), "failed to store one-time code")
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to issue one-time code")
	}

	return code, nil
}

// Validate checks the candidate against the most recent code of the account.
func (srv *otpService) Validate(ctx context.Context, accountID uuid.UUID, candidate string) (*entity.OneTimeCode, error) {
	record, err := srv.codeRepo.FindLatestByAccountID(ctx, accountID)
	if errors.Is(err, repository.ErrCodeNotFound) {
		return nil, domainerrors.ErrOTPNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find one-time code")
	}

	if record.IsExpired(srv.now()) {
		return nil, domainerrors.ErrOTPExpired
	}

	if !srv.hasher.Compare(candidate, record.CodeHash) {
		return nil, domainerrors.ErrOTPInvalid
	}

	return record, nil
}

// Consume deletes the code. A code deleted concurrently counts as already consumed.
func (srv *otpService) Consume(ctx context.Context, code *entity.OneTimeCode) error {
	err := srv.codeRepo.DeleteByID(ctx, code.ID)
	if errors.Is(err, repository.ErrCodeNotFound) {
		return domainerrors.ErrOTPNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to consume one-time code")
	}

	return nil
}

// CleanupExpired removes every code whose expiry has passed.
func (srv *otpService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.codeRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired one-time codes")
	}

	return removed, nil
}

func (srv *otpService) generate() (string, error) {
	n, err := rand.Int(srv.random, big.NewInt(otpSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate one-time code")
	}

	return strconv.FormatInt(n.Int64()+otpMinValue, 10), nil
}
