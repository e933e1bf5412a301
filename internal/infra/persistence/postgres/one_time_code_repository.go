package postgres

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// oneTimeCodeRepository implements the domain.OneTimeCodeRepository interface using GORM.
type oneTimeCodeRepository struct {
	db *gorm.DB
}

// NewOneTimeCodeRepository is the constructor for oneTimeCodeRepository.
func NewOneTimeCodeRepository(db *gorm.DB) repository.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

// Create persists a new code record.
func (repo *oneTimeCodeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := fromOneTimeCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestByAccountID returns the most recent code of the account.
func (repo *oneTimeCodeRepository) FindLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find one-time code")
	}

	return toOneTimeCodeDomain(&codeM), nil
}

// DeleteByID removes a single code.
func (repo *oneTimeCodeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete one-time code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// DeleteByAccountID removes every code of the account.
func (repo *oneTimeCodeRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account one-time codes")
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes codes whose expiry is before the given instant.
func (repo *oneTimeCodeRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired one-time codes")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toOneTimeCodeDomain(data *model.OneTimeCodeModel) *entity.OneTimeCode {
	if data == nil {
		return nil
	}

	return &entity.OneTimeCode{
		ID:        data.ID,
		AccountID: data.AccountID,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromOneTimeCodeDomain(data *entity.OneTimeCode) *model.OneTimeCodeModel {
	if data == nil {
		return nil
	}

	return &model.OneTimeCodeModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
