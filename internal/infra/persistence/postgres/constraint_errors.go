package postgres

import (
	domainerrors "authgate/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE of a unique index violation.
const pgUniqueViolation = "23505"

// Unique index names declared on the models.
const (
	accountsEmailConstraint    = "uq_accounts_email"
	accountsUsernameConstraint = "uq_accounts_username"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// violatedConstraint returns the constraint named by the driver error, if any.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// duplicateAccountError maps a unique violation on accounts to the domain error naming
// the clashing field. It returns nil for any other error.
func duplicateAccountError(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	if violatedConstraint(err) == accountsUsernameConstraint {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}

	return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
}
