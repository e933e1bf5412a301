// Package validator adapts the domain validation rules to echo.
package validator

import (
	"authgate/internal/domain/validation"
)

// Validator implements echo.Validator on top of the shared validation engine.
type Validator struct{}

// New creates the echo validator.
func New() *Validator {
	return &Validator{}
}

// Validate returns ErrValidationFailed with field details when input breaks its tags.
func (v *Validator) Validate(i any) error {
	return validation.Validate(i).Err()
}
