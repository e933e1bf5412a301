// Package validation checks use case inputs against the constraints declared in
// their struct tags before any business logic runs.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	domainerrors "authgate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of a validation run: either valid, or invalid with field errors.
type Result struct {
	Errors []FieldError
}

// Valid reports whether no constraint was violated.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err converts an invalid result into ErrValidationFailed carrying the field errors.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(r.Errors)
}

var (
	once     sync.Once
	instance *validator.Validate
)

// Engine returns the shared validator, configured to report JSON field names.
func Engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}

			return name
		})
	})

	return instance
}

// Validate checks input against its `validate` tags. It has no side effects.
func Validate(input any) Result {
	err := Engine().Struct(input)
	if err == nil {
		return Result{}
	}

	var validationErrs validator.ValidationErrors
	if !asValidationErrors(err, &validationErrs) {
		return Result{Errors: []FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}

	return Result{Errors: fieldErrs}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice type directly
	if ok {
		*target = v
	}

	return ok
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must contain at least %s character(s)", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must contain at most %s character(s)", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s character(s)", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
