// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
)

// echoValidator wraps a validator instance for echo.
type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator.
func New() *echoValidator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate implements echo.Validator. Validation failures surface as 400
// application errors.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}

	return nil
}
