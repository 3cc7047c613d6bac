package handler

import (
	"github.com/familyhub/dashboard/internal/core/validation"
)

// echoValidator adapts the validation package so Echo can call c.Validate(req).
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// *domain.ValidationError so the error handler can render field messages.
func (ev *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
