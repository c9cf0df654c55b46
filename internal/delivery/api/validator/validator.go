// Package validator adapts the shared rule set to echo's Validator hook.
package validator

import (
	"moosage/internal/validation"
)

// EchoValidator satisfies echo.Validator so handlers can call c.Validate.
type EchoValidator struct {
	rules *validation.Validator
}

// New wraps rules for echo.
func New(rules *validation.Validator) *EchoValidator {
	return &EchoValidator{rules: rules}
}

// Validate reports the first violation as a domain InvalidInput error.
func (v *EchoValidator) Validate(i any) error {
	return v.rules.Struct(i)
}
