// Package validation holds the single rule set for account and moosage input.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	domainerrors "moosage/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Custom tags
const (
	TagNoSpace     = "nospace"
	TagLetterDigit = "letterdigit"

	// TagMaxBytes limits the encoded length; max counts runes.
	TagMaxBytes = "maxbytes"
)

// Validator checks tagged structs and reports the first violation as ErrInvalidInput.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the moosage custom rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation(TagNoSpace, noSpace)
	_ = validate.RegisterValidation(TagLetterDigit, letterAndDigit)
	_ = validate.RegisterValidation(TagMaxBytes, maxBytes)

	return &Validator{validate: validate}
}

// Struct validates s. Violations are reported in field declaration order; only the first is returned.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate")
	}

	return domainerrors.InvalidInput(describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case TagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case TagNoSpace:
		return fmt.Sprintf("%s must not contain spaces", field)
	case TagLetterDigit:
		return fmt.Sprintf("%s must contain at least one letter and one digit", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func letterAndDigit(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return strings.ContainsFunc(value, unicode.IsLetter) && strings.ContainsFunc(value, unicode.IsDigit)
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
