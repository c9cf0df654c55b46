package validation

import (
	"strings"
	"testing"

	domainerrors "moosage/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,max=20,nospace"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72,letterdigit"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   signup
		wantMsg string
	}{
		{name: "valid", input: signup{"carol", "carol@x.com", "Passw0rd"}},
		{name: "twenty chars ok", input: signup{strings.Repeat("a", 20), "a@x.com", "abcdefg1"}},
		{name: "missing username", input: signup{"", "a@x.com", "Passw0rd"}, wantMsg: "username is required"},
		{name: "long username", input: signup{strings.Repeat("a", 21), "a@x.com", "Passw0rd"}, wantMsg: "username must be at most 20 characters"},
		{name: "spaced username", input: signup{"car ol", "a@x.com", "Passw0rd"}, wantMsg: "username must not contain spaces"},
		{name: "bad email", input: signup{"carol", "not-an-email", "Passw0rd"}, wantMsg: "email must be a valid email address"},
		{name: "short password", input: signup{"carol", "a@x.com", "Pa55"}, wantMsg: "password must be at least 8 characters"},
		{name: "letters only", input: signup{"carol", "a@x.com", "Password"}, wantMsg: "password must contain at least one letter and one digit"},
		{name: "digits only", input: signup{"carol", "a@x.com", "12345678"}, wantMsg: "password must contain at least one letter and one digit"},
		{name: "72 byte password ok", input: signup{"carol", "a@x.com", strings.Repeat("a", 71) + "1"}},
		{name: "long password", input: signup{"carol", "a@x.com", strings.Repeat("a", 79) + "1"}, wantMsg: "password must be at most 72 bytes"},
		{name: "password bytes not runes", input: signup{"carol", "a@x.com", strings.Repeat("é", 36) + "a1"}, wantMsg: "password must be at most 72 bytes"},
		{name: "first failure wins", input: signup{"car ol", "bad", "x"}, wantMsg: "username must not contain spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantMsg, appErr.Details())
		})
	}
}
