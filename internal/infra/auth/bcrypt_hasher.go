// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for every stored password.
const DefaultCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher with the fixed DefaultCost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: DefaultCost}
}

// NewBcryptHasherWithCost returns a PasswordHasher using cost, clamped to bcrypt's valid range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	cost = max(cost, bcrypt.MinCost)
	cost = min(cost, bcrypt.MaxCost)

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh salt per call, so equal inputs never share a hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", domainerrors.InvalidInput("password must not be blank")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.InvalidInput("password must be at most 72 bytes")
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
