// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash returns a self-describing salted hash. Blank input is rejected with ErrInvalidInput.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed input yields false.
	Check(password, hash string) bool
}
