// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a registered account. Username and Email are each unique across the store.
type User struct {
	ID           string // Opaque identifier assigned on registration, never changes.
	Username     string // Public handle, at most 20 characters, no spaces.
	Email        string // Contact address, also accepted as a login identifier.
	PasswordHash string // bcrypt hash, never the plaintext.
}
