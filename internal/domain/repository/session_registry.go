package repository

// SessionRegistry maps opaque session tokens to user IDs.
// Implementations must be safe for concurrent use.
type SessionRegistry interface {
	// Create issues a new token for userID.
	Create(userID string) string

	// Resolve returns the user ID for token, or false when the token is empty or unknown.
	Resolve(token string) (string, bool)

	// IsValid reports whether token resolves.
	IsValid(token string) bool

	// Terminate forgets token. Unknown tokens are ignored.
	Terminate(token string)

	// Count returns the number of active sessions.
	Count() int
}
