// Package session provides the in-memory session token registry.
package session

import (
	"sync"

	"moosage/internal/domain/repository"

	"github.com/google/uuid"
)

// registry is a mutex-guarded token to user ID map. Sessions never expire on their own.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]string
	newToken func() string
}

// NewRegistry returns an empty SessionRegistry issuing random UUIDv4 tokens.
func NewRegistry() repository.SessionRegistry {
	return newRegistry(func() string { return uuid.NewString() })
}

func newRegistry(newToken func() string) *registry {
	return &registry{
		sessions: make(map[string]string),
		newToken: newToken,
	}
}

// Create issues a new token for userID. A colliding token is regenerated, never reused.
func (r *registry) Create(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := r.newToken()
	for r.unusable(token) {
		token = r.newToken()
	}
	r.sessions[token] = userID

	return token
}

// unusable must be called with mu held.
func (r *registry) unusable(token string) bool {
	_, taken := r.sessions[token]

	return taken || token == ""
}

func (r *registry) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.sessions[token]

	return userID, ok
}

func (r *registry) IsValid(token string) bool {
	_, ok := r.Resolve(token)

	return ok
}

func (r *registry) Terminate(token string) {
	if token == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
