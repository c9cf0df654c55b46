// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"moosage/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned by CreateUser when the username or email is already registered.
	ErrUserExists = errors.New("username or email already exists")
)

// UserRepository persists user credentials.
type UserRepository interface {
	// CreateUser assigns a fresh ID and stores the user. Returns ErrUserExists on a duplicate username or email.
	CreateUser(ctx context.Context, username, email, passwordHash string) (*entity.User, error)

	// FindByUsernameOrEmail matches key exactly (case-sensitive) against username or email.
	FindByUsernameOrEmail(ctx context.Context, key string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// UsernameExists reports whether username is taken. False for empty input.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether email is taken. False for empty input.
	EmailExists(ctx context.Context, email string) (bool, error)

	// ListUsers returns every stored user in insertion order.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
