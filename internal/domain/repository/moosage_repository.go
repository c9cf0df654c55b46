package repository

import (
	"context"
	"errors"

	"moosage/internal/domain/entity"
)

var (
	// ErrMoosageNotFound is returned when no moosage has the requested ID.
	ErrMoosageNotFound = errors.New("moosage not found")

	// ErrAuthorNotFound is returned by Create when the author ID does not resolve to a user.
	ErrAuthorNotFound = errors.New("author not found")
)

// MoosageRepository persists moosages. Every returned value is an independent copy.
type MoosageRepository interface {
	// Create assigns the next ID, stamps the creation time and stores the moosage.
	Create(ctx context.Context, content, authorID string) (*entity.Moosage, error)

	// GetAll returns all moosages newest first, ties kept in insertion order.
	GetAll(ctx context.Context) ([]*entity.Moosage, error)

	GetByID(ctx context.Context, id int64) (*entity.Moosage, error)

	// ToggleLike adds userID to the liked-by set, or removes it when already present.
	ToggleLike(ctx context.Context, id int64, userID string) (*entity.Moosage, error)

	// Update replaces the content (empty allowed) and marks the moosage as edited.
	Update(ctx context.Context, id int64, content string) (*entity.Moosage, error)

	// Delete removes the moosage and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
