package usecase

import (
	"context"

	"moosage/internal/domain/entity"
)

// MoosageUsecase orchestrates moosage reads and mutations and enforces author-only edits.
type MoosageUsecase interface {
	// List returns every moosage, newest first.
	List(ctx context.Context) ([]*entity.Moosage, error)

	// Get returns one moosage or ErrNotFound.
	Get(ctx context.Context, id int64) (*entity.Moosage, error)

	// Create posts content as authorID.
	Create(ctx context.Context, authorID, content string) (*entity.Moosage, error)

	// ToggleLike flips userID's like on the moosage.
	ToggleLike(ctx context.Context, id int64, userID string) (*entity.Moosage, error)

	// Update replaces the content. ErrNotFound is reported before ErrForbidden.
	Update(ctx context.Context, id int64, callerID, content string) (*entity.Moosage, error)

	// Delete removes the moosage. ErrNotFound is reported before ErrForbidden.
	Delete(ctx context.Context, id int64, callerID string) error
}
