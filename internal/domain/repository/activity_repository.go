package repository

import (
	"context"

	"moosage/internal/domain/service"
)

// ActivityRepository keeps a bounded log of moosage events.
type ActivityRepository interface {
	// Append records event. Events with an already-recorded EventID are ignored.
	Append(ctx context.Context, event *service.MoosageEvent) error

	// Recent returns up to limit events, newest first. A non-positive limit returns all.
	Recent(ctx context.Context, limit int) ([]*service.MoosageEvent, error)
}
