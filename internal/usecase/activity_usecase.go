package usecase

import (
	"context"

	"moosage/internal/domain/service"
)

// ActivityUsecase records moosage events delivered to the activity worker.
type ActivityUsecase interface {
	// Record appends event to the activity log. Malformed events fail with ErrInvalidInput
	// and are never worth redelivering; storage failures are.
	Record(ctx context.Context, event *service.MoosageEvent) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]*service.MoosageEvent, error)
}
