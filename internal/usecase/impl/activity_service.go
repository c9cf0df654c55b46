package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "moosage/internal/delivery/context"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"
	"moosage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) Record(ctx context.Context, event *service.MoosageEvent) error {
	if err := checkEvent(event); err != nil {
		return err
	}

	if err := srv.activityRepo.Append(ctx, event); err != nil {
		return errors.Wrapf(err, "record event %s", event.EventID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Recorded moosage event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.Int64("moosage_id", event.MoosageID),
	)

	return nil
}

func (srv *activityService) Recent(ctx context.Context, limit int) ([]*service.MoosageEvent, error) {
	events, err := srv.activityRepo.Recent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "read activity log")
	}

	return events, nil
}

func checkEvent(event *service.MoosageEvent) error {
	switch {
	case event == nil:
		return domainerrors.InvalidInput("event is required")
	case strings.TrimSpace(event.EventID) == "":
		return domainerrors.InvalidInput("event_id is required")
	case !event.Type.Valid():
		return domainerrors.InvalidInput("unknown event type " + string(event.Type))
	case event.MoosageID <= 0:
		return domainerrors.InvalidInput("moosage_id must be positive")
	default:
		return nil
	}
}
