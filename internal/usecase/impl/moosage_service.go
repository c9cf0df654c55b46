package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"moosage/config"
	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/constants"
	"moosage/internal/domain/entity"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"
	"moosage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// moosageService implements the MoosageUsecase interface.
type moosageService struct {
	moosageRepo repository.MoosageRepository
	publisher   service.EventPublisher
	clock       service.Clock
	maxLength   int
	logger      *slog.Logger
}

// MoosageServiceParams holds dependencies for MoosageService, injected by Fx.
type MoosageServiceParams struct {
	fx.In

	MoosageRepo repository.MoosageRepository
	Publisher   service.EventPublisher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMoosageService is the constructor for moosageService.
func NewMoosageService(params MoosageServiceParams) usecase.MoosageUsecase {
	maxLength := constants.DefaultMaxMoosageLength
	if params.Config != nil && params.Config.Moosage.MaxContentLength > 0 {
		maxLength = params.Config.Moosage.MaxContentLength
	}

	return &moosageService{
		moosageRepo: params.MoosageRepo,
		publisher:   params.Publisher,
		clock:       params.Clock,
		maxLength:   maxLength,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *moosageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *moosageService) List(ctx context.Context) ([]*entity.Moosage, error) {
	moosages, err := srv.moosageRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moosages")
	}

	return moosages, nil
}

func (srv *moosageService) Get(ctx context.Context, id int64) (*entity.Moosage, error) {
	moosage, err := srv.moosageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateMoosageErr(err, id)
	}

	return moosage, nil
}

func (srv *moosageService) Create(ctx context.Context, authorID, content string) (*entity.Moosage, error) {
	if err := srv.checkContent(content); err != nil {
		return nil, err
	}

	moosage, err := srv.moosageRepo.Create(ctx, content, authorID)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		return nil, domainerrors.InvalidInput("author not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create moosage")
	}

	srv.publish(ctx, service.MoosageCreated, moosage, authorID)

	return moosage, nil
}

func (srv *moosageService) ToggleLike(ctx context.Context, id int64, userID string) (*entity.Moosage, error) {
	moosage, err := srv.moosageRepo.ToggleLike(ctx, id, userID)
	if err != nil {
		return nil, translateMoosageErr(err, id)
	}

	eventType := service.MoosageUnliked
	if moosage.IsLikedBy(userID) {
		eventType = service.MoosageLiked
	}
	srv.publish(ctx, eventType, moosage, userID)

	return moosage, nil
}

func (srv *moosageService) Update(ctx context.Context, id int64, callerID, content string) (*entity.Moosage, error) {
	if _, err := srv.authorize(ctx, id, callerID); err != nil {
		return nil, err
	}
	if err := srv.checkContent(content); err != nil {
		return nil, err
	}

	moosage, err := srv.moosageRepo.Update(ctx, id, content)
	if err != nil {
		return nil, translateMoosageErr(err, id)
	}

	srv.publish(ctx, service.MoosageUpdated, moosage, callerID)

	return moosage, nil
}

func (srv *moosageService) Delete(ctx context.Context, id int64, callerID string) error {
	moosage, err := srv.authorize(ctx, id, callerID)
	if err != nil {
		return err
	}

	removed, err := srv.moosageRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete moosage")
	}
	if !removed {
		return notFound(id)
	}

	srv.publish(ctx, service.MoosageDeleted, moosage, callerID)

	return nil
}

// authorize loads the moosage and confirms callerID wrote it. A missing moosage
// is reported as not found even when the caller is not the author.
func (srv *moosageService) authorize(ctx context.Context, id int64, callerID string) (*entity.Moosage, error) {
	moosage, err := srv.moosageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateMoosageErr(err, id)
	}

	if !moosage.IsAuthoredBy(callerID) {
		srv.log(ctx).Warn("Rejected mutation by non-author",
			slog.Int64("moosage_id", id),
			slog.String("caller_id", callerID),
		)

		return nil, domainerrors.ErrForbidden
	}

	return moosage, nil
}

func (srv *moosageService) checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return domainerrors.InvalidInput("content must not be empty")
	}
	if utf8.RuneCountInString(content) > srv.maxLength {
		return domainerrors.InvalidInput(fmt.Sprintf("content must be at most %d characters", srv.maxLength))
	}

	return nil
}

// publish emits an event for a completed mutation. Failures are logged only.
func (srv *moosageService) publish(ctx context.Context, eventType service.MoosageEventType, moosage *entity.Moosage, actorID string) {
	event := &service.MoosageEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		MoosageID:  moosage.ID,
		ActorID:    actorID,
		AuthorID:   moosage.AuthorID,
		OccurredAt: srv.clock.Now(),
	}

	if err := srv.publisher.PublishMoosageEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish moosage event",
			slog.String("type", string(eventType)),
			slog.Int64("moosage_id", moosage.ID),
			slog.Any("error", err),
		)
	}
}

func translateMoosageErr(err error, id int64) error {
	if errors.Is(err, repository.ErrMoosageNotFound) {
		return notFound(id)
	}

	return errors.Wrapf(err, "moosage %d", id)
}

func notFound(id int64) error {
	return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("moosage %d not found", id))
}
