package jsonstore

import (
	"context"
	"log/slog"
	"slices"

	"moosage/config"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

type activityDocument struct {
	Events []*service.MoosageEvent `json:"events"`
}

func newActivityDocument() *activityDocument {
	return &activityDocument{Events: []*service.MoosageEvent{}}
}

type activityStore struct {
	doc       *document[activityDocument]
	maxEvents int
}

// ActivityStoreParams holds dependencies for the activity log, injected by Fx.
type ActivityStoreParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
	Logger *slog.Logger
}

// NewActivityRepository is the Fx constructor for the JSON activity log.
func NewActivityRepository(params ActivityStoreParams) repository.ActivityRepository {
	return NewActivityStore(params.Bucket, params.Config.Storage.ActivityKey, params.Config.Worker.MaxEvents, params.Logger)
}

// NewActivityStore returns an ActivityRepository keeping at most maxEvents entries
// (unbounded when maxEvents is not positive).
func NewActivityStore(bucket *blob.Bucket, key string, maxEvents int, logger *slog.Logger) repository.ActivityRepository {
	return &activityStore{
		doc:       newDocument(bucket, key, newActivityDocument, logger),
		maxEvents: maxEvents,
	}
}

func (s *activityStore) Append(ctx context.Context, event *service.MoosageEvent) error {
	return s.doc.update(ctx, func(doc *activityDocument) (bool, error) {
		if event.EventID != "" && slices.ContainsFunc(doc.Events, func(e *service.MoosageEvent) bool {
			return e.EventID == event.EventID
		}) {
			return false, nil
		}

		doc.Events = append(doc.Events, event)
		if s.maxEvents > 0 && len(doc.Events) > s.maxEvents {
			doc.Events = slices.Clone(doc.Events[len(doc.Events)-s.maxEvents:])
		}

		return true, nil
	})
}

func (s *activityStore) Recent(ctx context.Context, limit int) ([]*service.MoosageEvent, error) {
	var recent []*service.MoosageEvent
	err := s.doc.view(ctx, func(doc *activityDocument) error {
		recent = slices.Clone(doc.Events)
		slices.Reverse(recent)
		if limit > 0 && len(recent) > limit {
			recent = recent[:limit]
		}

		return nil
	})

	return recent, err
}
