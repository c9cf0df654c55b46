package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/service"
	"moosage/internal/infra/pubsub"
	mockUsecase "moosage/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeSource feeds fixed events to the handler, then blocks until ctx is done.
type fakeSource struct {
	events  []*service.MoosageEvent
	results []error
	closed  bool
}

func (f *fakeSource) Consume(ctx context.Context, handler pubsub.EventHandler) error {
	for _, event := range f.events {
		f.results = append(f.results, handler(ctx, event))
	}
	<-ctx.Done()

	return nil
}

func (f *fakeSource) Close() error {
	f.closed = true

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueConsumer_DisabledWithoutSource(t *testing.T) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	c := newQueueConsumer(nil, activityUC, discardLogger())

	assert.NoError(t, c.Serve(context.Background()))
	assert.NoError(t, c.stop(context.Background()))
}

func TestQueueConsumer_AcksInvalidAndRequeuesFailures(t *testing.T) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	good := &service.MoosageEvent{EventID: "e1", Type: service.MoosageCreated, MoosageID: 1}
	bad := &service.MoosageEvent{EventID: "e2", Type: "bogus", MoosageID: 1}
	failing := &service.MoosageEvent{EventID: "e3", Type: service.MoosageDeleted, MoosageID: 1}

	activityUC.EXPECT().Record(mock.Anything, good).Return(nil)
	activityUC.EXPECT().Record(mock.Anything, bad).Return(domainerrors.InvalidInput("unknown event type bogus"))
	activityUC.EXPECT().Record(mock.Anything, failing).Return(domainerrors.ErrStorageFailure.WrapMessage("write"))

	source := &fakeSource{events: []*service.MoosageEvent{good, bad, failing}}
	c := newQueueConsumer(source, activityUC, discardLogger())

	done := make(chan error, 1)
	go func() { done <- c.Serve(context.Background()) }()

	require.NoError(t, c.stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.True(t, source.closed)
	require.Len(t, source.results, 3)
	assert.NoError(t, source.results[0])
	assert.NoError(t, source.results[1])
	assert.True(t, errors.Is(source.results[2], domainerrors.ErrStorageFailure))
}
