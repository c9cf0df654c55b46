package worker

import (
	"context"
	"log/slog"

	"moosage/config"
	"moosage/internal/delivery"
	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/constants"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/service"
	"moosage/internal/infra/pubsub"
	"moosage/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventSource is the consuming half of a broker client.
type eventSource interface {
	Consume(ctx context.Context, handler pubsub.EventHandler) error
	Close() error
}

type queueConsumer struct {
	source     eventSource
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ActivityUC usecase.ActivityUsecase
}

// NewConsumer pulls events from RabbitMQ when that provider is configured.
// With any other provider Serve returns immediately.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	var source eventSource
	if cfg := params.Cfg.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ {
		client, err := pubsub.NewRabbitMQClient(cfg.RabbitMQ, params.Logger)
		if err != nil {
			return nil, err
		}
		source = client
	}

	c := newQueueConsumer(source, params.ActivityUC, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newQueueConsumer(source eventSource, activityUC usecase.ActivityUsecase, logger *slog.Logger) *queueConsumer {
	ctx, cancel := context.WithCancel(context.Background())

	return &queueConsumer{
		source:     source,
		activityUC: activityUC,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Serve blocks until the consumer is stopped or the broker connection fails.
func (c *queueConsumer) Serve(ctx context.Context) error {
	if c.source == nil {
		c.logger.Info("Queue consumer disabled, provider is not rabbitmq")

		return nil
	}

	c.logger.Info("Starting RabbitMQ consumer")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.ctx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err := c.source.Consume(ctx, c.handle)
	if c.ctx.Err() != nil {
		return nil
	}

	return err
}

// handle returns nil for malformed events so they are acked and dropped.
func (c *queueConsumer) handle(ctx context.Context, event *service.MoosageEvent) error {
	requestID := event.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := c.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	err := c.activityUC.Record(ctx, event)
	if domainerrors.KindOf(err) == domainerrors.KindInvalidInput {
		reqLogger.Warn("[Worker] Dropping invalid moosage event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return nil
	}

	return err
}

func (c *queueConsumer) stop(ctx context.Context) error {
	c.cancel()
	if c.source == nil {
		return nil
	}

	c.logger.Info("Closing RabbitMQ consumer")

	return c.source.Close()
}
