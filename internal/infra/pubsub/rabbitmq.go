package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"moosage/config"
	"moosage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventHandler processes one consumed event. A non-nil error requeues the delivery.
type EventHandler func(ctx context.Context, event *service.MoosageEvent) error

// RabbitMQClient publishes and consumes moosage events on a single AMQP queue.
type RabbitMQClient struct {
	// amqp channels are not safe for concurrent publishes.
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQClient dials the broker and declares the configured queue.
func NewRabbitMQClient(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(cfg.Queue) == "" {
		return nil, errors.New("rabbitmq queue is required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if cfg.PrefetchCount > 0 {
		if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
			_ = ch.Close()
			_ = conn.Close()

			return nil, errors.Wrap(err, "set rabbitmq prefetch")
		}
	}

	if _, err := ch.QueueDeclare(cfg.Queue, cfg.QueueDurable, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", cfg.Queue)
	}

	return &RabbitMQClient{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

// PublishMoosageEvent sends the event as a persistent JSON message.
func (r *RabbitMQClient) PublishMoosageEvent(ctx context.Context, event *service.MoosageEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.channel.PublishWithContext(ctx, "", r.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	return nil
}

// Consume delivers events to handler until ctx is done or the broker closes the channel.
func (r *RabbitMQClient) Consume(ctx context.Context, handler EventHandler) error {
	consumerTag := "activityworker-" + uuid.NewString()
	deliveries, err := r.channel.Consume(r.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "consume %s", r.queue)
	}
	defer func() {
		_ = r.channel.Cancel(consumerTag, false)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			r.handle(ctx, delivery, handler)
		}
	}
}

func (r *RabbitMQClient) handle(ctx context.Context, delivery amqp.Delivery, handler EventHandler) {
	event, err := decodeDelivery(delivery)
	if err != nil {
		// Malformed messages would be redelivered forever.
		r.logger.Warn("Dropping malformed message",
			slog.String("message_id", delivery.MessageId),
			slog.Any("error", err),
		)
		_ = delivery.Nack(false, false)

		return
	}

	if err := handler(ctx, event); err != nil {
		r.logger.Error("Event handler failed, requeueing",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
		_ = delivery.Nack(false, true)

		return
	}

	_ = delivery.Ack(false)
}

// Close closes the underlying channel and connection.
func (r *RabbitMQClient) Close() error {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		return errors.WithStack(r.conn.Close())
	}

	return nil
}

func decodeDelivery(delivery amqp.Delivery) (*service.MoosageEvent, error) {
	var event service.MoosageEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal moosage event")
	}
	if event.EventID == "" {
		event.EventID = delivery.MessageId
	}
	if event.RequestID == "" {
		event.RequestID = headerString(delivery.Headers, "request_id")
	}

	return &event, nil
}

func headerString(headers amqp.Table, key string) string {
	switch typed := headers[key].(type) {
	case string:
		return typed
	case []byte:
		return string(typed)
	case nil:
		return ""
	default:
		return fmt.Sprint(typed)
	}
}
