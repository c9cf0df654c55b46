package service

import (
	"context"
	"time"
)

// MoosageEventType identifies what happened to a moosage.
type MoosageEventType string

const (
	MoosageCreated MoosageEventType = "moosage.created"
	MoosageLiked   MoosageEventType = "moosage.liked"
	MoosageUnliked MoosageEventType = "moosage.unliked"
	MoosageUpdated MoosageEventType = "moosage.updated"
	MoosageDeleted MoosageEventType = "moosage.deleted"
)

// Valid reports whether t is one of the known event types.
func (t MoosageEventType) Valid() bool {
	switch t {
	case MoosageCreated, MoosageLiked, MoosageUnliked, MoosageUpdated, MoosageDeleted:
		return true
	default:
		return false
	}
}

// MoosageEvent is emitted after every successful moosage mutation and consumed by the activity worker
type MoosageEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       MoosageEventType `json:"type"`
	MoosageID  int64            `json:"moosage_id"`
	ActorID    string           `json:"actor_id"`
	AuthorID   string           `json:"author_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMoosageEvent publishes a moosage event for async processing
	PublishMoosageEvent(ctx context.Context, event *MoosageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
