package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ashkanani/agency/internal/infra"
)

// AuditEvent records one mutation of an agency entity.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"` // created | updated | deleted
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditPublisher publishes entity-change events. Publishing is
// best-effort: a broker failure is logged, never surfaced to the caller.
type AuditPublisher struct {
	producer *infra.KafkaProducer
	topic    string
	logger   *slog.Logger
}

// NewAuditPublisher creates an audit publisher writing to the given topic.
func NewAuditPublisher(producer *infra.KafkaProducer, topic string, logger *slog.Logger) *AuditPublisher {
	return &AuditPublisher{producer: producer, topic: topic, logger: logger}
}

// Record publishes one audit event keyed by entity id.
func (a *AuditPublisher) Record(ctx context.Context, action, entityType, entityID, actorID string) {
	if a == nil || a.producer == nil {
		return
	}

	event := AuditEvent{
		EventID:    uuid.New().String(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		a.logger.Error("marshal audit event", "error", err)
		return
	}

	if err := a.producer.Publish(ctx, a.topic, []byte(entityID), payload); err != nil {
		a.logger.Error("publish audit event", "error", err, "entity", entityType, "id", entityID)
	}
}
