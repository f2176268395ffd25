package events

import (
	"context"
	"time"

	"fleetrent-be/internal/pkg/logger"
	pkgEvents "fleetrent-be/pkg/events"
	pkgNats "fleetrent-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for the cancellation workflow
type Publisher interface {
	PublishReturnSubmitted(ctx context.Context, returnId, contractId, vehicleId uuid.UUID, damageCount int)
	PublishReturnApproved(ctx context.Context, returnId, contractId uuid.UUID)
	PublishReturnRejected(ctx context.Context, returnId, contractId uuid.UUID, reason string)
	PublishContractCancelled(ctx context.Context, contractId, customerId, vehicleId uuid.UUID, reason string)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishReturnSubmitted emits RETURN_SUBMITTED when a return record is created
func (p *NatsPublisher) PublishReturnSubmitted(ctx context.Context, returnId, contractId, vehicleId uuid.UUID, damageCount int) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "RETURN_SUBMITTED",
		Data: map[string]interface{}{
			"return_id":    returnId,
			"contract_id":  contractId,
			"vehicle_id":   vehicleId,
			"damage_count": damageCount,
			"entity_type":  "vehicle_return",
			"entity_id":    returnId.String(),
			"occurred_at":  now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("WORKFLOW", "Failed to publish RETURN_SUBMITTED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishReturnApproved emits RETURN_APPROVED
func (p *NatsPublisher) PublishReturnApproved(ctx context.Context, returnId, contractId uuid.UUID) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "RETURN_APPROVED",
		Data: map[string]interface{}{
			"return_id":   returnId,
			"contract_id": contractId,
			"entity_type": "vehicle_return",
			"entity_id":   returnId.String(),
			"occurred_at": now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("WORKFLOW", "Failed to publish RETURN_APPROVED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishReturnRejected emits RETURN_REJECTED
func (p *NatsPublisher) PublishReturnRejected(ctx context.Context, returnId, contractId uuid.UUID, reason string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "RETURN_REJECTED",
		Data: map[string]interface{}{
			"return_id":   returnId,
			"contract_id": contractId,
			"reason":      reason,
			"entity_type": "vehicle_return",
			"entity_id":   returnId.String(),
			"occurred_at": now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("WORKFLOW", "Failed to publish RETURN_REJECTED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishContractCancelled emits CONTRACT_CANCELLED once the workflow finalizes
func (p *NatsPublisher) PublishContractCancelled(ctx context.Context, contractId, customerId, vehicleId uuid.UUID, reason string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "CONTRACT_CANCELLED",
		Data: map[string]interface{}{
			"contract_id": contractId,
			"customer_id": customerId,
			"vehicle_id":  vehicleId,
			"reason":      reason,
			"entity_type": "contract",
			"entity_id":   contractId.String(),
			"occurred_at": now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("WORKFLOW", "Failed to publish CONTRACT_CANCELLED event", map[string]interface{}{"error": err.Error()})
	}
}
