package service

import (
	"context"
	"encoding/json"
	"log"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process audit pipeline and persists
// each message as an append-only audit log row. Persisting off the
// request path keeps workflow mutations fast.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // malformed messages are not retriable
		return
	}

	var details datatypes.JSON
	if payload.Details != nil {
		if raw, err := json.Marshal(payload.Details); err == nil {
			details = datatypes.JSON(raw)
		}
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err := uow.AuditLogRepository().Create(ctx, &model.AuditLog{
		ID:         uuid.New(),
		ActorID:    payload.ActorId,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityId,
		Details:    details,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to persist audit log for %s %s: %v", payload.Action, payload.EntityId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
