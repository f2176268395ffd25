package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/pkg/logger"
	"fleetrent-be/internal/repository"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/pkg/events"
	pktNats "fleetrent-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	payload := event.Payload()

	switch typeCode {
	case "RETURN_SUBMITTED":
		// Every manager gets a pending-approval notification.
		return s.notifyRole(ctx, entity.UserRoleManager, typeCode, payload,
			"Vehicle Return Awaiting Approval",
			"A vehicle return was submitted and is waiting for your decision.")

	case "RETURN_APPROVED":
		return s.notifyRole(ctx, entity.UserRoleEmployee, typeCode, payload,
			"Vehicle Return Approved",
			"The vehicle return was approved. The contract can now be cancelled.")

	case "RETURN_REJECTED":
		reason, _ := payload["reason"].(string)
		return s.notifyRole(ctx, entity.UserRoleEmployee, typeCode, payload,
			"Vehicle Return Rejected",
			fmt.Sprintf("The vehicle return was rejected: %s", reason))

	case "CONTRACT_CANCELLED":
		notif := s.buildNotification(uuid.Nil, typeCode, payload,
			"Contract Cancelled",
			"A contract was cancelled after its vehicle return was approved.")
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil

	default:
		// Unknown event types are acked silently.
		return nil
	}
}

func (s *NotificationService) notifyRole(ctx context.Context, role entity.UserRole, typeCode string, payload map[string]interface{}, title, message string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.ByRole{Role: string(role)}, specification.ActiveUsers{})
	if err != nil {
		s.logger.Error("NotificationService", "Failed to resolve recipients", map[string]interface{}{
			"type":  typeCode,
			"error": err.Error(),
		})
		return err // NATS will retry
	}

	for _, user := range users {
		notif := s.buildNotification(user.ID, typeCode, payload, title, message)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", "Failed to persist notification", map[string]interface{}{
				"userId": user.ID.String(),
				"error":  err.Error(),
			})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(user.ID, notif)
		}
	}
	return nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, payload map[string]interface{}, title, message string) model.Notification {
	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if entityType, ok := payload["entity_type"].(string); ok {
		notif.EntityType = entityType
	}
	if entityIdStr, ok := payload["entity_id"].(string); ok {
		if entityId, err := uuid.Parse(entityIdStr); err == nil {
			notif.EntityID = &entityId
		}
	}
	if meta, err := json.Marshal(payload); err == nil {
		notif.Metadata = datatypes.JSON(meta)
	}

	return notif
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
