package repository

import (
	"context"

	"fleetrent-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository persists and reads workflow notifications
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
