package contract

import (
	"context"

	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/specification"
)

// AuditLogRepository persists workflow audit entries.
// Audit rows are append-only; there is no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.AuditLog, error)
}
