package implementation

import (
	"context"

	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/scope"
	"fleetrent-be/internal/repository/specification"

	"gorm.io/gorm"
)

type auditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

func (r *auditLogRepositoryImpl) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.AuditLog, error) {
	var logs []*model.AuditLog
	query := r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}
