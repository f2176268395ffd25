package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// VehicleRepository defines operations over fleet vehicles
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error
}
