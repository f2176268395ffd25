package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// VehicleReturnRepository defines operations for vehicle return records
type VehicleReturnRepository interface {
	Create(ctx context.Context, ret *entity.VehicleReturn) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VehicleReturn, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VehicleReturn, error)
	// FindLatestByContract returns the most recent return record for a
	// contract, or nil when none exists. The latest record drives the
	// cancellation workflow stage.
	FindLatestByContract(ctx context.Context, contractID uuid.UUID) (*entity.VehicleReturn, error)
	// UpdateStatus transitions a record between approval states. The update
	// narrows on the expected current status so concurrent processors
	// cannot both win; it returns the number of rows affected.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ReturnStatus, rejectionReason string) (int64, error)
}
