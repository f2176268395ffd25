package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ContractRepository defines operations over rental contracts
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contract, error)
	FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	// UpdateStatus applies a status transition with an audit reason.
	// The write is rejected when the contract is already in a terminal state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContractStatus, reason string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
