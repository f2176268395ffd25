package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
)

// CustomerRepository defines operations over rental customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
