package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
)

// UserRepository defines operations over staff accounts
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
