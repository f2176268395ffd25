package contract

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
)

// InvoiceRepository defines operations over contract invoices
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
}
