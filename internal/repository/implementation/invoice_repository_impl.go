package implementation

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"

	"gorm.io/gorm"
)

type invoiceRepositoryImpl struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) contract.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, invoice *entity.Invoice) error {
	m := &model.Invoice{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		ContractID:    invoice.ContractID,
		CustomerID:    invoice.CustomerID,
		TotalAmount:   invoice.TotalAmount,
		PaidAmount:    invoice.PaidAmount,
		PaymentStatus: string(invoice.PaymentStatus),
		InvoiceDate:   invoice.InvoiceDate,
		DueDate:       invoice.DueDate,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *invoiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	var m model.Invoice
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&m), nil
}

func (r *invoiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var invoices []*entity.Invoice
	for _, m := range models {
		invoices = append(invoices, r.mapToEntity(m))
	}

	return invoices, nil
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"total_amount":   invoice.TotalAmount,
			"paid_amount":    invoice.PaidAmount,
			"payment_status": string(invoice.PaymentStatus),
			"due_date":       invoice.DueDate,
		}).Error
}

func (r *invoiceRepositoryImpl) mapToEntity(m *model.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		ContractID:    m.ContractID,
		CustomerID:    m.CustomerID,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
