package implementation

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"

	"gorm.io/gorm"
)

type customerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &customerRepositoryImpl{db: db}
}

func (r *customerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := &model.Customer{
		ID:         customer.ID,
		FullName:   customer.FullName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		NationalID: customer.NationalID,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *customerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
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

func (r *customerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var models []*model.Customer
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var customers []*entity.Customer
	for _, m := range models {
		customers = append(customers, r.mapToEntity(m))
	}

	return customers, nil
}

func (r *customerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"full_name":   customer.FullName,
			"email":       customer.Email,
			"phone":       customer.Phone,
			"national_id": customer.NationalID,
		}).Error
}

func (r *customerRepositoryImpl) mapToEntity(m *model.Customer) *entity.Customer {
	return &entity.Customer{
		ID:         m.ID,
		FullName:   m.FullName,
		Email:      m.Email,
		Phone:      m.Phone,
		NationalID: m.NationalID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
