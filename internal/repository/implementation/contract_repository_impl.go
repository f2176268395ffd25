package implementation

import (
	"context"
	"fmt"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contractRepositoryImpl struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

func (r *contractRepositoryImpl) Create(ctx context.Context, c *entity.Contract) error {
	m := &model.Contract{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		CustomerID:     c.CustomerID,
		VehicleID:      c.VehicleID,
		EmployeeID:     c.EmployeeID,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		DailyRate:      c.DailyRate,
		TotalAmount:    c.TotalAmount,
		Status:         string(c.Status),
		StatusReason:   c.StatusReason,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contractRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error) {
	var m model.Contract
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

func (r *contractRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contract, error) {
	var models []*model.Contract
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var contracts []*entity.Contract
	for _, m := range models {
		contracts = append(contracts, r.mapToEntity(m))
	}

	return contracts, nil
}

// FindOneWithDetails returns a contract with preloaded Customer and Vehicle
func (r *contractRepositoryImpl) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error) {
	var m model.Contract
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	c := r.mapToEntity(&m)
	c.Customer = entity.Customer{
		ID:       m.Customer.ID,
		FullName: m.Customer.FullName,
		Email:    m.Customer.Email,
		Phone:    m.Customer.Phone,
	}
	c.Vehicle = entity.Vehicle{
		ID:          m.Vehicle.ID,
		PlateNumber: m.Vehicle.PlateNumber,
		Make:        m.Vehicle.Make,
		Model:       m.Vehicle.Model,
		Year:        m.Vehicle.Year,
		Status:      entity.VehicleStatus(m.Vehicle.Status),
	}
	return c, nil
}

func (r *contractRepositoryImpl) Update(ctx context.Context, c *entity.Contract) error {
	return r.db.WithContext(ctx).Model(&model.Contract{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"start_date":    c.StartDate,
			"end_date":      c.EndDate,
			"daily_rate":    c.DailyRate,
			"total_amount":  c.TotalAmount,
			"status":        string(c.Status),
			"status_reason": c.StatusReason,
		}).Error
}

func (r *contractRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContractStatus, reason string) error {
	res := r.db.WithContext(ctx).Model(&model.Contract{}).
		Where("id = ? AND status NOT IN ?", id, []string{
			string(entity.ContractStatusCancelled),
			string(entity.ContractStatusExpired),
		}).
		Updates(map[string]interface{}{
			"status":        string(status),
			"status_reason": reason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contract %s not found or already in a terminal state", id)
	}
	return nil
}

func (r *contractRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Contract{})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *contractRepositoryImpl) mapToEntity(m *model.Contract) *entity.Contract {
	return &entity.Contract{
		ID:             m.ID,
		ContractNumber: m.ContractNumber,
		CustomerID:     m.CustomerID,
		VehicleID:      m.VehicleID,
		EmployeeID:     m.EmployeeID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		DailyRate:      m.DailyRate,
		TotalAmount:    m.TotalAmount,
		Status:         entity.ContractStatus(m.Status),
		StatusReason:   m.StatusReason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
