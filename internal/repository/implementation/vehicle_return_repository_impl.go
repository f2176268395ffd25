package implementation

import (
	"context"
	"encoding/json"
	"time"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/scope"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type vehicleReturnRepositoryImpl struct {
	db *gorm.DB
}

// NewVehicleReturnRepository creates a new vehicle return repository
func NewVehicleReturnRepository(db *gorm.DB) contract.VehicleReturnRepository {
	return &vehicleReturnRepositoryImpl{db: db}
}

func (r *vehicleReturnRepositoryImpl) Create(ctx context.Context, ret *entity.VehicleReturn) error {
	m, err := r.mapToModel(ret)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *vehicleReturnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VehicleReturn, error) {
	var m model.VehicleReturn
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

	return r.mapToEntity(&m)
}

func (r *vehicleReturnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VehicleReturn, error) {
	var models []*model.VehicleReturn
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var returns []*entity.VehicleReturn
	for _, m := range models {
		ret, err := r.mapToEntity(m)
		if err != nil {
			return nil, err
		}
		returns = append(returns, ret)
	}

	return returns, nil
}

func (r *vehicleReturnRepositoryImpl) FindLatestByContract(ctx context.Context, contractID uuid.UUID) (*entity.VehicleReturn, error) {
	var m model.VehicleReturn
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Scopes(scope.OrderByCreatedDesc).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&m)
}

func (r *vehicleReturnRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ReturnStatus, rejectionReason string) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.VehicleReturn{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":           string(to),
			"rejection_reason": rejectionReason,
			"processed_at":     &now,
		})
	return res.RowsAffected, res.Error
}

func (r *vehicleReturnRepositoryImpl) mapToModel(ret *entity.VehicleReturn) (*model.VehicleReturn, error) {
	damages := ret.Damages
	if damages == nil {
		damages = []entity.Damage{}
	}
	damagesJSON, err := json.Marshal(damages)
	if err != nil {
		return nil, err
	}

	return &model.VehicleReturn{
		ID:              ret.ID,
		ContractID:      ret.ContractID,
		VehicleID:       ret.VehicleID,
		ReturnDate:      ret.ReturnDate,
		Condition:       string(ret.Condition),
		FuelLevel:       ret.FuelLevel,
		OdometerReading: ret.OdometerReading,
		Damages:         datatypes.JSON(damagesJSON),
		Notes:           ret.Notes,
		Status:          string(ret.Status),
		RejectionReason: ret.RejectionReason,
		ProcessedAt:     ret.ProcessedAt,
	}, nil
}

func (r *vehicleReturnRepositoryImpl) mapToEntity(m *model.VehicleReturn) (*entity.VehicleReturn, error) {
	var damages []entity.Damage
	if len(m.Damages) > 0 {
		if err := json.Unmarshal(m.Damages, &damages); err != nil {
			return nil, err
		}
	}

	return &entity.VehicleReturn{
		ID:              m.ID,
		ContractID:      m.ContractID,
		VehicleID:       m.VehicleID,
		ReturnDate:      m.ReturnDate,
		Condition:       entity.VehicleCondition(m.Condition),
		FuelLevel:       m.FuelLevel,
		OdometerReading: m.OdometerReading,
		Damages:         damages,
		Notes:           m.Notes,
		Status:          entity.ReturnStatus(m.Status),
		RejectionReason: m.RejectionReason,
		ProcessedAt:     m.ProcessedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
