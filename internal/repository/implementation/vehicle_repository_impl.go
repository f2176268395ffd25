package implementation

import (
	"context"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/model"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepositoryImpl struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) contract.VehicleRepository {
	return &vehicleRepositoryImpl{db: db}
}

func (r *vehicleRepositoryImpl) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	m := &model.Vehicle{
		ID:              vehicle.ID,
		PlateNumber:     vehicle.PlateNumber,
		Make:            vehicle.Make,
		Model:           vehicle.Model,
		Year:            vehicle.Year,
		Status:          string(vehicle.Status),
		OdometerReading: vehicle.OdometerReading,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *vehicleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error) {
	var m model.Vehicle
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

func (r *vehicleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error) {
	var models []*model.Vehicle
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var vehicles []*entity.Vehicle
	for _, m := range models {
		vehicles = append(vehicles, r.mapToEntity(m))
	}

	return vehicles, nil
}

func (r *vehicleRepositoryImpl) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]interface{}{
			"status":           string(vehicle.Status),
			"odometer_reading": vehicle.OdometerReading,
		}).Error
}

func (r *vehicleRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	return r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *vehicleRepositoryImpl) mapToEntity(m *model.Vehicle) *entity.Vehicle {
	return &entity.Vehicle{
		ID:              m.ID,
		PlateNumber:     m.PlateNumber,
		Make:            m.Make,
		Model:           m.Model,
		Year:            m.Year,
		Status:          entity.VehicleStatus(m.Status),
		OdometerReading: m.OdometerReading,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
