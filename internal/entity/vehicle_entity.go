package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleStatus tracks fleet availability
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID              uuid.UUID
	PlateNumber     string
	Make            string
	Model           string
	Year            int
	Status          VehicleStatus
	OdometerReading float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt
}
