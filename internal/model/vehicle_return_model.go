package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VehicleReturn GORM model for vehicle return records.
// Damages are stored as a jsonb array of damage observations.
type VehicleReturn struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ContractID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	VehicleID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReturnDate      time.Time      `gorm:"not null"`
	Condition       string         `gorm:"type:varchar(20);not null"` // excellent, good, fair, poor
	FuelLevel       int            `gorm:"not null"`                  // percentage 0-100
	OdometerReading *float64       `gorm:"type:decimal(12,1)"`
	Damages         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Notes           string         `gorm:"type:text"`
	Status          string         `gorm:"type:varchar(20);default:'pending';index"` // pending, approved, rejected
	RejectionReason string         `gorm:"type:text"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	// Relations
	Contract Contract `gorm:"foreignKey:ContractID"`
}

func (VehicleReturn) TableName() string {
	return "vehicle_returns"
}
