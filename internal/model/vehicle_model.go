package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle GORM model for fleet vehicles
type Vehicle struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PlateNumber     string         `gorm:"type:varchar(20);unique;not null"`
	Make            string         `gorm:"type:varchar(50)"`
	Model           string         `gorm:"type:varchar(50)"`
	Year            int            `gorm:"type:int"`
	Status          string         `gorm:"type:varchar(20);default:'available';index"` // available, rented, maintenance
	OdometerReading float64        `gorm:"type:decimal(12,1);default:0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
