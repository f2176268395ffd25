package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract GORM model for rental contracts
type Contract struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ContractNumber string    `gorm:"type:varchar(50);unique;not null"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	DailyRate      float64   `gorm:"type:decimal(12,2);default:0"`
	TotalAmount    float64   `gorm:"type:decimal(12,2);default:0"`
	Status         string    `gorm:"type:varchar(50);default:'draft';index"` // draft, active, suspended, expired, cancelled, renewed, under_review
	StatusReason   string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	// Relations
	Customer Customer `gorm:"foreignKey:CustomerID"`
	Vehicle  Vehicle  `gorm:"foreignKey:VehicleID"`
}

func (Contract) TableName() string {
	return "contracts"
}
