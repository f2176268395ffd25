package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer GORM model for rental customers
type Customer struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName   string         `gorm:"type:varchar(150);not null"`
	Email      string         `gorm:"type:varchar(150);index"`
	Phone      string         `gorm:"type:varchar(30)"`
	NationalID string         `gorm:"type:varchar(30);index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}
