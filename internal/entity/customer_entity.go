package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a rental customer
type Customer struct {
	ID         uuid.UUID
	FullName   string
	Email      string
	Phone      string
	NationalID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt
}
