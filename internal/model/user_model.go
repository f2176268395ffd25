package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User GORM model for staff accounts
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string         `gorm:"type:varchar(150);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	FullName     string         `gorm:"type:varchar(150)"`
	Role         string         `gorm:"type:varchar(20);default:'employee';index"` // employee, manager
	Status       string         `gorm:"type:varchar(20);default:'active'"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
