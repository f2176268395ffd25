package model

import (
	"time"

	"github.com/google/uuid"
)

// Invoice GORM model for contract billing documents
type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceNumber string     `gorm:"type:varchar(50);unique;not null"`
	ContractID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TotalAmount   float64    `gorm:"type:decimal(12,2);not null"`
	PaidAmount    float64    `gorm:"type:decimal(12,2);default:0"`
	PaymentStatus string     `gorm:"type:varchar(20);default:'unpaid';index"` // paid, partially_paid, unpaid
	InvoiceDate   time.Time  `gorm:"not null;index"`
	DueDate       *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`

	// Relations
	Contract Contract `gorm:"foreignKey:ContractID"`
	Customer Customer `gorm:"foreignKey:CustomerID"`
}

func (Invoice) TableName() string {
	return "invoices"
}
