package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractStatus represents the lifecycle status of a rental contract
type ContractStatus string

const (
	ContractStatusDraft       ContractStatus = "draft"
	ContractStatusActive      ContractStatus = "active"
	ContractStatusSuspended   ContractStatus = "suspended"
	ContractStatusExpired     ContractStatus = "expired"
	ContractStatusCancelled   ContractStatus = "cancelled"
	ContractStatusRenewed     ContractStatus = "renewed"
	ContractStatusUnderReview ContractStatus = "under_review"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCancelled || s == ContractStatusExpired
}

// Contract represents a vehicle rental contract
type Contract struct {
	ID             uuid.UUID
	ContractNumber string
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	EmployeeID     uuid.UUID // employee responsible for collections on this contract
	StartDate      time.Time
	EndDate        time.Time
	DailyRate      float64
	TotalAmount    float64
	Status         ContractStatus
	StatusReason   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt

	Customer Customer
	Vehicle  Vehicle
}
