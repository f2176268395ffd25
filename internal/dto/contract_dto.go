package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateContractRequest opens a new rental contract
type CreateContractRequest struct {
	ContractNumber string    `json:"contract_number" validate:"required"`
	CustomerId     uuid.UUID `json:"customer_id" validate:"required"`
	VehicleId      uuid.UUID `json:"vehicle_id" validate:"required"`
	StartDate      string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	DailyRate      float64   `json:"daily_rate" validate:"gte=0"`
	TotalAmount    float64   `json:"total_amount" validate:"gte=0"`
}

// CreateContractResponse after contract creation
type CreateContractResponse struct {
	Id uuid.UUID `json:"id"`
}

// ContractListResponse is a contract summary row
type ContractListResponse struct {
	Id             uuid.UUID `json:"id"`
	ContractNumber string    `json:"contract_number"`
	CustomerId     uuid.UUID `json:"customer_id"`
	VehicleId      uuid.UUID `json:"vehicle_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ContractDetailResponse includes customer and vehicle info
type ContractDetailResponse struct {
	Id             uuid.UUID            `json:"id"`
	ContractNumber string               `json:"contract_number"`
	Customer       ContractCustomerInfo `json:"customer"`
	Vehicle        ContractVehicleInfo  `json:"vehicle"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	DailyRate      float64              `json:"daily_rate"`
	TotalAmount    float64              `json:"total_amount"`
	Status         string               `json:"status"`
	StatusReason   string               `json:"status_reason,omitempty"`
}

// ContractCustomerInfo embedded customer info
type ContractCustomerInfo struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
}

// ContractVehicleInfo embedded vehicle info
type ContractVehicleInfo struct {
	Id          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plate_number"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
}

// UpdateContractStatusRequest applies a manual status transition
type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active suspended expired cancelled renewed under_review"`
	Reason string `json:"reason"`
}
