package dto

import (
	"time"

	"fleetrent-be/internal/entity"

	"github.com/google/uuid"
)

// --- Return Submission (customer-facing form) ---

// ManualDamageInput is a free-form damage entry from the return form
type ManualDamageInput struct {
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Severity     string   `json:"severity" validate:"required,oneof=minor moderate major"`
	CostEstimate *float64 `json:"cost_estimate,omitempty" validate:"omitempty,gte=0"`
}

// DiagramPointInput is a damage point placed on the vehicle diagram
type DiagramPointInput struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Type        string  `json:"type"`
	Description string  `json:"description" validate:"required"`
	Severity    string  `json:"severity" validate:"required,oneof=minor moderate severe"`
}

// SubmitReturnRequest creates a vehicle return record for a contract
type SubmitReturnRequest struct {
	ContractId       uuid.UUID           `json:"-"`
	ReturnDate       string              `json:"return_date" validate:"required,datetime=2006-01-02"`
	VehicleCondition string              `json:"vehicle_condition" validate:"required,oneof=excellent good fair poor"`
	FuelLevel        int                 `json:"fuel_level" validate:"min=0,max=100"`
	OdometerReading  *float64            `json:"odometer_reading,omitempty" validate:"omitempty,gte=0"`
	Damages          []ManualDamageInput `json:"damages" validate:"dive"`
	DiagramPoints    []DiagramPointInput `json:"diagram_points" validate:"dive"`
	Notes            string              `json:"notes"`
}

// SubmitReturnResponse after a return record is created
type SubmitReturnResponse struct {
	ReturnId uuid.UUID `json:"return_id"`
	Status   string    `json:"status"`
	Stage    string    `json:"stage"`
}

// --- Approval processing (manager-facing) ---

// RejectReturnRequest rejects a pending return; reason is mandatory
type RejectReturnRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ProcessReturnResponse after an approval decision
type ProcessReturnResponse struct {
	ReturnId    uuid.UUID `json:"return_id"`
	Status      string    `json:"status"`
	Stage       string    `json:"stage"`
	ProcessedAt time.Time `json:"processed_at"`
}

// --- Workflow state ---

// ReturnDetails is the serialized return record inside workflow state
type ReturnDetails struct {
	Id               uuid.UUID       `json:"id"`
	ContractId       uuid.UUID       `json:"contract_id"`
	VehicleId        uuid.UUID       `json:"vehicle_id"`
	ReturnDate       time.Time       `json:"return_date"`
	VehicleCondition string          `json:"vehicle_condition"`
	FuelLevel        int             `json:"fuel_level"`
	OdometerReading  *float64        `json:"odometer_reading,omitempty"`
	Damages          []entity.Damage `json:"damages"`
	Notes            string          `json:"notes"`
	Status           string          `json:"status"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	ProcessedAt      *time.Time      `json:"processed_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CancellationStateResponse exposes the derived workflow stage plus the
// record driving it (nil when no return exists yet). History lists prior
// rejected records, newest first, so the approval view can show why a
// resubmission happened.
type CancellationStateResponse struct {
	ContractId uuid.UUID        `json:"contract_id"`
	Stage      string           `json:"stage"`
	Return     *ReturnDetails   `json:"return,omitempty"`
	History    []*ReturnDetails `json:"history,omitempty"`
}

// FinalizeCancellationResponse after the contract reaches cancelled
type FinalizeCancellationResponse struct {
	ContractId uuid.UUID `json:"contract_id"`
	Status     string    `json:"status"`
}
