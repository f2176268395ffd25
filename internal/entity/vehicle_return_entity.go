package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnStatus represents the approval status of a vehicle return record
type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "pending"
	ReturnStatusApproved ReturnStatus = "approved"
	ReturnStatusRejected ReturnStatus = "rejected"
)

// VehicleCondition is the appraised overall condition at return time
type VehicleCondition string

const (
	VehicleConditionExcellent VehicleCondition = "excellent"
	VehicleConditionGood      VehicleCondition = "good"
	VehicleConditionFair      VehicleCondition = "fair"
	VehicleConditionPoor      VehicleCondition = "poor"
)

// DamageSeverity is the canonical three-level severity taxonomy.
// Diagram points carry their own scale (see PointSeverity); "severe"
// maps to "major" when merged into this taxonomy.
type DamageSeverity string

const (
	DamageSeverityMinor    DamageSeverity = "minor"
	DamageSeverityModerate DamageSeverity = "moderate"
	DamageSeverityMajor    DamageSeverity = "major"
)

// PointSeverity is the severity scale used by diagram-originated points
type PointSeverity string

const (
	PointSeverityMinor    PointSeverity = "minor"
	PointSeverityModerate PointSeverity = "moderate"
	PointSeveritySevere   PointSeverity = "severe"
)

// DamagePosition locates a diagram-originated damage on the vehicle sketch
type DamagePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Damage is a single damage observation embedded in a return record.
// Position is present only for diagram-originated damage; CostEstimate
// only for manual entries.
type Damage struct {
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	Severity     DamageSeverity  `json:"severity"`
	Position     *DamagePosition `json:"position,omitempty"`
	CostEstimate *float64        `json:"cost_estimate,omitempty"`
}

// DamagePoint is a diagram-originated observation before normalization
type DamagePoint struct {
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Severity    PointSeverity `json:"severity"`
}

// VehicleReturn documents a vehicle's condition at contract end.
// It must be approved before the contract cancellation can proceed.
type VehicleReturn struct {
	ID              uuid.UUID
	ContractID      uuid.UUID
	VehicleID       uuid.UUID
	ReturnDate      time.Time
	Condition       VehicleCondition
	FuelLevel       int // percentage, 0-100
	OdometerReading *float64
	Damages         []Damage
	Notes           string
	Status          ReturnStatus
	RejectionReason string // present iff Status == rejected
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Contract Contract
}
