package dto

import (
	"time"

	"github.com/google/uuid"
)

// CollectionsInvoiceResponse is one classified invoice row
type CollectionsInvoiceResponse struct {
	Id            uuid.UUID  `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	ContractId    uuid.UUID  `json:"contract_id"`
	TotalAmount   float64    `json:"total_amount"`
	PaidAmount    float64    `json:"paid_amount"`
	Remaining     float64    `json:"remaining"`
	Status        string     `json:"status"` // paid, unpaid, partially_paid, overdue
	InvoiceDate   time.Time  `json:"invoice_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// CollectionsStatsResponse holds the aggregate collection figures
type CollectionsStatsResponse struct {
	TotalDue        float64 `json:"total_due"`
	TotalCollected  float64 `json:"total_collected"`
	TotalPending    float64 `json:"total_pending"`
	CollectionRate  int     `json:"collection_rate"` // percentage, 0-100
	InvoiceCount    int     `json:"invoice_count"`
	FallbackApplied bool    `json:"fallback_applied"` // true when widened beyond the current month
}

// MonthlyCollectionsResponse is the per-employee collections view
type MonthlyCollectionsResponse struct {
	EmployeeId  uuid.UUID                    `json:"employee_id"`
	Period      string                       `json:"period"` // YYYY-MM
	Stats       CollectionsStatsResponse     `json:"stats"`
	Invoices    []CollectionsInvoiceResponse `json:"invoices"`
	GeneratedAt time.Time                    `json:"generated_at"`
}
