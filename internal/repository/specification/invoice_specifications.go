package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForEmployee filters invoices whose contract is assigned to the employee.
// The month/fallback windowing happens in the aggregator, which needs the
// full set to decide whether the fallback applies.
type ForEmployee struct {
	EmployeeID uuid.UUID
}

func (s ForEmployee) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN contracts ON contracts.id = invoices.contract_id").
		Where("contracts.employee_id = ?", s.EmployeeID)
}

// ByInvoiceNumber filters by the human-readable invoice number
type ByInvoiceNumber struct {
	Number string
}

func (s ByInvoiceNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("invoice_number = ?", s.Number)
}
