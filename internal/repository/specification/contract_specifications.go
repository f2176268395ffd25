package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByContractID filters records belonging to a contract
type ByContractID struct {
	ContractID uuid.UUID
}

func (s ByContractID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contract_id = ?", s.ContractID)
}

// ByStatus filters by status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByContractNumber filters by the human-readable contract number
type ByContractNumber struct {
	Number string
}

func (s ByContractNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contract_number = ?", s.Number)
}
