package unitofwork

import (
	"context"

	"fleetrent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CustomerRepository() contract.CustomerRepository
	VehicleRepository() contract.VehicleRepository
	ContractRepository() contract.ContractRepository
	VehicleReturnRepository() contract.VehicleReturnRepository
	InvoiceRepository() contract.InvoiceRepository
	AuditLogRepository() contract.AuditLogRepository
}
