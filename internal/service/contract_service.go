package service

import (
	"context"
	"errors"
	"time"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContractService interface {
	Create(ctx context.Context, employeeId uuid.UUID, req *dto.CreateContractRequest) (*dto.CreateContractResponse, error)
	GetAll(ctx context.Context, page, limit int, status string) ([]*dto.ContractListResponse, error)
	GetById(ctx context.Context, contractId uuid.UUID) (*dto.ContractDetailResponse, error)
	UpdateStatus(ctx context.Context, contractId uuid.UUID, req *dto.UpdateContractStatusRequest) error
}

type contractService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContractService(uowFactory unitofwork.RepositoryFactory) IContractService {
	return &contractService{
		uowFactory: uowFactory,
	}
}

func (s *contractService) Create(ctx context.Context, employeeId uuid.UUID, req *dto.CreateContractRequest) (*dto.CreateContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ContractRepository().FindOne(ctx, specification.ByContractNumber{Number: req.ContractNumber})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("contract number already in use")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.New("invalid start_date")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, errors.New("invalid end_date")
	}
	if !endDate.After(startDate) {
		return nil, errors.New("end_date must be after start_date")
	}

	contract := &entity.Contract{
		ID:             uuid.New(),
		ContractNumber: req.ContractNumber,
		CustomerID:     req.CustomerId,
		VehicleID:      req.VehicleId,
		EmployeeID:     employeeId,
		StartDate:      startDate,
		EndDate:        endDate,
		DailyRate:      req.DailyRate,
		TotalAmount:    req.TotalAmount,
		Status:         entity.ContractStatusActive,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ContractRepository().Create(ctx, contract); err != nil {
		return nil, err
	}

	// The rented vehicle leaves the available pool with the contract.
	if err := uow.VehicleRepository().UpdateStatus(ctx, req.VehicleId, entity.VehicleStatusRented); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateContractResponse{Id: contract.ID}, nil
}

func (s *contractService) GetAll(ctx context.Context, page, limit int, status string) ([]*dto.ContractListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var specs []specification.Specification
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	contracts, err := uow.ContractRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ContractListResponse, 0, len(contracts))
	for _, c := range contracts {
		res = append(res, &dto.ContractListResponse{
			Id:             c.ID,
			ContractNumber: c.ContractNumber,
			CustomerId:     c.CustomerID,
			VehicleId:      c.VehicleID,
			StartDate:      c.StartDate,
			EndDate:        c.EndDate,
			TotalAmount:    c.TotalAmount,
			Status:         string(c.Status),
			CreatedAt:      c.CreatedAt,
		})
	}
	return res, nil
}

func (s *contractService) GetById(ctx context.Context, contractId uuid.UUID) (*dto.ContractDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.ContractRepository().FindOneWithDetails(ctx, specification.ByID{ID: contractId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("contract not found")
	}

	return &dto.ContractDetailResponse{
		Id:             c.ID,
		ContractNumber: c.ContractNumber,
		Customer: dto.ContractCustomerInfo{
			Id:       c.Customer.ID,
			FullName: c.Customer.FullName,
			Email:    c.Customer.Email,
			Phone:    c.Customer.Phone,
		},
		Vehicle: dto.ContractVehicleInfo{
			Id:          c.Vehicle.ID,
			PlateNumber: c.Vehicle.PlateNumber,
			Make:        c.Vehicle.Make,
			Model:       c.Vehicle.Model,
			Year:        c.Vehicle.Year,
		},
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		DailyRate:    c.DailyRate,
		TotalAmount:  c.TotalAmount,
		Status:       string(c.Status),
		StatusReason: c.StatusReason,
	}, nil
}

func (s *contractService) UpdateStatus(ctx context.Context, contractId uuid.UUID, req *dto.UpdateContractStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Cancellation must go through the return approval workflow; the
	// manual endpoint covers the other transitions.
	if req.Status == string(entity.ContractStatusCancelled) {
		return errors.New("use the cancellation workflow to cancel a contract")
	}

	return uow.ContractRepository().UpdateStatus(ctx, contractId, entity.ContractStatus(req.Status), req.Reason)
}
