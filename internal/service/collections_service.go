package service

import (
	"context"
	"time"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/repository/memory"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/pkg/collections"

	"github.com/google/uuid"
)

type ICollectionsService interface {
	Monthly(ctx context.Context, employeeId uuid.UUID) (*dto.MonthlyCollectionsResponse, error)
	InvalidateFor(employeeId uuid.UUID)
}

type collectionsService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *collections.Aggregator
	cache      *memory.CollectionsCache
}

func NewCollectionsService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *collections.Aggregator,
	cache *memory.CollectionsCache,
) ICollectionsService {
	return &collectionsService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		cache:      cache,
	}
}

func (s *collectionsService) Monthly(ctx context.Context, employeeId uuid.UUID) (*dto.MonthlyCollectionsResponse, error) {
	if report, found := s.cache.Get(employeeId); found {
		return report, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := s.aggregator.MonthlyForEmployee(ctx, uow, employeeId, time.Now())
	if err != nil {
		return nil, err
	}

	s.cache.Save(employeeId, report)
	return report, nil
}

// InvalidateFor drops the cached report after a payment lands so the
// next poll reflects it.
func (s *collectionsService) InvalidateFor(employeeId uuid.UUID) {
	s.cache.Invalidate(employeeId)
}
