package memory

import (
	"time"

	"fleetrent-be/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CollectionsCache keeps recently computed collections reports so the
// dashboard does not recompute them on every poll.
type CollectionsCache struct {
	cache *cache.Cache
}

func NewCollectionsCache() *CollectionsCache {
	// Reports stay fresh for 5 minutes; expired entries purged every 10.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &CollectionsCache{
		cache: c,
	}
}

func (r *CollectionsCache) Save(employeeID uuid.UUID, report *dto.MonthlyCollectionsResponse) {
	r.cache.Set(employeeID.String(), report, cache.DefaultExpiration)
}

func (r *CollectionsCache) Get(employeeID uuid.UUID) (*dto.MonthlyCollectionsResponse, bool) {
	if x, found := r.cache.Get(employeeID.String()); found {
		return x.(*dto.MonthlyCollectionsResponse), true
	}
	return nil, false
}

func (r *CollectionsCache) Invalidate(employeeID uuid.UUID) {
	r.cache.Delete(employeeID.String())
}
