package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. Each workflow request
// gets its own so transactions never leak between requests.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
