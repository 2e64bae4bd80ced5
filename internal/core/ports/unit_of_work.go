package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repository operations to one database transaction.
// Repositories obtained before Begin operate outside of it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	PlantRepository() PlantRepository

	PerfumeRepository() PerfumeRepository

	StoragePackageRepository() StoragePackageRepository

	SaleOrderRepository() SaleOrderRepository

	ReplantTaskRepository() ReplantTaskRepository
}
