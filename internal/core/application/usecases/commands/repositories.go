// Package commands contains the write operations of the pipeline.
// Every command is built by a validating constructor and executed by a
// handler that owns its transaction boundary.
package commands

import (
	"context"

	"perfumery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PlantRepoFactory interface {
		PlantRepository() ports.PlantRepository
	}

	PerfumeRepoFactory interface {
		PerfumeRepository() ports.PerfumeRepository
	}

	StoragePackageRepoFactory interface {
		StoragePackageRepository() ports.StoragePackageRepository
	}

	SaleOrderRepoFactory interface {
		SaleOrderRepository() ports.SaleOrderRepository
	}

	ReplantTaskRepoFactory interface {
		ReplantTaskRepository() ports.ReplantTaskRepository
	}

	// PlantUoW scopes plant lifecycle operations.
	PlantUoW interface {
		TxManager
		PlantRepoFactory
	}

	PlantUoWFactory interface {
		Create() PlantUoW
	}

	// ProcessingUoW writes bottles and the replant tasks of the same batch
	// in one transaction.
	ProcessingUoW interface {
		TxManager
		PerfumeRepoFactory
		ReplantTaskRepoFactory
	}

	ProcessingUoWFactory interface {
		Create() ProcessingUoW
	}

	StoragePackageUoW interface {
		TxManager
		StoragePackageRepoFactory
	}

	StoragePackageUoWFactory interface {
		Create() StoragePackageUoW
	}

	SaleOrderUoW interface {
		TxManager
		SaleOrderRepoFactory
	}

	SaleOrderUoWFactory interface {
		Create() SaleOrderUoW
	}

	ReplantTaskUoW interface {
		TxManager
		ReplantTaskRepoFactory
	}

	ReplantTaskUoWFactory interface {
		Create() ReplantTaskUoW
	}
)
