// Package ports defines the contracts between the pipeline core and its
// infrastructure: repositories, the unit of work, and the collaborators
// reached across component boundaries.
package ports

import (
	"context"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/model/replant"
	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/domain/model/storagepackage"
)

// PlantRepository persists plant aggregates.
type PlantRepository interface {
	// Add stores a new plant and assigns its id.
	Add(ctx context.Context, aggregate *plant.Plant) error

	Update(ctx context.Context, aggregate *plant.Plant) error

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id int64) (*plant.Plant, error)

	// GetByIDs returns the plants that exist among ids, in id order.
	GetByIDs(ctx context.Context, ids []int64) ([]*plant.Plant, error)

	// ClaimPlanted locks up to limit Planted plants with the given common
	// name, in arrival order, skipping rows locked by concurrent claims.
	// Must run inside a transaction.
	ClaimPlanted(ctx context.Context, commonName string, limit int) ([]*plant.Plant, error)
}

// PerfumeRepository persists bottles.
type PerfumeRepository interface {
	// Add stores a new bottle, assigns its id and issues its serial.
	Add(ctx context.Context, aggregate *perfume.Perfume) error

	Update(ctx context.Context, aggregate *perfume.Perfume) error

	Get(ctx context.Context, id int64) (*perfume.Perfume, error)

	// ClaimAvailable locks up to limit Available bottles with the given name
	// in creation order, skipping rows locked by concurrent claims.
	ClaimAvailable(ctx context.Context, name string, limit int) ([]*perfume.Perfume, error)
}

// StoragePackageRepository persists storage packages.
type StoragePackageRepository interface {
	// Add stores a new package, assigns its id and issues its serial.
	Add(ctx context.Context, aggregate *storagepackage.StoragePackage) error

	Update(ctx context.Context, aggregate *storagepackage.StoragePackage) error

	Get(ctx context.Context, id int64) (*storagepackage.StoragePackage, error)

	// ClaimPacked locks up to limit Packed packages, oldest first, skipping
	// rows locked by concurrent claims.
	ClaimPacked(ctx context.Context, limit int) ([]*storagepackage.StoragePackage, error)
}

// SaleOrderRepository persists shipped orders.
type SaleOrderRepository interface {
	// Add stores a new order, assigns its id and issues its serial.
	Add(ctx context.Context, aggregate *saleorder.SaleOrder) error

	Get(ctx context.Context, id int64) (*saleorder.SaleOrder, error)
}

// ReplantTaskRepository persists the replant queue.
type ReplantTaskRepository interface {
	Add(ctx context.Context, aggregate *replant.Task) error

	Update(ctx context.Context, aggregate *replant.Task) error

	// ClaimPending locks up to limit Pending tasks, oldest first.
	ClaimPending(ctx context.Context, limit int) ([]*replant.Task, error)
}
