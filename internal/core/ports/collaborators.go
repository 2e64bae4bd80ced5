package ports

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/services"
)

// PlantSupplier is the plant lifecycle manager as seen by processing.
type PlantSupplier interface {
	// AvailablePlants returns up to count Planted plants without changing them.
	AvailablePlants(ctx context.Context, count int) ([]services.SourcePlant, error)

	// MarkUsed forces the given plants to Processed. Unknown ids are skipped.
	MarkUsed(ctx context.Context, ids []int64) error

	// PlantAndScale replants a specimen of the given strength and returns
	// the new plant id.
	PlantAndScale(ctx context.Context, sourceStrength kernel.Strength) (int64, error)
}

// PerfumeReserver is the processing pipeline as seen by storage.
type PerfumeReserver interface {
	// Reserve claims exactly count Available bottles named name, or none.
	Reserve(ctx context.Context, name string, count int) ([]int64, error)
}

// PackageSender is the distribution engine as seen by order fulfillment.
type PackageSender interface {
	// SendPackages sends up to count packages through the channel of role
	// and returns the ids of the packages sent.
	SendPackages(ctx context.Context, count int, role kernel.Role) ([]int64, error)
}

// Pacer imposes the per-package handling delay of a distribution center.
type Pacer interface {
	// Pause blocks for d or until ctx is done.
	Pause(ctx context.Context, d time.Duration) error
}
