package services

import (
	"time"

	"perfumery/internal/core/domain/model/kernel"
)

const (
	DistributiveBatchSize = 3
	DistributiveItemDelay = 500 * time.Millisecond

	WarehouseBatchSize = 1
	WarehouseItemDelay = 2500 * time.Millisecond
)

// DistributionCenter is the throughput profile used to send packages.
//
// Key responsibilities:
//   - deciding how many packages are claimed together
//   - defining the fixed handling delay of every package
//
// Both centers send the oldest packed packages first and stop early when the
// pool runs dry; the shortfall is reported to the caller, never treated as an
// error here.
//
// Example usage:
//
//	center := services.CenterForRole(caller.Role)
//	for remaining := count; remaining > 0; {
//	    batch := center.NextBatch(remaining)
//	    // claim batch packages, pause center.ItemDelay() per package, mark sent
//	}
type DistributionCenter interface {
	// Name identifies the channel in logs and metrics.
	Name() string

	// ItemDelay is the handling time of a single package.
	ItemDelay() time.Duration

	// NextBatch returns how many packages to claim when remaining are still
	// needed. It is 0 only when remaining is not positive.
	NextBatch(remaining int) int
}

type batchCenter struct {
	name      string
	batchSize int
	itemDelay time.Duration
}

// NewDistributiveCenter returns the privileged channel: batches of 3, 0.5 s per package.
func NewDistributiveCenter() DistributionCenter {
	return batchCenter{name: "distributive", batchSize: DistributiveBatchSize, itemDelay: DistributiveItemDelay}
}

// NewWarehouseCenter returns the standard channel: one package at a time, 2.5 s each.
func NewWarehouseCenter() DistributionCenter {
	return batchCenter{name: "warehouse", batchSize: WarehouseBatchSize, itemDelay: WarehouseItemDelay}
}

// CenterForRole routes sales managers to the distributive center and every
// other caller to the warehouse.
func CenterForRole(role kernel.Role) DistributionCenter {
	if role == kernel.RoleSalesManager {
		return NewDistributiveCenter()
	}
	return NewWarehouseCenter()
}

func (c batchCenter) Name() string {
	return c.name
}

func (c batchCenter) ItemDelay() time.Duration {
	return c.itemDelay
}

func (c batchCenter) NextBatch(remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return min(c.batchSize, remaining)
}
