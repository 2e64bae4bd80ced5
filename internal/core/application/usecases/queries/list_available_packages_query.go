package queries

import (
	"errors"
	"time"

	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/pkg/guard"
)

var ErrListAvailablePackagesQueryIsNotConstructed = errors.New(
	"ListAvailablePackagesQuery must be created via NewListAvailablePackagesQuery constructor",
)

// ListAvailablePackagesQuery lists Packed packages, oldest first. This is
// the order the distribution engine sends them in.
type ListAvailablePackagesQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailablePackagesQuery() ListAvailablePackagesQuery {
	return ListAvailablePackagesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAvailablePackagesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailablePackagesQueryIsNotConstructed)
}

type PackageResponse struct {
	ID            int64
	Name          string
	SenderAddress string
	WarehouseID   int64
	PerfumeID     *int64
	Status        storagepackage.Status
	Serial        string
	CreatedAt     time.Time
}
