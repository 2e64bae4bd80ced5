package queries

import (
	"errors"
	"time"

	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists every recorded sale order, most recent first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model of a sale order.
type OrderResponse struct {
	ID              int64
	CustomerName    string
	DeliveryAddress string
	Requested       int
	PackageIDs      []int64
	Serial          string
	Status          saleorder.Status
	CreatedBy       string
	CreatedAt       time.Time
}
