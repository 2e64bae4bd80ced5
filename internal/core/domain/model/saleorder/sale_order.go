package saleorder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/errs"
)

var (
	// ErrSaleOrderIsNotConstructed is returned when a SaleOrder was not created
	// through NewSaleOrder or RestoreSaleOrder.
	ErrSaleOrderIsNotConstructed = errors.New("SaleOrder must be created via NewSaleOrder constructor")
)

// SaleOrder is a customer's request for a number of packages. It is the
// aggregate root of order fulfillment.
//
// SaleOrder follows these invariants:
//   - customer name and delivery address are not empty
//   - packages requested is positive
//   - a Shipped order holds exactly the requested number of package ids
//   - the serial number is issued only after the row exists
//
// Example:
//
//	order, err := saleorder.NewSaleOrder("Ann", "5 Baker St", 3, caller.UserID, time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := order.Ship(sentPackageIDs); err != nil {
//	    // fewer packages than requested
//	}
type SaleOrder struct {
	// id is assigned by storage
	id int64

	customerName    string
	deliveryAddress string

	// requested is the number of packages asked for
	requested int

	// packageIDs are the packages actually obtained
	packageIDs []int64

	serial    string
	status    Status
	createdBy string
	createdAt time.Time

	isConstructed bool
}

// NewSaleOrder creates an order in Created status.
//
// Parameters:
//   - customerName: who receives the packages
//   - deliveryAddress: where they go
//   - requested: how many packages (must be positive)
//   - createdBy: gateway user id of the seller, may be empty
//   - createdAt: creation instant, also the serial year
func NewSaleOrder(customerName, deliveryAddress string, requested int, createdBy string, createdAt time.Time) (*SaleOrder, error) {
	order := &SaleOrder{
		status:        Created,
		createdBy:     createdBy,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setRequested(requested),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreSaleOrder rebuilds a persisted order.
func RestoreSaleOrder(
	id int64,
	customerName, deliveryAddress string,
	requested int,
	packageIDs []int64,
	serial string,
	status Status,
	createdBy string,
	createdAt time.Time,
) (*SaleOrder, error) {
	order := &SaleOrder{
		id:            id,
		packageIDs:    slices.Clone(packageIDs),
		serial:        serial,
		createdBy:     createdBy,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setRequested(requested),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was built through a constructor.
func (o *SaleOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrSaleOrderIsNotConstructed
	}
	return nil
}

func (o *SaleOrder) ID() int64 {
	return o.id
}

func (o *SaleOrder) CustomerName() string {
	return o.customerName
}

func (o *SaleOrder) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *SaleOrder) Requested() int {
	return o.requested
}

// PackageIDs returns a copy of the obtained package ids.
func (o *SaleOrder) PackageIDs() []int64 {
	return slices.Clone(o.packageIDs)
}

func (o *SaleOrder) Serial() string {
	return o.serial
}

func (o *SaleOrder) Status() Status {
	return o.status
}

func (o *SaleOrder) CreatedBy() string {
	return o.createdBy
}

func (o *SaleOrder) CreatedAt() time.Time {
	return o.createdAt
}

// Ship records the obtained packages and moves the order to Shipped.
//
// Partial fulfillment is rejected: fewer ids than requested yields an
// errs.InsufficientStockError and leaves the order untouched.
func (o *SaleOrder) Ship(packageIDs []int64) error {
	if len(packageIDs) < o.requested {
		return errs.NewInsufficientStockError("package", o.requested, len(packageIDs))
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.packageIDs = slices.Clone(packageIDs[:o.requested])
	return nil
}

// AssignID records the storage identity and issues the ORD serial.
func (o *SaleOrder) AssignID(id int64) error {
	if o.id != 0 && o.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("order already has id %d", o.id))
	}
	serial, err := kernel.NewSerial(kernel.OrderSerialPrefix, o.createdAt, id)
	if err != nil {
		return err
	}
	o.id = id
	o.serial = serial
	return nil
}

func (o *SaleOrder) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *SaleOrder) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *SaleOrder) setRequested(requested int) error {
	if requested <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packages requested is invalid", fmt.Errorf("%d is not greater than 0", requested))
	}
	o.requested = requested
	return nil
}

func (o *SaleOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *SaleOrder) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = at
	return nil
}
