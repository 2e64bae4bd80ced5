package commands

import (
	"errors"
	"strings"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateOrderCommand requests a sale of count packages on behalf of caller.
// The caller role selects the distribution center.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName    string
	deliveryAddress string
	count           int
	caller          kernel.Caller

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(customerName, deliveryAddress string, count int, caller kernel.Caller) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setCount(count),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Count() int {
	return c.count
}

func (c CreateOrderCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}
	c.count = count
	return nil
}
