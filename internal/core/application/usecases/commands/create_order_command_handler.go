package commands

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/ports"
)

// CreateOrderCommandHandler sends packages first and records the order only
// when enough were sent. Packages sent for a rejected order stay Sent.
type CreateOrderCommandHandler struct {
	uowFactory SaleOrderUoWFactory
	sender     ports.PackageSender
}

func NewCreateOrderCommandHandler(uowFactory SaleOrderUoWFactory, sender ports.PackageSender) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*saleorder.SaleOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	caller := cmd.Caller()
	order, err := saleorder.NewSaleOrder(
		cmd.CustomerName(), cmd.DeliveryAddress(), cmd.Count(), caller.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	packageIDs, err := h.sender.SendPackages(ctx, cmd.Count(), caller.Role)
	if err != nil {
		return nil, err
	}

	if err = order.Ship(packageIDs); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SaleOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
