package http

import (
	"net/http"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/sales/orders. The order is attributed
// to the caller and its packages go through the caller's channel.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerName, body.DeliveryAddress, body.Count, callerFrom(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	order, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "create order")
	}

	s.metrics.OrderCreated()
	return ctx.JSON(http.StatusCreated, toOrder(order))
}

// ListOrders handles GET /api/v1/sales/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/sales/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	order, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderResponse(order))
}
