package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/generated/servers"
	"perfumery/internal/pkg/errs"
	"perfumery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. The command handlers satisfy
// them through pointer receivers, the query handlers by value.
type (
	PlantNewHandler interface {
		Handle(ctx context.Context, cmd commands.PlantNewCommand) (*plant.Plant, error)
	}
	AdjustStrengthHandler interface {
		Handle(ctx context.Context, cmd commands.AdjustStrengthCommand) (*plant.Plant, error)
	}
	HarvestPlantsHandler interface {
		Handle(ctx context.Context, cmd commands.HarvestPlantsCommand) ([]*plant.Plant, error)
	}
	MarkPlantsUsedHandler interface {
		Handle(ctx context.Context, cmd commands.MarkPlantsUsedCommand) (int, error)
	}
	PlantAndScaleHandler interface {
		Handle(ctx context.Context, cmd commands.PlantAndScaleCommand) (*plant.Plant, error)
	}
	ProcessPerfumeHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessPerfumeCommand) ([]*perfume.Perfume, error)
	}
	ReservePerfumesHandler interface {
		Handle(ctx context.Context, cmd commands.ReservePerfumesCommand) ([]*perfume.Perfume, error)
	}
	StorePackageHandler interface {
		Handle(ctx context.Context, cmd commands.StorePackageCommand) (*storagepackage.StoragePackage, error)
	}
	PackPerfumesHandler interface {
		Handle(ctx context.Context, cmd commands.PackPerfumesCommand) ([]*storagepackage.StoragePackage, error)
	}
	SendPackagesHandler interface {
		Handle(ctx context.Context, cmd commands.SendPackagesCommand) ([]*storagepackage.StoragePackage, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*saleorder.SaleOrder, error)
	}

	GetAvailablePlantsHandler interface {
		Handle(ctx context.Context, query queries.GetAvailablePlantsQuery) ([]queries.PlantResponse, error)
	}
	GetProductionLogsHandler interface {
		Handle(ctx context.Context, query queries.GetProductionLogsQuery) ([]journal.Entry, error)
	}
	ListAvailablePerfumesHandler interface {
		Handle(ctx context.Context, query queries.ListAvailablePerfumesQuery) ([]queries.PerfumeResponse, error)
	}
	GetPerfumeHandler interface {
		Handle(ctx context.Context, query queries.GetPerfumeQuery) (queries.PerfumeResponse, error)
	}
	ListAvailablePackagesHandler interface {
		Handle(ctx context.Context, query queries.ListAvailablePackagesQuery) ([]queries.PackageResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlantNew        PlantNewHandler
	AdjustStrength  AdjustStrengthHandler
	HarvestPlants   HarvestPlantsHandler
	MarkPlantsUsed  MarkPlantsUsedHandler
	PlantAndScale   PlantAndScaleHandler
	ProcessPerfume  ProcessPerfumeHandler
	ReservePerfumes ReservePerfumesHandler
	StorePackage    StorePackageHandler
	PackPerfumes    PackPerfumesHandler
	SendPackages    SendPackagesHandler
	CreateOrder     CreateOrderHandler

	GetAvailablePlants    GetAvailablePlantsHandler
	GetProductionLogs     GetProductionLogsHandler
	ListAvailablePerfumes ListAvailablePerfumesHandler
	GetPerfume            GetPerfumeHandler
	ListAvailablePackages ListAvailablePackagesHandler
	ListOrders            ListOrdersHandler
	GetOrder              GetOrderHandler
}

// Server implements servers.ServerInterface on top of the pipeline use
// cases. It maps transport DTOs to commands and queries, domain errors to
// status codes and records pipeline metrics for successful commands.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a use case error to its status code:
//   - errs.ErrObjectNotFound    -> 404
//   - errs.ErrInsufficientStock -> 409
//   - invalid, out of range or missing values -> 400
//   - anything else -> 500 without details
func (s *Server) fail(ctx echo.Context, err error, operation string) error {
	code := http.StatusInternalServerError
	message := "Failed to " + operation

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInsufficientStock):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
		message = err.Error()
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"operation", operation, "error", err)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}
