package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apihttp "perfumery/internal/adapters/in/http"
	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/generated/servers"
	"perfumery/internal/pkg/errs"
	"perfumery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handle adapts a function to any of the server's handler contracts.
type handle[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handle[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

var createdAt = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

func newRouter(t *testing.T, handlers apihttp.Handlers, secret string) (*echo.Echo, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	server := apihttp.NewServer(handlers, m, logger)

	e, err := apihttp.NewRouter(t.Context(), server, apihttp.RouterConfig{
		GatewaySecret: secret,
		Logger:        logger,
		Metrics:       m,
	})
	require.NoError(t, err)
	return e, m
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func plantedRose(t *testing.T, id int64, strength string) *plant.Plant {
	t.Helper()
	s, err := kernel.NewStrength(decimal.RequireFromString(strength))
	require.NoError(t, err)
	p, err := plant.NewPlant(plant.Seed{CommonName: "Rose", LatinName: "Rosa damascena", Country: "Bulgaria", Strength: &s}, createdAt)
	require.NoError(t, err)
	require.NoError(t, p.AssignID(id))
	return p
}

func packedPackage(t *testing.T, id int64) *storagepackage.StoragePackage {
	t.Helper()
	p, err := storagepackage.NewStoragePackage("Rose No. 5", "1 Perfume St", 3, nil, createdAt)
	require.NoError(t, err)
	require.NoError(t, p.AssignID(id))
	return p
}

func TestHealth(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{}, "")

	rec := do(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestPlantNew_Created(t *testing.T) {
	var received commands.PlantNewCommand
	e, m := newRouter(t, apihttp.Handlers{
		PlantNew: handle[commands.PlantNewCommand, *plant.Plant](
			func(_ context.Context, cmd commands.PlantNewCommand) (*plant.Plant, error) {
				received = cmd
				return plantedRose(t, 7, "3.50"), nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/production/plants",
		`{"commonName":"Rose","latinName":"Rosa damascena","country":"Bulgaria","strength":3.5}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[servers.Plant](t, rec)
	assert.Equal(t, int64(7), body.Id)
	assert.Equal(t, servers.PLANTED, body.Status)
	assert.InDelta(t, 3.5, body.Strength, 0.0001)
	assert.Equal(t, "Rose", received.Seed().CommonName)
	require.NotNil(t, received.Seed().Strength)
	assert.Equal(t, "3.50", received.Seed().Strength.String())

	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metricsRec.Body.String(), "perfumery_production_plants_planted_total 1")
}

func TestGetAvailablePlants_DefaultCount(t *testing.T) {
	var count int
	e, _ := newRouter(t, apihttp.Handlers{
		GetAvailablePlants: handle[queries.GetAvailablePlantsQuery, []queries.PlantResponse](
			func(_ context.Context, q queries.GetAvailablePlantsQuery) ([]queries.PlantResponse, error) {
				count = q.Count()
				return nil, nil
			}),
	}, "")

	rec := do(e, http.MethodGet, "/api/v1/production/plants", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, queries.DefaultAvailablePlantsCount, count)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetAvailablePlants_InvalidCountRejectedByDocument(t *testing.T) {
	called := false
	e, _ := newRouter(t, apihttp.Handlers{
		GetAvailablePlants: handle[queries.GetAvailablePlantsQuery, []queries.PlantResponse](
			func(context.Context, queries.GetAvailablePlantsQuery) ([]queries.PlantResponse, error) {
				called = true
				return nil, nil
			}),
	}, "")

	rec := do(e, http.MethodGet, "/api/v1/production/plants?count=0", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: errs.NewObjectNotFoundError("plant", int64(9)), want: http.StatusNotFound},
		{name: "insufficient stock", err: errs.NewInsufficientStockError("plant", 5, 0), want: http.StatusConflict},
		{name: "invalid value", err: errs.NewValueIsInvalidError("strength is invalid"), want: http.StatusBadRequest},
		{name: "out of range", err: errs.NewValueIsOutOfRangeError("volume", 10, 150, 250), want: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newRouter(t, apihttp.Handlers{
				AdjustStrength: handle[commands.AdjustStrengthCommand, *plant.Plant](
					func(context.Context, commands.AdjustStrengthCommand) (*plant.Plant, error) {
						return nil, tt.err
					}),
			}, "")

			rec := do(e, http.MethodPut, "/api/v1/production/plants/9/strength", `{"value":10,"mode":"inc"}`, nil)

			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.want, body.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "Failed to adjust strength", body.Message)
			}
		})
	}
}

func TestAdjustStrength_InvalidModeIsBadRequest(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{}, "")

	rec := do(e, http.MethodPut, "/api/v1/production/plants/9/strength", `{"value":10,"mode":"double"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestValidation(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{}, "")

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "wrong type", method: http.MethodPost, target: "/api/v1/sales/orders",
			body: `{"customerName":"Ann","deliveryAddress":"Main St 1","count":"two"}`},
		{name: "missing required field", method: http.MethodPut, target: "/api/v1/production/harvest",
			body: `{"commonName":"Rose"}`},
		{name: "non numeric path id", method: http.MethodGet, target: "/api/v1/processing/perfumes/abc"},
		{name: "negative log limit", method: http.MethodGet, target: "/api/v1/production/logs?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestProcessPerfume_ConstructorErrorIsBadRequest(t *testing.T) {
	called := false
	e, _ := newRouter(t, apihttp.Handlers{
		ProcessPerfume: handle[commands.ProcessPerfumeCommand, []*perfume.Perfume](
			func(context.Context, commands.ProcessPerfumeCommand) ([]*perfume.Perfume, error) {
				called = true
				return nil, nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/processing/perfumes",
		`{"name":"Rose No. 5","type":"eau","bottles":2,"volumePerBottleMl":200}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestProcessPerfume_Created(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{
		ProcessPerfume: handle[commands.ProcessPerfumeCommand, []*perfume.Perfume](
			func(_ context.Context, cmd commands.ProcessPerfumeCommand) ([]*perfume.Perfume, error) {
				bottle, err := perfume.NewPerfume(cmd.Name(), cmd.Kind(), 200, []int64{4, 7}, createdAt)
				require.NoError(t, err)
				require.NoError(t, bottle.AssignID(1))
				return []*perfume.Perfume{bottle}, nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/processing/perfumes",
		`{"name":"Rose No. 5","type":"cologne","bottles":1,"volumePerBottleMl":200}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[[]servers.Perfume](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, servers.COLOGNE, body[0].Type)
	assert.Equal(t, []int64{4, 7}, body[0].SourcePlantIds)
	assert.Equal(t, servers.AVAILABLE, body[0].Status)
}

func TestMarkPlantsUsed_NoContent(t *testing.T) {
	var ids []int64
	e, _ := newRouter(t, apihttp.Handlers{
		MarkPlantsUsed: handle[commands.MarkPlantsUsedCommand, int](
			func(_ context.Context, cmd commands.MarkPlantsUsedCommand) (int, error) {
				ids = cmd.IDs()
				return len(ids), nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/production/plants/used", `{"ids":[3,1,3]}`, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestGetProductionLogs(t *testing.T) {
	entry, err := journal.NewEntry(journal.LevelWarning, "Strength of Rose #5 is 4.40, above 4.00", createdAt)
	require.NoError(t, err)

	var limit int
	e, _ := newRouter(t, apihttp.Handlers{
		GetProductionLogs: handle[queries.GetProductionLogsQuery, []journal.Entry](
			func(_ context.Context, q queries.GetProductionLogsQuery) ([]journal.Entry, error) {
				limit = q.Limit()
				return []journal.Entry{entry}, nil
			}),
	}, "")

	rec := do(e, http.MethodGet, "/api/v1/production/logs?limit=10", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, limit)
	body := decode[[]servers.ProductionLog](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, servers.WARNING, body[0].Level)
	assert.Equal(t, "Strength of Rose #5 is 4.40, above 4.00", body[0].Message)
}

func TestGatewaySecret(t *testing.T) {
	handlers := apihttp.Handlers{
		ListOrders: handle[queries.ListOrdersQuery, []queries.OrderResponse](
			func(context.Context, queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
				return nil, nil
			}),
	}
	e, _ := newRouter(t, handlers, "s3cret")

	rec := do(e, http.MethodGet, "/api/v1/sales/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/sales/orders", "", map[string]string{apihttp.HeaderGatewayKey: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/sales/orders", "", map[string]string{apihttp.HeaderGatewayKey: "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendPackages_RoleSelectsCenter(t *testing.T) {
	var role kernel.Role
	e, m := newRouter(t, apihttp.Handlers{
		SendPackages: handle[commands.SendPackagesCommand, []*storagepackage.StoragePackage](
			func(_ context.Context, cmd commands.SendPackagesCommand) ([]*storagepackage.StoragePackage, error) {
				role = cmd.Role()
				return []*storagepackage.StoragePackage{
					packedPackage(t, 1), packedPackage(t, 2), packedPackage(t, 3),
				}, nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/storage/send", `{"count":3}`,
		map[string]string{apihttp.HeaderUserRole: "SALES_MANAGER"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, kernel.RoleSalesManager, role)
	assert.Equal(t, []int64{1, 2, 3}, decode[servers.IDList](t, rec).Ids)

	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metricsRec.Body.String(), `perfumery_storage_packages_sent_total{center="distributive"} 3`)
}

func TestSendPackages_NothingSentIsNotFound(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{
		SendPackages: handle[commands.SendPackagesCommand, []*storagepackage.StoragePackage](
			func(context.Context, commands.SendPackagesCommand) ([]*storagepackage.StoragePackage, error) {
				return nil, nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/storage/send", `{"count":2}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendPackages_InterruptedReturnsWhatWasSent(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{
		SendPackages: handle[commands.SendPackagesCommand, []*storagepackage.StoragePackage](
			func(context.Context, commands.SendPackagesCommand) ([]*storagepackage.StoragePackage, error) {
				return []*storagepackage.StoragePackage{packedPackage(t, 5)}, context.Canceled
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/storage/send", `{"count":2}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{5}, decode[servers.IDList](t, rec).Ids)
}

func TestCreateOrder_UsesCaller(t *testing.T) {
	var caller kernel.Caller
	e, _ := newRouter(t, apihttp.Handlers{
		CreateOrder: handle[commands.CreateOrderCommand, *saleorder.SaleOrder](
			func(_ context.Context, cmd commands.CreateOrderCommand) (*saleorder.SaleOrder, error) {
				caller = cmd.Caller()
				order, err := saleorder.NewSaleOrder(cmd.CustomerName(), cmd.DeliveryAddress(), cmd.Count(), cmd.Caller().UserID, createdAt)
				require.NoError(t, err)
				require.NoError(t, order.Ship([]int64{10, 11}))
				require.NoError(t, order.AssignID(4))
				return order, nil
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/sales/orders",
		`{"customerName":"Ann","deliveryAddress":"Main St 1","count":2}`,
		map[string]string{
			apihttp.HeaderUserID:   "u-1",
			apihttp.HeaderUserName: "Ann Seller",
			apihttp.HeaderUserRole: "seller",
		})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, kernel.Caller{UserID: "u-1", Name: "Ann Seller", Role: kernel.RoleSeller}, caller)

	body := decode[servers.Order](t, rec)
	assert.Equal(t, int64(4), body.Id)
	assert.Equal(t, servers.SHIPPED, body.Status)
	assert.Equal(t, []int64{10, 11}, body.PackageIds)
	assert.Equal(t, "u-1", body.CreatedBy)
}

func TestCreateOrder_ShortageIsConflict(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{
		CreateOrder: handle[commands.CreateOrderCommand, *saleorder.SaleOrder](
			func(context.Context, commands.CreateOrderCommand) (*saleorder.SaleOrder, error) {
				return nil, errs.NewInsufficientStockError("package", 5, 2)
			}),
	}, "")

	rec := do(e, http.MethodPost, "/api/v1/sales/orders",
		`{"customerName":"Ann","deliveryAddress":"Main St 1","count":5}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	e, _ := newRouter(t, apihttp.Handlers{
		GetOrder: handle[queries.GetOrderQuery, queries.OrderResponse](
			func(_ context.Context, q queries.GetOrderQuery) (queries.OrderResponse, error) {
				return queries.OrderResponse{}, errs.NewObjectNotFoundError("order", q.ID())
			}),
	}, "")

	rec := do(e, http.MethodGet, "/api/v1/sales/orders/42", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAvailablePackages_EmptyPerfumeIDOmitted(t *testing.T) {
	perfumeID := int64(8)
	e, _ := newRouter(t, apihttp.Handlers{
		ListAvailablePackages: handle[queries.ListAvailablePackagesQuery, []queries.PackageResponse](
			func(context.Context, queries.ListAvailablePackagesQuery) ([]queries.PackageResponse, error) {
				return []queries.PackageResponse{
					{ID: 1, Name: "A", SenderAddress: "x", WarehouseID: 1, Status: storagepackage.Packed, CreatedAt: createdAt},
					{ID: 2, Name: "B", SenderAddress: "y", WarehouseID: 1, PerfumeID: &perfumeID, Status: storagepackage.Packed, CreatedAt: createdAt},
				}, nil
			}),
	}, "")

	rec := do(e, http.MethodGet, "/api/v1/storage/packages", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 2)
	assert.NotContains(t, raw[0], "perfumeId")
	assert.InDelta(t, 8, raw[1]["perfumeId"], 0)
	assert.Equal(t, "PACKED", raw[1]["status"])
}
