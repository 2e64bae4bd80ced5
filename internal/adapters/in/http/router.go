package http

import (
	"context"
	"log/slog"
	"net/http"

	"perfumery/api"
	"perfumery/docs"
	"perfumery/internal/generated/servers"
	"perfumery/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	// GatewaySecret, when set, must be presented in x-gateway-key.
	GatewaySecret string
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
}

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// NewRouter builds the echo instance serving the API, /health, /metrics
// and the swagger UI.
func NewRouter(ctx context.Context, server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.Recover(),
		requestLogger(cfg.Logger),
		observeRequests(cfg.Metrics),
		trustHeaders(cfg.GatewaySecret),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	servers.RegisterHandlers(e, server)

	return e, nil
}
