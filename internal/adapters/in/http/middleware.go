package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/generated/servers"
	"perfumery/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiPrefix = "/api/v1/"

	HeaderGatewayKey = "x-gateway-key"
	HeaderUserID     = "x-user-id"
	HeaderUserRole   = "x-user-role"
	HeaderUserName   = "x-user-name"

	callerKey = "caller"
)

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, apiPrefix)
}

// trustHeaders establishes the caller identity forwarded by the gateway.
// With a non-empty secret, API requests must carry it in x-gateway-key.
func trustHeaders(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isAPIRequest(c) {
				return next(c)
			}

			header := c.Request().Header
			if secret != "" &&
				subtle.ConstantTimeCompare([]byte(header.Get(HeaderGatewayKey)), []byte(secret)) != 1 {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid gateway key",
				})
			}

			c.Set(callerKey, kernel.NewCaller(
				header.Get(HeaderUserID),
				header.Get(HeaderUserName),
				header.Get(HeaderUserRole),
			))
			return next(c)
		}
	}
}

// callerFrom returns the caller set by trustHeaders, or an anonymous
// caller on the standard channel.
func callerFrom(c echo.Context) kernel.Caller {
	if caller, ok := c.Get(callerKey).(kernel.Caller); ok {
		return caller
	}
	return kernel.NewCaller("", "", "")
}

// validateRequests checks API requests against the OpenAPI document.
// Paths the document does not know fall through to echo's routing.
func validateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isAPIRequest(c) {
				return next(c)
			}

			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, err.Error())
			}
			return next(c)
		}
	}, nil
}

// observeRequests records the latency of every request by route pattern.
func observeRequests(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			m.ObserveRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return err
		}
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
