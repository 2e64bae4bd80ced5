package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	apihttp "perfumery/internal/adapters/in/http"
	"perfumery/internal/adapters/out/audit"
	"perfumery/internal/adapters/out/postgres"
	"perfumery/internal/adapters/out/productionlog"
	"perfumery/internal/core/ports"
	"perfumery/internal/jobs"
	"perfumery/internal/pkg/logger"
	"perfumery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Module wires storage, adapters, use cases, the HTTP router and the
// replant job around cfg.
func Module(cfg Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			metrics.New,
			newGormDB,
			newProductionLog,
			newAuditSink,
			newCompositionRoot,
			newRouter,
			newJobManager,
		),
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: l.With("component", "fx")}
		}),
		fx.Invoke(registerLifecycle),
	)
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(cfg.LogLevel)
}

func newGormDB(lc fx.Lifecycle, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.AutoMigrate(postgres.Models()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func newProductionLog(ctx context.Context, lc fx.Lifecycle, cfg Config, logger *slog.Logger) (ports.ProductionLog, error) {
	store, err := productionlog.New(ctx, cfg.DSN(), logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Close()
			return nil
		},
	})
	return store, nil
}

// newAuditSink publishes to NATS when NATS_URL is set and falls back to the
// process log otherwise. Every event is counted on the way through.
func newAuditSink(lc fx.Lifecycle, cfg Config, m *metrics.Metrics, logger *slog.Logger) (ports.AuditSink, error) {
	if cfg.NATSURL == "" {
		return audit.NewCountingSink(audit.NewLogSink(logger), m), nil
	}

	sink, conn, err := audit.ConnectNATS(cfg.NATSURL, cfg.AuditSubjectPrefix, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return conn.Drain()
		},
	})
	return audit.NewCountingSink(sink, m), nil
}

type rootParams struct {
	fx.In

	Config        Config
	DB            *gorm.DB
	ProductionLog ports.ProductionLog
	Audit         ports.AuditSink
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
}

func newCompositionRoot(p rootParams) *CompositionRoot {
	return NewCompositionRoot(p.Config, p.DB, p.ProductionLog, p.Audit, p.Metrics, p.Logger)
}

type routerParams struct {
	fx.In

	Ctx     context.Context
	Config  Config
	Root    *CompositionRoot
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newRouter(p routerParams) (*echo.Echo, error) {
	return apihttp.NewRouter(p.Ctx, p.Root.CreateServer(), apihttp.RouterConfig{
		GatewaySecret: p.Config.GatewaySecret,
		Logger:        p.Logger,
		Metrics:       p.Metrics,
	})
}

func newJobManager(root *CompositionRoot) *jobs.JobManager {
	return root.CreateJobManager()
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     Config
	Logger     *slog.Logger
	Echo       *echo.Echo
	Jobs       *jobs.JobManager
}

func registerLifecycle(p lifecycleParams) {
	addr := fmt.Sprintf("0.0.0.0:%s", p.Config.HTTPPort)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Jobs.StartAll(); err != nil {
				return err
			}

			p.Logger.InfoContext(ctx, "starting perfumery", "addr", addr)
			go func() {
				if err := p.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", "error", err)
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, shutdownTimeout)
			}
			defer cancel()

			err := p.Echo.Shutdown(shutdownCtx)
			p.Jobs.StopAll(shutdownCtx)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			p.Logger.Info("perfumery stopped")
			return nil
		},
	})
}
