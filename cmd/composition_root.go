package cmd

import (
	"log/slog"
	"net/http"

	apihttp "perfumery/internal/adapters/in/http"
	"perfumery/internal/adapters/out/local"
	"perfumery/internal/adapters/out/pacing"
	"perfumery/internal/adapters/out/postgres"
	"perfumery/internal/adapters/out/remote"
	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/ports"
	"perfumery/internal/jobs"
	"perfumery/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg           Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	productionLog ports.ProductionLog
	audit         ports.AuditSink
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	productionLog ports.ProductionLog,
	auditSink ports.AuditSink,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		cfg:           cfg,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		productionLog: productionLog,
		audit:         auditSink,
		metrics:       m,
		logger:        logger,
	}
}

func (c *CompositionRoot) plantUoWFactory() commands.PlantUoWFactory {
	return FuncPlantUoWFactory(func() commands.PlantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) processingUoWFactory() commands.ProcessingUoWFactory {
	return FuncProcessingUoWFactory(func() commands.ProcessingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storagePackageUoWFactory() commands.StoragePackageUoWFactory {
	return FuncStoragePackageUoWFactory(func() commands.StoragePackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) saleOrderUoWFactory() commands.SaleOrderUoWFactory {
	return FuncSaleOrderUoWFactory(func() commands.SaleOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) replantTaskUoWFactory() commands.ReplantTaskUoWFactory {
	return FuncReplantTaskUoWFactory(func() commands.ReplantTaskUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateProductionJournal() commands.ProductionJournal {
	return commands.NewProductionJournal(c.productionLog, c.audit, c.logger)
}

// Plant lifecycle

func (c *CompositionRoot) CreatePlantNewCommandHandler() commands.PlantNewCommandHandler {
	return commands.NewPlantNewCommandHandler(c.plantUoWFactory(), c.CreateProductionJournal())
}

func (c *CompositionRoot) CreateAdjustStrengthCommandHandler() commands.AdjustStrengthCommandHandler {
	return commands.NewAdjustStrengthCommandHandler(c.plantUoWFactory(), c.CreateProductionJournal())
}

func (c *CompositionRoot) CreateHarvestPlantsCommandHandler() commands.HarvestPlantsCommandHandler {
	return commands.NewHarvestPlantsCommandHandler(c.plantUoWFactory(), c.CreateProductionJournal())
}

func (c *CompositionRoot) CreateMarkPlantsUsedCommandHandler() commands.MarkPlantsUsedCommandHandler {
	return commands.NewMarkPlantsUsedCommandHandler(c.plantUoWFactory(), c.CreateProductionJournal())
}

func (c *CompositionRoot) CreatePlantAndScaleCommandHandler() commands.PlantAndScaleCommandHandler {
	return commands.NewPlantAndScaleCommandHandler(c.plantUoWFactory(), c.CreateProductionJournal())
}

// Processing

func (c *CompositionRoot) CreateProcessPerfumeCommandHandler() commands.ProcessPerfumeCommandHandler {
	return commands.NewProcessPerfumeCommandHandler(c.processingUoWFactory(), c.PlantSupplier(), c.audit, c.logger)
}

func (c *CompositionRoot) CreateReservePerfumesCommandHandler() commands.ReservePerfumesCommandHandler {
	return commands.NewReservePerfumesCommandHandler(c.processingUoWFactory())
}

// Storage

func (c *CompositionRoot) CreateStorePackageCommandHandler() commands.StorePackageCommandHandler {
	return commands.NewStorePackageCommandHandler(c.storagePackageUoWFactory())
}

func (c *CompositionRoot) CreatePackPerfumesCommandHandler() commands.PackPerfumesCommandHandler {
	return commands.NewPackPerfumesCommandHandler(c.storagePackageUoWFactory(), c.PerfumeReserver())
}

func (c *CompositionRoot) CreateSendPackagesCommandHandler() commands.SendPackagesCommandHandler {
	return commands.NewSendPackagesCommandHandler(c.storagePackageUoWFactory(), pacing.NewTimerPacer(), c.logger)
}

// Sales

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.saleOrderUoWFactory(), c.PackageSender())
}

// Replant queue

func (c *CompositionRoot) CreateDrainReplantTasksCommandHandler() commands.DrainReplantTasksCommandHandler {
	return commands.NewDrainReplantTasksCommandHandler(c.replantTaskUoWFactory(), c.PlantSupplier(), c.logger)
}

// Queries

func (c *CompositionRoot) CreateGetAvailablePlantsQueryHandler() queries.GetAvailablePlantsQueryHandler {
	return queries.NewGetAvailablePlantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionLogsQueryHandler() queries.GetProductionLogsQueryHandler {
	return queries.NewGetProductionLogsQueryHandler(c.productionLog)
}

func (c *CompositionRoot) CreateListAvailablePerfumesQueryHandler() queries.ListAvailablePerfumesQueryHandler {
	return queries.NewListAvailablePerfumesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPerfumeQueryHandler() queries.GetPerfumeQueryHandler {
	return queries.NewGetPerfumeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailablePackagesQueryHandler() queries.ListAvailablePackagesQueryHandler {
	return queries.NewListAvailablePackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// Collaborators. A configured base URL selects the remote adapter,
// otherwise the component runs in this process.

func (c *CompositionRoot) remoteClient(baseURL string) *remote.Client {
	return remote.NewClient(baseURL, c.cfg.GatewaySecret, http.DefaultClient)
}

func (c *CompositionRoot) PlantSupplier() ports.PlantSupplier {
	if c.cfg.ProductionURL != "" {
		return remote.NewPlantSupplier(c.remoteClient(c.cfg.ProductionURL))
	}

	markUsed := c.CreateMarkPlantsUsedCommandHandler()
	plantAndScale := c.CreatePlantAndScaleCommandHandler()
	return local.NewPlantSupplier(c.CreateGetAvailablePlantsQueryHandler(), &markUsed, &plantAndScale)
}

func (c *CompositionRoot) PerfumeReserver() ports.PerfumeReserver {
	if c.cfg.ProcessingURL != "" {
		return remote.NewPerfumeReserver(c.remoteClient(c.cfg.ProcessingURL))
	}

	reserve := c.CreateReservePerfumesCommandHandler()
	return local.NewPerfumeReserver(&reserve)
}

func (c *CompositionRoot) PackageSender() ports.PackageSender {
	if c.cfg.StorageURL != "" {
		return remote.NewPackageSender(c.remoteClient(c.cfg.StorageURL))
	}

	send := c.CreateSendPackagesCommandHandler()
	return local.NewPackageSender(&send)
}

// Entry points

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	plantNew := c.CreatePlantNewCommandHandler()
	adjustStrength := c.CreateAdjustStrengthCommandHandler()
	harvest := c.CreateHarvestPlantsCommandHandler()
	markUsed := c.CreateMarkPlantsUsedCommandHandler()
	plantAndScale := c.CreatePlantAndScaleCommandHandler()
	process := c.CreateProcessPerfumeCommandHandler()
	reserve := c.CreateReservePerfumesCommandHandler()
	store := c.CreateStorePackageCommandHandler()
	pack := c.CreatePackPerfumesCommandHandler()
	send := c.CreateSendPackagesCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()

	return apihttp.NewServer(apihttp.Handlers{
		PlantNew:        &plantNew,
		AdjustStrength:  &adjustStrength,
		HarvestPlants:   &harvest,
		MarkPlantsUsed:  &markUsed,
		PlantAndScale:   &plantAndScale,
		ProcessPerfume:  &process,
		ReservePerfumes: &reserve,
		StorePackage:    &store,
		PackPerfumes:    &pack,
		SendPackages:    &send,
		CreateOrder:     &createOrder,

		GetAvailablePlants:    c.CreateGetAvailablePlantsQueryHandler(),
		GetProductionLogs:     c.CreateGetProductionLogsQueryHandler(),
		ListAvailablePerfumes: c.CreateListAvailablePerfumesQueryHandler(),
		GetPerfume:            c.CreateGetPerfumeQueryHandler(),
		ListAvailablePackages: c.CreateListAvailablePackagesQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	drain := c.CreateDrainReplantTasksCommandHandler()
	return jobs.NewJobManager(
		jobs.NewReplantJob(&drain, c.metrics, c.cfg.ReplantSchedule, jobs.DefaultReplantBatchSize, c.logger),
	)
}

type FuncPlantUoWFactory func() commands.PlantUoW

func (f FuncPlantUoWFactory) Create() commands.PlantUoW {
	return f()
}

type FuncProcessingUoWFactory func() commands.ProcessingUoW

func (f FuncProcessingUoWFactory) Create() commands.ProcessingUoW {
	return f()
}

type FuncStoragePackageUoWFactory func() commands.StoragePackageUoW

func (f FuncStoragePackageUoWFactory) Create() commands.StoragePackageUoW {
	return f()
}

type FuncSaleOrderUoWFactory func() commands.SaleOrderUoW

func (f FuncSaleOrderUoWFactory) Create() commands.SaleOrderUoW {
	return f()
}

type FuncReplantTaskUoWFactory func() commands.ReplantTaskUoW

func (f FuncReplantTaskUoWFactory) Create() commands.ReplantTaskUoW {
	return f()
}
