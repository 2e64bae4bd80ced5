// Package postgres implements the unit of work over GORM.
//
// A unit of work owns at most one transaction. Repositories handed out
// after Begin run inside it; repositories handed out before Begin, or after
// Commit and Rollback, use the plain connection.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	plants, err := uow.PlantRepository().ClaimPlanted(ctx, "Rose", 5)
//	...
//	return uow.Commit(ctx)
//
// Claims (ClaimPlanted, ClaimAvailable, ClaimPacked, ClaimPending) take row
// locks with SKIP LOCKED, so they only serialize anything inside Begin.
package postgres

import (
	"context"

	"perfumery/internal/adapters/out/postgres/packagerepo"
	"perfumery/internal/adapters/out/postgres/perfumerepo"
	"perfumery/internal/adapters/out/postgres/plantrepo"
	"perfumery/internal/adapters/out/postgres/replantrepo"
	"perfumery/internal/adapters/out/postgres/saleorderrepo"
	"perfumery/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists every table owned by the repositories, for AutoMigrate.
func Models() []any {
	return []any{
		&plantrepo.PlantDTO{},
		&perfumerepo.PerfumeDTO{},
		&packagerepo.StoragePackageDTO{},
		&saleorderrepo.SaleOrderDTO{},
		&replantrepo.ReplantTaskDTO{},
	}
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make([]any, 0),
	}
}

// GormUnitOfWork coordinates one transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []any
}

// Begin opens the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes it safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

func (uow *GormUnitOfWork) PlantRepository() ports.PlantRepository {
	return plantrepo.NewGormPlantRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PerfumeRepository() ports.PerfumeRepository {
	return perfumerepo.NewGormPerfumeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StoragePackageRepository() ports.StoragePackageRepository {
	return packagerepo.NewGormStoragePackageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SaleOrderRepository() ports.SaleOrderRepository {
	return saleorderrepo.NewGormSaleOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReplantTaskRepository() ports.ReplantTaskRepository {
	return replantrepo.NewGormReplantTaskRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.tracked = append(uow.tracked, aggregate)
}

// TrackedAggregates returns the aggregates written in this unit of work.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	return uow.tracked
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
