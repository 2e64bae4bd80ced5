package saleorderrepo

import (
	"context"
	"errors"

	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormSaleOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormSaleOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and stores the ORD serial derived from its id.
func (r *GormSaleOrderRepository) Add(ctx context.Context, aggregate *saleorder.SaleOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	if err := db.Model(&SaleOrderDTO{}).Where("id = ?", dto.ID).Update("serial", aggregate.Serial()).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormSaleOrderRepository) Get(ctx context.Context, id int64) (*saleorder.SaleOrder, error) {
	var dto SaleOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
