package perfumerepo

import (
	"context"
	"errors"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPerfumeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormPerfumeRepository(db *gorm.DB, tracker aggregateTracker) *GormPerfumeRepository {
	return &GormPerfumeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the bottle, then stores the serial derived from the new id.
// Run it inside a transaction to keep the row and its serial atomic.
func (r *GormPerfumeRepository) Add(ctx context.Context, aggregate *perfume.Perfume) error {
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

	if err := db.Model(&PerfumeDTO{}).Where("id = ?", dto.ID).Update("serial", aggregate.Serial()).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormPerfumeRepository) Update(ctx context.Context, aggregate *perfume.Perfume) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PerfumeDTO{}).Where("id = ?", aggregate.ID()).Updates(map[string]any{
		"status": int(aggregate.Status()),
		"serial": aggregate.Serial(),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormPerfumeRepository) Get(ctx context.Context, id int64) (*perfume.Perfume, error) {
	var dto PerfumeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("perfume", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPerfumeRepository) ClaimAvailable(ctx context.Context, name string, limit int) ([]*perfume.Perfume, error) {
	var dtos []PerfumeDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND name = ?", int(perfume.Available), name).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
