package plantrepo

import (
	"context"
	"errors"

	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPlantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormPlantRepository(db *gorm.DB, tracker aggregateTracker) *GormPlantRepository {
	return &GormPlantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the plant and assigns the generated id to the aggregate.
func (r *GormPlantRepository) Add(ctx context.Context, aggregate *plant.Plant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormPlantRepository) Update(ctx context.Context, aggregate *plant.Plant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PlantDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"strength": dto.Strength,
		"status":   dto.Status,
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

func (r *GormPlantRepository) Get(ctx context.Context, id int64) (*plant.Plant, error) {
	var dto PlantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plant", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPlantRepository) GetByIDs(ctx context.Context, ids []int64) ([]*plant.Plant, error) {
	if len(ids) == 0 {
		return []*plant.Plant{}, nil
	}

	var dtos []PlantDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormPlantRepository) ClaimPlanted(ctx context.Context, commonName string, limit int) ([]*plant.Plant, error) {
	var dtos []PlantDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND common_name = ?", int(plant.Planted), commonName).
		Order("id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
