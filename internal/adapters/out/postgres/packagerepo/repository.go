package packagerepo

import (
	"context"
	"errors"

	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStoragePackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormStoragePackageRepository(db *gorm.DB, tracker aggregateTracker) *GormStoragePackageRepository {
	return &GormStoragePackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the package and stores the PKG serial derived from its id.
func (r *GormStoragePackageRepository) Add(ctx context.Context, aggregate *storagepackage.StoragePackage) error {
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

	if err := db.Model(&StoragePackageDTO{}).Where("id = ?", dto.ID).Update("serial", aggregate.Serial()).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormStoragePackageRepository) Update(ctx context.Context, aggregate *storagepackage.StoragePackage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StoragePackageDTO{}).Where("id = ?", aggregate.ID()).Updates(map[string]any{
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

func (r *GormStoragePackageRepository) Get(ctx context.Context, id int64) (*storagepackage.StoragePackage, error) {
	var dto StoragePackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStoragePackageRepository) ClaimPacked(ctx context.Context, limit int) ([]*storagepackage.StoragePackage, error) {
	var dtos []StoragePackageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", int(storagepackage.Packed)).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*storagepackage.StoragePackage, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}
