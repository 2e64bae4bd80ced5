package replantrepo

import (
	"context"

	"perfumery/internal/core/domain/model/replant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormReplantTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormReplantTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormReplantTaskRepository {
	return &GormReplantTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReplantTaskRepository) Add(ctx context.Context, aggregate *replant.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormReplantTaskRepository) Update(ctx context.Context, aggregate *replant.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReplantTaskDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":     dto.Status,
		"attempts":   dto.Attempts,
		"last_error": dto.LastError,
		"updated_at": dto.UpdatedAt,
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

func (r *GormReplantTaskRepository) ClaimPending(ctx context.Context, limit int) ([]*replant.Task, error) {
	var dtos []ReplantTaskDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", int(replant.Pending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*replant.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
