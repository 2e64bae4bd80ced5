// Package replantrepo persists the replant task queue with GORM.
package replantrepo

import (
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/replant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReplantTaskDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SourcePlantID  int64           `gorm:"index"`
	SourceStrength decimal.Decimal `gorm:"type:numeric(8,2)"`
	Status         int             `gorm:"index"`
	Attempts       int
	LastError      string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ReplantTaskDTO) TableName() string {
	return "replant_tasks"
}

func fromDomain(aggregate *replant.Task) ReplantTaskDTO {
	return ReplantTaskDTO{
		ID:             aggregate.ID().Value(),
		SourcePlantID:  aggregate.SourcePlantID(),
		SourceStrength: aggregate.SourceStrength().Decimal(),
		Status:         int(aggregate.Status()),
		Attempts:       aggregate.Attempts(),
		LastError:      aggregate.LastError(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto ReplantTaskDTO) (*replant.Task, error) {
	id, err := kernel.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	strength, err := kernel.RestoreStrength(dto.SourceStrength)
	if err != nil {
		return nil, err
	}

	return replant.RestoreTask(
		id,
		dto.SourcePlantID,
		strength,
		replant.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
