// Package plantrepo persists plant aggregates with GORM.
package plantrepo

import (
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"

	"github.com/shopspring/decimal"
)

// PlantDTO is the row of the plants table. Rows are never deleted.
type PlantDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CommonName string          `gorm:"size:100;index:idx_plants_name_status"`
	LatinName  string          `gorm:"size:100"`
	Country    string          `gorm:"size:100"`
	Strength   decimal.Decimal `gorm:"type:numeric(8,2)"`
	Status     int             `gorm:"index:idx_plants_name_status"`
	PlantedAt  time.Time
}

func (PlantDTO) TableName() string {
	return "plants"
}

func fromDomain(aggregate *plant.Plant) PlantDTO {
	return PlantDTO{
		ID:         aggregate.ID(),
		CommonName: aggregate.CommonName(),
		LatinName:  aggregate.LatinName(),
		Country:    aggregate.Country(),
		Strength:   aggregate.Strength().Decimal(),
		Status:     int(aggregate.Status()),
		PlantedAt:  aggregate.PlantedAt(),
	}
}

func toDomain(dto PlantDTO) (*plant.Plant, error) {
	strength, err := kernel.RestoreStrength(dto.Strength)
	if err != nil {
		return nil, err
	}

	return plant.RestorePlant(
		dto.ID,
		dto.CommonName,
		dto.LatinName,
		dto.Country,
		strength,
		plant.Status(dto.Status),
		dto.PlantedAt,
	)
}

func toDomainList(dtos []PlantDTO) ([]*plant.Plant, error) {
	plants := make([]*plant.Plant, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, nil
}
