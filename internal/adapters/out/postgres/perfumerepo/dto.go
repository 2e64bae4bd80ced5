// Package perfumerepo persists bottles with GORM. Each row is one bottle.
package perfumerepo

import (
	"time"

	"perfumery/internal/core/domain/model/perfume"

	"github.com/lib/pq"
)

type PerfumeDTO struct {
	ID             int64         `gorm:"primaryKey;autoIncrement"`
	Name           string        `gorm:"size:150;index:idx_perfumes_name_status"`
	Type           int
	NetVolumeMl    int
	Serial         string        `gorm:"size:32;index"`
	SourcePlantIDs pq.Int64Array `gorm:"type:bigint[]"`
	Status         int           `gorm:"index:idx_perfumes_name_status"`
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

func (PerfumeDTO) TableName() string {
	return "perfumes"
}

func fromDomain(aggregate *perfume.Perfume) PerfumeDTO {
	return PerfumeDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		Type:           int(aggregate.Type()),
		NetVolumeMl:    aggregate.NetVolumeMl(),
		Serial:         aggregate.Serial(),
		SourcePlantIDs: pq.Int64Array(aggregate.SourcePlantIDs()),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		ExpiresAt:      aggregate.ExpiresAt(),
	}
}

func toDomain(dto PerfumeDTO) (*perfume.Perfume, error) {
	return perfume.RestorePerfume(
		dto.ID,
		dto.Name,
		perfume.Type(dto.Type),
		dto.NetVolumeMl,
		dto.Serial,
		[]int64(dto.SourcePlantIDs),
		perfume.Status(dto.Status),
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}

func toDomainList(dtos []PerfumeDTO) ([]*perfume.Perfume, error) {
	perfumes := make([]*perfume.Perfume, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		perfumes = append(perfumes, p)
	}
	return perfumes, nil
}
