// Package packagerepo persists storage packages with GORM.
package packagerepo

import (
	"time"

	"perfumery/internal/core/domain/model/storagepackage"
)

type StoragePackageDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"size:150"`
	SenderAddress string `gorm:"size:250"`
	WarehouseID   int64
	PerfumeID     *int64 `gorm:"index"`
	Status        int    `gorm:"index"`
	Serial        string `gorm:"size:32;index"`
	CreatedAt     time.Time
}

func (StoragePackageDTO) TableName() string {
	return "storage_packages"
}

func fromDomain(aggregate *storagepackage.StoragePackage) StoragePackageDTO {
	return StoragePackageDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		SenderAddress: aggregate.SenderAddress(),
		WarehouseID:   aggregate.WarehouseID(),
		PerfumeID:     aggregate.PerfumeID(),
		Status:        int(aggregate.Status()),
		Serial:        aggregate.Serial(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto StoragePackageDTO) (*storagepackage.StoragePackage, error) {
	return storagepackage.RestoreStoragePackage(
		dto.ID,
		dto.Name,
		dto.SenderAddress,
		dto.WarehouseID,
		dto.PerfumeID,
		storagepackage.Status(dto.Status),
		dto.Serial,
		dto.CreatedAt,
	)
}
