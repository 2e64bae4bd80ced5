// Package saleorderrepo persists sale orders with GORM. Orders are written
// once, already shipped, so the repository has no update path.
package saleorderrepo

import (
	"time"

	"perfumery/internal/core/domain/model/saleorder"

	"github.com/lib/pq"
)

type SaleOrderDTO struct {
	ID              int64         `gorm:"primaryKey;autoIncrement"`
	CustomerName    string        `gorm:"size:150"`
	DeliveryAddress string        `gorm:"size:250"`
	Requested       int
	PackageIDs      pq.Int64Array `gorm:"type:bigint[]"`
	Serial          string        `gorm:"size:32;index"`
	Status          int
	CreatedBy       string        `gorm:"size:100"`
	CreatedAt       time.Time     `gorm:"index"`
}

func (SaleOrderDTO) TableName() string {
	return "sale_orders"
}

func fromDomain(aggregate *saleorder.SaleOrder) SaleOrderDTO {
	return SaleOrderDTO{
		ID:              aggregate.ID(),
		CustomerName:    aggregate.CustomerName(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Requested:       aggregate.Requested(),
		PackageIDs:      pq.Int64Array(aggregate.PackageIDs()),
		Serial:          aggregate.Serial(),
		Status:          int(aggregate.Status()),
		CreatedBy:       aggregate.CreatedBy(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto SaleOrderDTO) (*saleorder.SaleOrder, error) {
	return saleorder.RestoreSaleOrder(
		dto.ID,
		dto.CustomerName,
		dto.DeliveryAddress,
		dto.Requested,
		[]int64(dto.PackageIDs),
		dto.Serial,
		saleorder.Status(dto.Status),
		dto.CreatedBy,
		dto.CreatedAt,
	)
}
