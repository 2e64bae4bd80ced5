package http

import (
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/generated/servers"
)

func toPlant(p *plant.Plant) servers.Plant {
	return servers.Plant{
		Id:         p.ID(),
		CommonName: p.CommonName(),
		LatinName:  p.LatinName(),
		Country:    p.Country(),
		Strength:   p.Strength().Float64(),
		Status:     servers.PlantStatus(p.Status().String()),
		PlantedAt:  p.PlantedAt(),
	}
}

func plantResponse(p queries.PlantResponse) servers.Plant {
	return servers.Plant{
		Id:         p.ID,
		CommonName: p.CommonName,
		LatinName:  p.LatinName,
		Country:    p.Country,
		Strength:   p.Strength.Float64(),
		Status:     servers.PlantStatus(p.Status.String()),
		PlantedAt:  p.PlantedAt,
	}
}

func toPerfume(p *perfume.Perfume) servers.Perfume {
	return servers.Perfume{
		Id:             p.ID(),
		Name:           p.Name(),
		Type:           servers.PerfumeType(p.Type().String()),
		NetVolumeMl:    p.NetVolumeMl(),
		Serial:         p.Serial(),
		SourcePlantIds: ids(p.SourcePlantIDs()),
		Status:         servers.PerfumeStatus(p.Status().String()),
		CreatedAt:      p.CreatedAt(),
		ExpiresAt:      p.ExpiresAt(),
	}
}

func perfumeResponse(p queries.PerfumeResponse) servers.Perfume {
	return servers.Perfume{
		Id:             p.ID,
		Name:           p.Name,
		Type:           servers.PerfumeType(p.Type.String()),
		NetVolumeMl:    p.NetVolumeMl,
		Serial:         p.Serial,
		SourcePlantIds: ids(p.SourcePlantIDs),
		Status:         servers.PerfumeStatus(p.Status.String()),
		CreatedAt:      p.CreatedAt,
		ExpiresAt:      p.ExpiresAt,
	}
}

func toPackage(p *storagepackage.StoragePackage) servers.Package {
	return servers.Package{
		Id:            p.ID(),
		Name:          p.Name(),
		SenderAddress: p.SenderAddress(),
		WarehouseId:   p.WarehouseID(),
		PerfumeId:     p.PerfumeID(),
		Status:        servers.PackageStatus(p.Status().String()),
		Serial:        p.Serial(),
		CreatedAt:     p.CreatedAt(),
	}
}

func packageResponse(p queries.PackageResponse) servers.Package {
	return servers.Package{
		Id:            p.ID,
		Name:          p.Name,
		SenderAddress: p.SenderAddress,
		WarehouseId:   p.WarehouseID,
		PerfumeId:     p.PerfumeID,
		Status:        servers.PackageStatus(p.Status.String()),
		Serial:        p.Serial,
		CreatedAt:     p.CreatedAt,
	}
}

func toOrder(o *saleorder.SaleOrder) servers.Order {
	return servers.Order{
		Id:              o.ID(),
		CustomerName:    o.CustomerName(),
		DeliveryAddress: o.DeliveryAddress(),
		Requested:       o.Requested(),
		PackageIds:      ids(o.PackageIDs()),
		Serial:          o.Serial(),
		Status:          servers.OrderStatus(o.Status().String()),
		CreatedBy:       o.CreatedBy(),
		CreatedAt:       o.CreatedAt(),
	}
}

func orderResponse(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:              o.ID,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		Requested:       o.Requested,
		PackageIds:      ids(o.PackageIDs),
		Serial:          o.Serial,
		Status:          servers.OrderStatus(o.Status.String()),
		CreatedBy:       o.CreatedBy,
		CreatedAt:       o.CreatedAt,
	}
}

// ids keeps empty lists as [] on the wire.
func ids(values []int64) []int64 {
	if values == nil {
		return []int64{}
	}
	return values
}
