package services

import (
	"fmt"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/pkg/errs"
)

// OilYieldPerPlantMl is the essential oil obtained from a single plant.
const OilYieldPerPlantMl = 50

// SourcePlant is the view processing gets of a plant handed over by the
// plant lifecycle manager.
type SourcePlant struct {
	ID       int64
	Strength kernel.Strength
}

// ProductionPlan is the resource accounting of one processing batch.
type ProductionPlan struct {
	Bottles           int
	VolumePerBottleMl int
	TotalMl           int
	PlantsNeeded      int
}

// Batch is the outcome of ProductionPlan.Produce.
type Batch struct {
	Perfumes []*perfume.Perfume

	// Consumed are the ids of every plant used by the batch.
	Consumed []int64

	// Replants are the consumed plants above kernel.StrengthThreshold.
	Replants []SourcePlant
}

// PlanProduction computes how many plants a batch consumes:
// ceil(bottles * volume / OilYieldPerPlantMl).
func PlanProduction(bottles, volumePerBottleMl int) (ProductionPlan, error) {
	if bottles < 1 {
		return ProductionPlan{}, errs.NewValueIsInvalidErrorWithCause("bottles is invalid", fmt.Errorf("%d is less than 1", bottles))
	}
	if volumePerBottleMl < perfume.MinBottleVolumeMl || volumePerBottleMl > perfume.MaxBottleVolumeMl {
		return ProductionPlan{}, errs.NewValueIsOutOfRangeError(
			"volume per bottle ml", volumePerBottleMl, perfume.MinBottleVolumeMl, perfume.MaxBottleVolumeMl)
	}

	total := bottles * volumePerBottleMl
	return ProductionPlan{
		Bottles:           bottles,
		VolumePerBottleMl: volumePerBottleMl,
		TotalMl:           total,
		PlantsNeeded:      (total + OilYieldPerPlantMl - 1) / OilYieldPerPlantMl,
	}, nil
}

// Produce bottles the batch from the supplied plants. Every bottle references
// all supplied plants. Fewer plants than PlantsNeeded is a supply shortage and
// nothing is produced.
func (p ProductionPlan) Produce(
	name string,
	kind perfume.Type,
	sources []SourcePlant,
	bottledAt time.Time,
) (Batch, error) {
	if len(sources) < p.PlantsNeeded {
		return Batch{}, errs.NewInsufficientStockError("plant", p.PlantsNeeded, len(sources))
	}

	batch := Batch{
		Perfumes: make([]*perfume.Perfume, 0, p.Bottles),
		Consumed: make([]int64, 0, len(sources)),
	}
	for _, src := range sources {
		batch.Consumed = append(batch.Consumed, src.ID)
		if src.Strength.ExceedsThreshold() {
			batch.Replants = append(batch.Replants, src)
		}
	}

	for range p.Bottles {
		bottle, err := perfume.NewPerfume(name, kind, p.VolumePerBottleMl, batch.Consumed, bottledAt)
		if err != nil {
			return Batch{}, err
		}
		batch.Perfumes = append(batch.Perfumes, bottle)
	}

	return batch, nil
}
