package queries

import (
	"context"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailablePlantsQueryHandler reads Planted plants straight from the
// plants table.
type GetAvailablePlantsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailablePlantsQueryHandler(db *gorm.DB) GetAvailablePlantsQueryHandler {
	return GetAvailablePlantsQueryHandler{db: db}
}

// Handle returns at most query.Count() plants ordered by id.
func (h GetAvailablePlantsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePlantsQuery,
) ([]PlantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	plants := make([]PlantResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			common_name,
			latin_name,
			country,
			strength,
			status,
			planted_at
		FROM plants
		WHERE status = ?
		ORDER BY id
		LIMIT ?
	`, int(plant.Planted), query.Count()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PlantResponse
		var strength decimal.Decimal
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.CommonName,
			&resp.LatinName,
			&resp.Country,
			&strength,
			&status,
			&resp.PlantedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Strength, err = kernel.RestoreStrength(strength)
		if err != nil {
			return nil, err
		}
		resp.Status = plant.Status(status)
		plants = append(plants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plants, nil
}
