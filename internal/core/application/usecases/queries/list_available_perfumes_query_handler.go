package queries

import (
	"context"
	"database/sql"

	"perfumery/internal/core/domain/model/perfume"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const selectPerfumes = `
	SELECT
		id,
		name,
		type,
		net_volume_ml,
		serial,
		source_plant_ids,
		status,
		created_at,
		expires_at
	FROM perfumes
`

type ListAvailablePerfumesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailablePerfumesQueryHandler(db *gorm.DB) ListAvailablePerfumesQueryHandler {
	return ListAvailablePerfumesQueryHandler{db: db}
}

func (h ListAvailablePerfumesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailablePerfumesQuery,
) ([]PerfumeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectPerfumes+` WHERE status = ? ORDER BY created_at, id`, int(perfume.Available),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perfumes := make([]PerfumeResponse, 0)
	for rows.Next() {
		resp, scanErr := scanPerfume(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		perfumes = append(perfumes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return perfumes, nil
}

func scanPerfume(rows *sql.Rows) (PerfumeResponse, error) {
	var resp PerfumeResponse
	var kind, status int
	var sourceIDs pq.Int64Array

	if err := rows.Scan(
		&resp.ID,
		&resp.Name,
		&kind,
		&resp.NetVolumeMl,
		&resp.Serial,
		&sourceIDs,
		&status,
		&resp.CreatedAt,
		&resp.ExpiresAt,
	); err != nil {
		return PerfumeResponse{}, err
	}

	resp.Type = perfume.Type(kind)
	resp.Status = perfume.Status(status)
	resp.SourcePlantIDs = []int64(sourceIDs)
	return resp, nil
}
