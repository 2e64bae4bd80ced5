package queries

import (
	"context"
	"database/sql"

	"perfumery/internal/core/domain/model/storagepackage"

	"gorm.io/gorm"
)

type ListAvailablePackagesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailablePackagesQueryHandler(db *gorm.DB) ListAvailablePackagesQueryHandler {
	return ListAvailablePackagesQueryHandler{db: db}
}

func (h ListAvailablePackagesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailablePackagesQuery,
) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sender_address,
			warehouse_id,
			perfume_id,
			status,
			serial,
			created_at
		FROM storage_packages
		WHERE status = ?
		ORDER BY created_at, id
	`, int(storagepackage.Packed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]PackageResponse, 0)
	for rows.Next() {
		var resp PackageResponse
		var perfumeID sql.NullInt64
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.SenderAddress,
			&resp.WarehouseID,
			&perfumeID,
			&status,
			&resp.Serial,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if perfumeID.Valid {
			id := perfumeID.Int64
			resp.PerfumeID = &id
		}
		resp.Status = storagepackage.Status(status)
		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
