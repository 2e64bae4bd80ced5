package queries

import (
	"context"

	"perfumery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPerfumeQueryHandler struct {
	db *gorm.DB
}

func NewGetPerfumeQueryHandler(db *gorm.DB) GetPerfumeQueryHandler {
	return GetPerfumeQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no bottle has the id.
func (h GetPerfumeQueryHandler) Handle(ctx context.Context, query GetPerfumeQuery) (PerfumeResponse, error) {
	if err := query.Validate(); err != nil {
		return PerfumeResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectPerfumes+` WHERE id = ?`, query.ID()).Rows()
	if err != nil {
		return PerfumeResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PerfumeResponse{}, err
		}
		return PerfumeResponse{}, errs.NewObjectNotFoundError("perfume", query.ID())
	}

	return scanPerfume(rows)
}
