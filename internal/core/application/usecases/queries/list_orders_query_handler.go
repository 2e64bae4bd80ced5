package queries

import (
	"context"
	"database/sql"

	"perfumery/internal/core/domain/model/saleorder"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		id,
		customer_name,
		delivery_address,
		requested,
		package_ids,
		serial,
		status,
		created_by,
		created_at
	FROM sale_orders
`

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrders + ` ORDER BY created_at DESC, id DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var packageIDs pq.Int64Array
	var status int

	if err := rows.Scan(
		&resp.ID,
		&resp.CustomerName,
		&resp.DeliveryAddress,
		&resp.Requested,
		&packageIDs,
		&resp.Serial,
		&status,
		&resp.CreatedBy,
		&resp.CreatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	resp.PackageIDs = []int64(packageIDs)
	resp.Status = saleorder.Status(status)
	return resp, nil
}
