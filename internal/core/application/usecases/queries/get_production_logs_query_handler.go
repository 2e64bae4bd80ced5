package queries

import (
	"context"

	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/ports"
)

// GetProductionLogsQueryHandler reads through ports.ProductionLog, which is
// kept outside of the gorm schema.
type GetProductionLogsQueryHandler struct {
	log ports.ProductionLog
}

func NewGetProductionLogsQueryHandler(log ports.ProductionLog) GetProductionLogsQueryHandler {
	return GetProductionLogsQueryHandler{log: log}
}

func (h GetProductionLogsQueryHandler) Handle(ctx context.Context, query GetProductionLogsQuery) ([]journal.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.log.Recent(ctx, query.Limit())
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make([]journal.Entry, 0)
	}
	return entries, nil
}
