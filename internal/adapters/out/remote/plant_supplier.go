package remote

import (
	"context"
	"fmt"
	"net/http"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/generated/servers"

	"github.com/shopspring/decimal"
)

// PlantSupplier implements ports.PlantSupplier against a remote production
// component.
type PlantSupplier struct {
	client *Client
}

func NewPlantSupplier(client *Client) *PlantSupplier {
	return &PlantSupplier{client: client}
}

func (s *PlantSupplier) AvailablePlants(ctx context.Context, count int) ([]services.SourcePlant, error) {
	var plants []servers.Plant
	_, err := s.client.do(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/v1/production/plants?count=%d", count),
		out:    &plants,
		accept: []int{http.StatusOK},
	})
	if err != nil {
		return nil, translate(err, "plant", count)
	}

	sources := make([]services.SourcePlant, 0, len(plants))
	for _, p := range plants {
		strength, err := kernel.RestoreStrength(decimal.NewFromFloat(p.Strength))
		if err != nil {
			return nil, fmt.Errorf("plant %d: %w", p.Id, err)
		}
		sources = append(sources, services.SourcePlant{ID: p.Id, Strength: strength})
	}
	return sources, nil
}

func (s *PlantSupplier) MarkUsed(ctx context.Context, ids []int64) error {
	_, err := s.client.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/production/plants/used",
		in:     servers.PlantIDs{Ids: ids},
		accept: []int{http.StatusNoContent},
	})
	return translate(err, "plant", len(ids))
}

func (s *PlantSupplier) PlantAndScale(ctx context.Context, sourceStrength kernel.Strength) (int64, error) {
	var replanted servers.Plant
	_, err := s.client.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/production/balance",
		in:     servers.BalanceRequest{SourceStrength: sourceStrength.Float64()},
		out:    &replanted,
		accept: []int{http.StatusCreated},
	})
	if err != nil {
		return 0, translate(err, "plant", 1)
	}
	return replanted.Id, nil
}
