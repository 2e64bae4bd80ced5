package remote

import (
	"context"
	"net/http"

	"perfumery/internal/generated/servers"
)

// PerfumeReserver implements ports.PerfumeReserver against a remote
// processing component. A 409 is an insufficient stock error.
type PerfumeReserver struct {
	client *Client
}

func NewPerfumeReserver(client *Client) *PerfumeReserver {
	return &PerfumeReserver{client: client}
}

func (r *PerfumeReserver) Reserve(ctx context.Context, name string, count int) ([]int64, error) {
	var reserved servers.IDList
	_, err := r.client.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/processing/reservations",
		in:     servers.ReservationRequest{Name: name, Count: count},
		out:    &reserved,
		accept: []int{http.StatusOK},
	})
	if err != nil {
		return nil, translate(err, "perfume", count)
	}
	return reserved.Ids, nil
}
