package http

import (
	"net/http"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ProcessPerfume handles POST /api/v1/processing/perfumes.
func (s *Server) ProcessPerfume(ctx echo.Context) error {
	var body servers.NewPerfume
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProcessPerfumeCommand(body.Name, body.Type, body.Bottles, body.VolumePerBottleMl)
	if err != nil {
		return badRequest(ctx, "Invalid perfume data: "+err.Error())
	}

	bottles, err := s.handlers.ProcessPerfume.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "process perfume")
	}

	s.metrics.PerfumesProduced(cmd.Kind().String(), len(bottles))

	response := make([]servers.Perfume, len(bottles))
	for i, p := range bottles {
		response[i] = toPerfume(p)
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ListAvailablePerfumes handles GET /api/v1/processing/perfumes.
func (s *Server) ListAvailablePerfumes(ctx echo.Context) error {
	perfumes, err := s.handlers.ListAvailablePerfumes.Handle(ctx.Request().Context(), queries.NewListAvailablePerfumesQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve perfumes")
	}

	response := make([]servers.Perfume, len(perfumes))
	for i, p := range perfumes {
		response[i] = perfumeResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPerfume handles GET /api/v1/processing/perfumes/{id}.
func (s *Server) GetPerfume(ctx echo.Context, id int64) error {
	query, err := queries.NewGetPerfumeQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.handlers.GetPerfume.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve perfume")
	}

	return ctx.JSON(http.StatusOK, perfumeResponse(found))
}

// ReservePerfumes handles POST /api/v1/processing/reservations.
func (s *Server) ReservePerfumes(ctx echo.Context) error {
	var body servers.ReservationRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReservePerfumesCommand(body.Name, body.Count)
	if err != nil {
		return badRequest(ctx, "Invalid reservation: "+err.Error())
	}

	reserved, err := s.handlers.ReservePerfumes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "reserve perfumes")
	}

	ids := make([]int64, len(reserved))
	for i, p := range reserved {
		ids[i] = p.ID()
	}
	return ctx.JSON(http.StatusOK, servers.IDList{Ids: ids})
}
