package http

import (
	"net/http"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PlantNew handles POST /api/v1/production/plants.
func (s *Server) PlantNew(ctx echo.Context) error {
	var body servers.NewPlant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var strength *decimal.Decimal
	if body.Strength != nil {
		v := decimal.NewFromFloat(*body.Strength)
		strength = &v
	}

	cmd, err := commands.NewPlantNewCommand(deref(body.CommonName), deref(body.LatinName), deref(body.Country), strength)
	if err != nil {
		return badRequest(ctx, "Invalid plant data: "+err.Error())
	}

	planted, err := s.handlers.PlantNew.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "plant")
	}

	s.metrics.PlantsPlanted(1)
	return ctx.JSON(http.StatusCreated, toPlant(planted))
}

// GetAvailablePlants handles GET /api/v1/production/plants.
func (s *Server) GetAvailablePlants(ctx echo.Context, params servers.GetAvailablePlantsParams) error {
	count := queries.DefaultAvailablePlantsCount
	if params.Count != nil {
		count = *params.Count
	}

	query, err := queries.NewGetAvailablePlantsQuery(count)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	plants, err := s.handlers.GetAvailablePlants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve plants")
	}

	response := make([]servers.Plant, len(plants))
	for i, p := range plants {
		response[i] = plantResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdjustStrength handles PUT /api/v1/production/plants/{id}/strength.
func (s *Server) AdjustStrength(ctx echo.Context, id int64) error {
	var body servers.StrengthAdjustment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustStrengthCommand(id, decimal.NewFromFloat(body.Value), body.Mode)
	if err != nil {
		return badRequest(ctx, "Invalid adjustment: "+err.Error())
	}

	adjusted, err := s.handlers.AdjustStrength.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "adjust strength")
	}

	return ctx.JSON(http.StatusOK, toPlant(adjusted))
}

// HarvestPlants handles PUT /api/v1/production/harvest.
func (s *Server) HarvestPlants(ctx echo.Context) error {
	var body servers.HarvestRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewHarvestPlantsCommand(body.CommonName, body.Count)
	if err != nil {
		return badRequest(ctx, "Invalid harvest: "+err.Error())
	}

	harvested, err := s.handlers.HarvestPlants.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "harvest")
	}

	s.metrics.PlantsHarvested(len(harvested))

	response := make([]servers.Plant, len(harvested))
	for i, p := range harvested {
		response[i] = toPlant(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkPlantsUsed handles POST /api/v1/production/plants/used.
func (s *Server) MarkPlantsUsed(ctx echo.Context) error {
	var body servers.PlantIDs
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkPlantsUsedCommand(body.Ids)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err := s.handlers.MarkPlantsUsed.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "mark plants used")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlantAndScale handles POST /api/v1/production/balance.
func (s *Server) PlantAndScale(ctx echo.Context) error {
	var body servers.BalanceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	strength, err := kernel.StrengthFromFloat(body.SourceStrength)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPlantAndScaleCommand(strength)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	replanted, err := s.handlers.PlantAndScale.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "replant")
	}

	s.metrics.PlantsPlanted(1)
	return ctx.JSON(http.StatusCreated, toPlant(replanted))
}

// GetProductionLogs handles GET /api/v1/production/logs.
func (s *Server) GetProductionLogs(ctx echo.Context, params servers.GetProductionLogsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetProductionLogsQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetProductionLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve production logs")
	}

	response := make([]servers.ProductionLog, len(entries))
	for i, entry := range entries {
		response[i] = servers.ProductionLog{
			Level:     servers.ProductionLogLevel(entry.Level().String()),
			Message:   entry.Message(),
			CreatedAt: entry.CreatedAt(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
