package http

import (
	"net/http"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// StorePackage handles POST /api/v1/storage/packages.
func (s *Server) StorePackage(ctx echo.Context) error {
	var body servers.NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStorePackageCommand(body.Name, body.SenderAddress, body.WarehouseId, body.PerfumeId)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	stored, err := s.handlers.StorePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "store package")
	}

	s.metrics.PackagesStored(1)
	return ctx.JSON(http.StatusCreated, toPackage(stored))
}

// PackPerfumes handles POST /api/v1/storage/packages/pack.
func (s *Server) PackPerfumes(ctx echo.Context) error {
	var body servers.PackRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPackPerfumesCommand(body.PerfumeName, body.Count, body.SenderAddress, body.WarehouseId)
	if err != nil {
		return badRequest(ctx, "Invalid packing request: "+err.Error())
	}

	packed, err := s.handlers.PackPerfumes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "pack perfumes")
	}

	s.metrics.PackagesStored(len(packed))

	response := make([]servers.Package, len(packed))
	for i, p := range packed {
		response[i] = toPackage(p)
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ListAvailablePackages handles GET /api/v1/storage/packages.
func (s *Server) ListAvailablePackages(ctx echo.Context) error {
	packages, err := s.handlers.ListAvailablePackages.Handle(ctx.Request().Context(), queries.NewListAvailablePackagesQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve packages")
	}

	response := make([]servers.Package, len(packages))
	for i, p := range packages {
		response[i] = packageResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SendPackages handles POST /api/v1/storage/send. The distribution center
// is chosen by the caller's role. Nothing sent is reported as 404.
//
// Packages of batches committed before a failure are already Sent, so they
// are returned with 200 and the failure is only logged.
func (s *Server) SendPackages(ctx echo.Context) error {
	var body servers.SendRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller := callerFrom(ctx)

	cmd, err := commands.NewSendPackagesCommand(body.Count, caller.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	sent, err := s.handlers.SendPackages.Handle(ctx.Request().Context(), cmd)
	if err != nil && len(sent) == 0 {
		return s.fail(ctx, err, "send packages")
	}
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "distribution stopped early",
			"sent", len(sent), "requested", body.Count, "error", err)
	}

	if len(sent) == 0 {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "No packages available to send",
		})
	}

	s.metrics.PackagesSent(services.CenterForRole(caller.Role).Name(), len(sent))

	ids := make([]int64, len(sent))
	for i, p := range sent {
		ids[i] = p.ID()
	}
	return ctx.JSON(http.StatusOK, servers.IDList{Ids: ids})
}
