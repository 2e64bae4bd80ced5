package commands

import (
	"context"
	"log/slog"

	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/core/ports"
)

// SendPackagesCommandHandler is the package distribution engine.
//
// Packages are sent batch by batch. Each batch is one transaction that
// claims the oldest Packed packages with SKIP LOCKED, pauses the center's
// item delay before every package and commits them as Sent together, so
// concurrent runs never send the same package. The run stops when count is
// reached or nothing is left to claim; a shortfall is not an error.
//
// A failure, including context cancellation, rolls back the current batch
// only. Packages of earlier batches stay Sent and are returned with the
// error. Within a Distributive batch of three, up to two packages that have
// already waited out their delay revert to Packed when the third is cancelled.
type SendPackagesCommandHandler struct {
	uowFactory StoragePackageUoWFactory
	pacer      ports.Pacer
	logger     *slog.Logger
}

func NewSendPackagesCommandHandler(
	uowFactory StoragePackageUoWFactory,
	pacer ports.Pacer,
	logger *slog.Logger,
) SendPackagesCommandHandler {
	return SendPackagesCommandHandler{
		uowFactory: uowFactory,
		pacer:      pacer,
		logger:     logger.With("component", "distribution"),
	}
}

func (h *SendPackagesCommandHandler) Handle(ctx context.Context, cmd SendPackagesCommand) ([]*storagepackage.StoragePackage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	center := services.CenterForRole(cmd.Role())
	sent := make([]*storagepackage.StoragePackage, 0, cmd.Count())

	for len(sent) < cmd.Count() {
		batch, err := h.sendBatch(ctx, center, center.NextBatch(cmd.Count()-len(sent)))
		if err != nil {
			h.logger.WarnContext(ctx, "distribution interrupted",
				"center", center.Name(), "sent", len(sent), "requested", cmd.Count(), "error", err)
			return sent, err
		}

		if len(batch) == 0 {
			break
		}

		sent = append(sent, batch...)
	}

	h.logger.InfoContext(ctx, "packages sent",
		"center", center.Name(), "sent", len(sent), "requested", cmd.Count())
	return sent, nil
}

func (h *SendPackagesCommandHandler) sendBatch(
	ctx context.Context,
	center services.DistributionCenter,
	size int,
) ([]*storagepackage.StoragePackage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StoragePackageRepository()
	claimed, err := repo.ClaimPacked(ctx, size)
	if err != nil {
		return nil, err
	}

	if len(claimed) == 0 {
		return nil, nil
	}

	for _, pkg := range claimed {
		if err = h.pacer.Pause(ctx, center.ItemDelay()); err != nil {
			return nil, err
		}
		if err = pkg.Send(); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, pkg); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
