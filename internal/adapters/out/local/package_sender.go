package local

import (
	"context"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/storagepackage"
)

type sendPackagesHandler interface {
	Handle(ctx context.Context, cmd commands.SendPackagesCommand) ([]*storagepackage.StoragePackage, error)
}

// PackageSender implements ports.PackageSender. An interrupted run returns
// the error together with nothing, so the order is rejected; the packages
// sent before the interruption stay Sent.
type PackageSender struct {
	send sendPackagesHandler
}

func NewPackageSender(send sendPackagesHandler) *PackageSender {
	return &PackageSender{send: send}
}

func (s *PackageSender) SendPackages(ctx context.Context, count int, role kernel.Role) ([]int64, error) {
	cmd, err := commands.NewSendPackagesCommand(count, role)
	if err != nil {
		return nil, err
	}

	sent, err := s.send.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(sent))
	for _, pkg := range sent {
		ids = append(ids, pkg.ID())
	}
	return ids, nil
}
