package remote

import (
	"context"
	"net/http"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/generated/servers"
)

// PackageSender implements ports.PackageSender against a remote storage
// component. The role is forwarded so the remote side picks the same
// distribution center; its 404 means nothing was sent.
type PackageSender struct {
	client *Client
}

func NewPackageSender(client *Client) *PackageSender {
	return &PackageSender{client: client}
}

func (s *PackageSender) SendPackages(ctx context.Context, count int, role kernel.Role) ([]int64, error) {
	var sent servers.IDList
	code, err := s.client.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/storage/send",
		role:   role.String(),
		in:     servers.SendRequest{Count: count},
		out:    &sent,
		accept: []int{http.StatusOK, http.StatusNotFound},
	})
	if err != nil {
		return nil, translate(err, "package", count)
	}
	if code == http.StatusNotFound {
		return nil, nil
	}
	return sent.Ids, nil
}
