// Package remote reaches the pipeline components of another deployment
// through their HTTP API, forwarding the gateway trust headers.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"perfumery/internal/generated/servers"
	"perfumery/internal/pkg/errs"
)

const (
	headerGatewayKey = "x-gateway-key"
	headerUserID     = "x-user-id"
	headerUserRole   = "x-user-role"
	headerUserName   = "x-user-name"

	// serviceUserID identifies calls made by the pipeline itself.
	serviceUserID = "perfumery"
)

// StatusError is an unexpected response of a remote component.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Message)
}

// Client performs JSON calls against one component base URL.
type Client struct {
	baseURL    string
	gatewayKey string
	http       *http.Client
}

// NewClient uses http.DefaultClient when httpClient is nil. Calls are
// bounded by their context only: distribution through the warehouse
// takes seconds per package.
func NewClient(baseURL, gatewayKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		gatewayKey: gatewayKey,
		http:       httpClient,
	}
}

type call struct {
	method string
	path   string
	role   string
	in     any
	out    any
	// accept lists the status codes treated as success.
	accept []int
}

// do returns the status code of an accepted response. Rejected responses
// are returned as *StatusError.
func (c *Client) do(ctx context.Context, cl call) (int, error) {
	var body io.Reader
	if cl.in != nil {
		payload, err := json.Marshal(cl.in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return 0, err
	}
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerUserID, serviceUserID)
	req.Header.Set(headerUserName, serviceUserID)
	if cl.role != "" {
		req.Header.Set(headerUserRole, cl.role)
	}
	if c.gatewayKey != "" {
		req.Header.Set(headerGatewayKey, c.gatewayKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	for _, code := range cl.accept {
		if resp.StatusCode != code {
			continue
		}
		if cl.out != nil && code < http.StatusMultipleChoices && code != http.StatusNoContent {
			if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
				return code, fmt.Errorf("decode %s %s response: %w", cl.method, cl.path, err)
			}
		}
		return code, nil
	}

	return resp.StatusCode, &StatusError{
		Method:  cl.method,
		Path:    cl.path,
		Code:    resp.StatusCode,
		Message: readMessage(resp.Body),
	}
}

func readMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return err.Error()
	}

	var apiErr servers.Error
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(raw))
}

// translate maps a remote rejection onto the local error taxonomy so that
// callers handle remote and in-process collaborators alike.
func translate(err error, resource string, requested int) error {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	switch statusErr.Code {
	case http.StatusConflict:
		return errs.NewInsufficientStockErrorWithCause(resource, requested, 0, err)
	case http.StatusNotFound:
		return errs.NewObjectNotFoundErrorWithCause(resource, requested, err)
	case http.StatusBadRequest:
		return errs.NewValueIsInvalidErrorWithCause(resource, err)
	default:
		return err
	}
}
