package nomics

import (
	"context"
)

// API defines the interface for Nomics operations
type API interface {
	// Call performs a request against an endpoint path
	Call(ctx context.Context, endpoint string, params Params) (*Response, error)

	// CallEndpoint performs a request against a named endpoint
	CallEndpoint(ctx context.Context, name string, params Params) (*Response, error)
}

var _ API = (*Client)(nil)
