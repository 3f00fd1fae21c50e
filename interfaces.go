package towerbridge

import "context"

// Transport performs one HTTP exchange against the upstream API. It
// returns a response for every completed exchange regardless of status
// code and an error only for transport-level failures; classifying status
// codes is the executor's job. Implementations must be safe for
// concurrent use, as every in-flight call shares one transport.
type Transport interface {
	RoundTrip(ctx context.Context, req *APIRequest) (*APIResponse, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, req *APIRequest) (*APIResponse, error)

func (f TransportFunc) RoundTrip(ctx context.Context, req *APIRequest) (*APIResponse, error) {
	return f(ctx, req)
}
