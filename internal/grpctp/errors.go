package grpctp

import "errors"

// ErrNoEndpoints is returned by an EndpointProvider when a service name has
// no known backend to dispatch to. Transport.Call returns it to its caller
// as an ordinary error, so it ends up as a field-level GraphQLError rather
// than panicking a request.
var ErrNoEndpoints = errors.New("grpctp: no endpoints available")
