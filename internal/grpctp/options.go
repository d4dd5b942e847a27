package grpctp

import (
	"time"

	"google.golang.org/grpc"
)

const (
	defaultMaxConnsPerEndpoint = 2
	defaultRPCTimeout          = 3 * time.Second
)

// Options configures Transport. Every field is safe to leave zero-valued;
// New fills in defaultOptions() first and lets the supplied Option values
// override individual fields on top of it.
//
// Provider must eventually be set via WithProvider: a Transport with a nil
// Provider errors on every call rather than panicking.
type Options struct {
	Provider EndpointProvider

	MaxConnsPerEndpoint int
	RPCTimeout          time.Duration

	DialOptions []grpc.DialOption
}

// Option mutates an Options value; use the WithX constructors below rather
// than building one by hand.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		MaxConnsPerEndpoint: defaultMaxConnsPerEndpoint,
		RPCTimeout:          defaultRPCTimeout,
	}
}

// WithProvider sets how the transport resolves a service name to endpoints.
func WithProvider(p EndpointProvider) Option {
	return func(o *Options) { o.Provider = p }
}

// WithMaxConnsPerEndpoint bounds the connection pool size per endpoint.
func WithMaxConnsPerEndpoint(n int) Option {
	return func(o *Options) { o.MaxConnsPerEndpoint = n }
}

// WithRPCTimeout sets the fallback deadline applied when the incoming
// context carries none.
func WithRPCTimeout(d time.Duration) Option {
	return func(o *Options) { o.RPCTimeout = d }
}

// WithDialOptions overrides the grpc.DialOption set used for every new
// connection (insecure credentials by default).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *Options) { o.DialOptions = opts }
}
