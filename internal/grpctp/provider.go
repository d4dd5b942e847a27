package grpctp

import (
	"context"
	"sync"
)

// EndpointProvider resolves a fully-qualified gRPC service name (e.g.
// "graphql.UserService") to the list of host:port addresses currently
// serving it. Implementations may back this with a service registry;
// they must be safe for concurrent use and return at least one endpoint
// or an error.
type EndpointProvider interface {
	Endpoints(ctx context.Context, service string) ([]string, error)
}

// StaticEndpoints is an EndpointProvider backed by a fixed, in-memory
// service-name-to-endpoints map, for deployments where the backend
// topology is known at startup rather than discovered at runtime.
type StaticEndpoints struct {
	mu        sync.RWMutex
	endpoints map[string][]string
}

// NewStaticEndpoints copies m so later mutation of the caller's map can't
// reach into the provider.
func NewStaticEndpoints(m map[string][]string) *StaticEndpoints {
	endpoints := make(map[string][]string, len(m))
	for service, addrs := range m {
		endpoints[service] = append([]string(nil), addrs...)
	}
	return &StaticEndpoints{endpoints: endpoints}
}

func (s *StaticEndpoints) Endpoints(ctx context.Context, service string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := s.endpoints[service]
	if len(addrs) == 0 {
		return nil, ErrNoEndpoints
	}
	return append([]string(nil), addrs...), nil
}
