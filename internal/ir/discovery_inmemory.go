package ir

import (
	"context"
	"fmt"
	"strings"
)

// InMemoryService describes one service's SDL source without touching disk;
// used by tests and by any caller that already has schema text in hand.
type InMemoryService struct {
	// Package is a dot-separated package path, e.g. "com.example.billing".
	Package string
	Name    string
	Content string
}

// InMemoryDiscovery implements Discovery over a fixed, pre-supplied set of
// services. It never changes after NewInMemoryDiscovery returns.
type InMemoryDiscovery struct {
	metas    map[ServiceID]*ServiceMetadata
	contents map[ServiceID]string
}

// NewInMemoryDiscovery indexes the given services by name.
func NewInMemoryDiscovery(services []InMemoryService) *InMemoryDiscovery {
	d := &InMemoryDiscovery{
		metas:    make(map[ServiceID]*ServiceMetadata, len(services)),
		contents: make(map[ServiceID]string, len(services)),
	}
	for _, svc := range services {
		id := ServiceID(svc.Name)
		pkgPath := strings.Split(svc.Package, ".")
		d.metas[id] = &ServiceMetadata{
			ID:       id,
			Name:     svc.Name,
			PkgPath:  pkgPath,
			FilePath: strings.Join(pkgPath, "/") + "/" + svc.Name + ".graphql",
		}
		d.contents[id] = svc.Content
	}
	return d
}

func (d *InMemoryDiscovery) ListMetadata(ctx context.Context) ([]*ServiceMetadata, error) {
	out := make([]*ServiceMetadata, 0, len(d.metas))
	for _, meta := range d.metas {
		out = append(out, meta)
	}
	return out, nil
}

func (d *InMemoryDiscovery) ReadServiceSDL(ctx context.Context, serviceID ServiceID) (string, error) {
	content, ok := d.contents[serviceID]
	if !ok {
		return "", fmt.Errorf("service %q not found", serviceID)
	}
	return content, nil
}
