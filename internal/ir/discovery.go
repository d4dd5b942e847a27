package ir

import (
	"context"
)

// ServiceMetadata identifies one service's SDL source without loading its
// content. ListMetadata returns these cheaply so a caller can decide which
// services to actually read before paying for ReadServiceSDL.
type ServiceMetadata struct {
	ID       ServiceID
	Name     string
	PkgPath  []string
	FilePath string
}

// Discovery locates the set of GraphQL service definitions that make up a
// project and lets callers fetch each one's SDL text on demand. Build
// drives a Discovery to assemble a merged Project.
type Discovery interface {
	ListMetadata(ctx context.Context) ([]*ServiceMetadata, error)
	ReadServiceSDL(ctx context.Context, id ServiceID) (string, error)
}
