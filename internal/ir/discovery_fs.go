package ir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystemDiscovery walks a directory tree and treats every *.graphql
// file as one service definition, named after the file (minus extension).
type FileSystemDiscovery struct {
	rootPackage string
	sdlPaths    map[ServiceID]string
	metas       map[ServiceID]*ServiceMetadata
}

// NewFileSystemDiscovery scans rootDir once, at construction time, and
// caches the resulting service list; ListMetadata/ReadServiceSDL never
// touch the filesystem again after this returns.
func NewFileSystemDiscovery(ctx context.Context, rootDir string, rootPackage string) (*FileSystemDiscovery, error) {
	if rootPackage == "" {
		return nil, fmt.Errorf("root package cannot be empty")
	}

	d := &FileSystemDiscovery{
		rootPackage: rootPackage,
		sdlPaths:    make(map[ServiceID]string),
		metas:       make(map[ServiceID]*ServiceMetadata),
	}

	walkErr := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".graphql" {
			return nil
		}
		return d.register(rootDir, path, entry.Name())
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", rootDir, walkErr)
	}
	return d, nil
}

func (d *FileSystemDiscovery) register(rootDir, absPath, fileName string) error {
	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		return fmt.Errorf("failed to get relative path for %q: %w", absPath, err)
	}

	svcName := strings.TrimSuffix(fileName, ".graphql")
	svcID := ServiceID(svcName)

	d.sdlPaths[svcID] = absPath
	d.metas[svcID] = &ServiceMetadata{
		ID:       svcID,
		Name:     svcName,
		PkgPath:  d.packagePathFor(relPath),
		FilePath: relPath,
	}
	return nil
}

// packagePathFor turns a path relative to the discovery root into a
// dotted-root-plus-directory-segments package path, e.g. rootPackage
// "com.example" and relPath "billing/invoice.graphql" yields
// ["com", "example", "billing"].
func (d *FileSystemDiscovery) packagePathFor(relPath string) []string {
	parts := strings.Split(d.rootPackage, ".")
	dir := filepath.Dir(relPath)
	if dir == "." {
		return parts
	}
	return append(parts, strings.Split(dir, string(filepath.Separator))...)
}

// ListMetadata returns the cached service metadata in no particular order;
// callers that need a stable order sort by Name or ID themselves.
func (d *FileSystemDiscovery) ListMetadata(ctx context.Context) ([]*ServiceMetadata, error) {
	out := make([]*ServiceMetadata, 0, len(d.metas))
	for _, meta := range d.metas {
		out = append(out, meta)
	}
	return out, nil
}

// ReadServiceSDL reads the GraphQL SDL content for a given service.
func (d *FileSystemDiscovery) ReadServiceSDL(ctx context.Context, serviceID ServiceID) (string, error) {
	path, ok := d.sdlPaths[serviceID]
	if !ok {
		return "", fmt.Errorf("service %q not found", serviceID)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read service SDL for %q: %w", serviceID, err)
	}
	return string(content), nil
}

// Load discovers and builds a Project from a directory of *.graphql files
// in one call, for callers that don't need the Discovery handle itself.
func Load(rootDir string, rootPackage string) (*Project, error) {
	ctx := context.Background()
	discovery, err := NewFileSystemDiscovery(ctx, rootDir, rootPackage)
	if err != nil {
		return nil, err
	}
	return Build(ctx, discovery)
}
