package protoreg

import (
	"os"
	"path"

	"github.com/jhump/protoreflect/v2/protoprint"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Render writes every service file in the registry to outDir as a .proto
// source, creating intermediate directories as needed.
func Render(r *Registry, outDir string) error {
	pp := protoprint.Printer{}
	for _, fd := range r.GetAllServiceFiles() {
		if err := renderProtoFile(&pp, fd, path.Join(outDir, fd.Path())); err != nil {
			return err
		}
	}
	return nil
}

func renderProtoFile(pp *protoprint.Printer, fd protoreflect.FileDescriptor, outPath string) error {
	if err := os.MkdirAll(path.Dir(outPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return pp.PrintProtoFile(fd, f)
}
