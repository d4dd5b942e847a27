package grpcrt

import (
	"context"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Transport is the one method grpcrt needs from a gRPC client: given a
// method descriptor and a populated request message, dial whatever
// backend owns that service and return the response message. Swapping
// internal/grpctp.Transport for a test fake means nothing above this
// interface (the runtime, the executor) needs to change.
//
// Implementations must be safe for concurrent use: independent fields at
// the same depth may call Call from separate goroutines.
type Transport interface {
	Call(ctx context.Context, method protoreflect.MethodDescriptor, request protoreflect.Message) (protoreflect.Message, error)
}
