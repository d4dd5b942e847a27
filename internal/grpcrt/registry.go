package grpcrt

import "google.golang.org/protobuf/reflect/protoreflect"

// Registry is the lookup side of the generated proto layer: given a
// GraphQL object type and field name, it answers which proto descriptor
// (if any) backs that field, so the runtime never has to know concrete
// generated types to dispatch a call.
type Registry interface {
	// GetSourceFieldDescriptor returns the proto field descriptor backing
	// a projection field (one read directly off the parent message), or
	// nil when the field isn't source-backed.
	GetSourceFieldDescriptor(objectType, graphqlField string) protoreflect.FieldDescriptor

	// GetSourceMessageDescriptor returns the Source message descriptor for
	// a GraphQL object/interface/union type name, or nil when unknown.
	GetSourceMessageDescriptor(objectType string) protoreflect.MessageDescriptor

	// GetSingleResolverDescriptor returns the unary method descriptor for
	// a field resolved one parent at a time.
	GetSingleResolverDescriptor(objectType, field string) protoreflect.MethodDescriptor
	// GetBatchResolverDescriptor returns the method descriptor for a field
	// resolved across every parent sharing a depth in one call.
	GetBatchResolverDescriptor(objectType, field string) protoreflect.MethodDescriptor

	// GetSingleLoaderDescriptor returns the unary method descriptor for a
	// field resolved by key through a loader rather than a resolver.
	GetSingleLoaderDescriptor(objectType, field string) protoreflect.MethodDescriptor
	// GetBatchLoaderDescriptor returns the method descriptor for the
	// batched form of the same loader.
	GetBatchLoaderDescriptor(objectType, field string) protoreflect.MethodDescriptor

	// GetRequestFieldSourceMapping returns, for a resolver or loader
	// field, the mapping from a request field name to the name of a
	// field on the parent object it should be populated from (an
	// explicit @resolve(with: {...}) or @loadBy(with: {...}) binding).
	// A nil result means no such mapping exists beyond the arguments the
	// query itself supplies.
	GetRequestFieldSourceMapping(objectType, field string) map[string]string
}
