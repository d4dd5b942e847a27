package grpcrt

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// pairKey indexes a table by (objectType, field), the lookup shape every
// Registry method takes.
type pairKey = [2]string

// pairTable is a (objectType, field) -> V lookup table, the repeated
// shape behind every descriptor kind MockRegistry serves.
type pairTable[V any] map[pairKey]V

func newPairTable[V any]() pairTable[V] { return make(pairTable[V]) }

func (t pairTable[V]) get(objectType, field string) V { return t[pairKey{objectType, field}] }

func (t pairTable[V]) set(objectType, field string, v V) { t[pairKey{objectType, field}] = v }

// MockRegistry is a test double for Registry: descriptors are registered
// by hand per (objectType, field) key instead of being discovered from a
// compiled proto file set.
type MockRegistry struct {
	sourceFields    pairTable[protoreflect.FieldDescriptor]
	singleResolvers pairTable[protoreflect.MethodDescriptor]
	batchResolvers  pairTable[protoreflect.MethodDescriptor]
	singleLoaders   pairTable[protoreflect.MethodDescriptor]
	batchLoaders    pairTable[protoreflect.MethodDescriptor]
	requestMap      pairTable[map[string]string]
	sourceMessages  map[string]protoreflect.MessageDescriptor
}

// NewMockRegistry returns an empty MockRegistry ready for Register* calls.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		sourceFields:    newPairTable[protoreflect.FieldDescriptor](),
		singleResolvers: newPairTable[protoreflect.MethodDescriptor](),
		batchResolvers:  newPairTable[protoreflect.MethodDescriptor](),
		singleLoaders:   newPairTable[protoreflect.MethodDescriptor](),
		batchLoaders:    newPairTable[protoreflect.MethodDescriptor](),
		requestMap:      newPairTable[map[string]string](),
		sourceMessages:  map[string]protoreflect.MessageDescriptor{},
	}
}

// RegisterSourceField maps (objectType, graphqlField) to a field descriptor.
func (m *MockRegistry) RegisterSourceField(objectType, graphqlField string, fd protoreflect.FieldDescriptor) *MockRegistry {
	m.sourceFields.set(objectType, graphqlField, fd)
	return m
}

// RegisterSingleResolver maps (objectType, field) to a single resolver method.
func (m *MockRegistry) RegisterSingleResolver(objectType, field string, md protoreflect.MethodDescriptor) *MockRegistry {
	m.singleResolvers.set(objectType, field, md)
	return m
}

// RegisterBatchResolver maps (objectType, field) to a batch resolver method.
func (m *MockRegistry) RegisterBatchResolver(objectType, field string, md protoreflect.MethodDescriptor) *MockRegistry {
	m.batchResolvers.set(objectType, field, md)
	return m
}

// RegisterSingleLoader maps (objectType, field) to a single loader method.
func (m *MockRegistry) RegisterSingleLoader(objectType, field string, md protoreflect.MethodDescriptor) *MockRegistry {
	m.singleLoaders.set(objectType, field, md)
	return m
}

// RegisterBatchLoader maps (objectType, field) to a batch loader method.
func (m *MockRegistry) RegisterBatchLoader(objectType, field string, md protoreflect.MethodDescriptor) *MockRegistry {
	m.batchLoaders.set(objectType, field, md)
	return m
}

// RegisterSourceMessage maps a GraphQL object type to its proto message descriptor.
func (m *MockRegistry) RegisterSourceMessage(objectType string, md protoreflect.MessageDescriptor) *MockRegistry {
	m.sourceMessages[objectType] = md
	return m
}

// RegisterRequestSourceMap maps (objectType, field) to a request-field ->
// parent-source-field mapping, e.g. {"authorId": "id"} to copy parent.id
// into request.authorId when the query itself didn't supply it.
func (m *MockRegistry) RegisterRequestSourceMap(objectType, field string, mp map[string]string) *MockRegistry {
	m.requestMap.set(objectType, field, mp)
	return m
}

func (m *MockRegistry) GetSourceFieldDescriptor(objectType, graphqlField string) protoreflect.FieldDescriptor {
	return m.sourceFields.get(objectType, graphqlField)
}

func (m *MockRegistry) GetSingleResolverDescriptor(objectType, field string) protoreflect.MethodDescriptor {
	return m.singleResolvers.get(objectType, field)
}

func (m *MockRegistry) GetBatchResolverDescriptor(objectType, field string) protoreflect.MethodDescriptor {
	return m.batchResolvers.get(objectType, field)
}

func (m *MockRegistry) GetSingleLoaderDescriptor(objectType, field string) protoreflect.MethodDescriptor {
	return m.singleLoaders.get(objectType, field)
}

func (m *MockRegistry) GetBatchLoaderDescriptor(objectType, field string) protoreflect.MethodDescriptor {
	return m.batchLoaders.get(objectType, field)
}

func (m *MockRegistry) GetRequestFieldSourceMapping(objectType, field string) map[string]string {
	return m.requestMap.get(objectType, field)
}

func (m *MockRegistry) GetSourceMessageDescriptor(objectType string) protoreflect.MessageDescriptor {
	return m.sourceMessages[objectType]
}

var _ Registry = (*MockRegistry)(nil)
