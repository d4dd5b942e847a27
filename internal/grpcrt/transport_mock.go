package grpcrt

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// CallRecord captures one Call invocation for later assertion.
type CallRecord struct {
	Method     protoreflect.MethodDescriptor
	FullMethod string
	Request    proto.Message
}

// MockTransport replays a fixed queue of responses (and, optionally,
// errors) for successive Call invocations and records every call it saw,
// so a test can both drive the runtime and inspect what it sent.
type MockTransport struct {
	mu   sync.Mutex
	next int

	queue []queuedCall
	calls []CallRecord
}

type queuedCall struct {
	resp protoreflect.Message
	err  error
}

// NewMockTransport returns a transport that answers Call with resp[0],
// resp[1], ... in order, with no errors.
func NewMockTransport(resp ...protoreflect.Message) *MockTransport {
	queue := make([]queuedCall, len(resp))
	for i, r := range resp {
		queue[i] = queuedCall{resp: r}
	}
	return &MockTransport{queue: queue}
}

// NewMockTransportWithErrors pairs resp[i] with errs[i]: when errs[i] is
// non-nil that call fails and resp[i] is ignored. A shorter errs slice
// leaves later calls error-free.
func NewMockTransportWithErrors(resp []protoreflect.Message, errs []error) *MockTransport {
	n := len(resp)
	if len(errs) > n {
		n = len(errs)
	}
	queue := make([]queuedCall, n)
	for i := range queue {
		if i < len(resp) {
			queue[i].resp = resp[i]
		}
		if i < len(errs) {
			queue[i].err = errs[i]
		}
	}
	return &MockTransport{queue: queue}
}

func (m *MockTransport) Call(_ context.Context, method protoreflect.MethodDescriptor, request protoreflect.Message) (protoreflect.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, CallRecord{
		Method:     method,
		FullMethod: fullMethodName(method),
		Request:    cloneRequest(request),
	})

	if m.next >= len(m.queue) {
		return nil, fmt.Errorf("mock transport: no more responses")
	}
	call := m.queue[m.next]
	m.next++
	if call.err != nil {
		return nil, call.err
	}
	return call.resp, nil
}

// Calls returns a snapshot of every recorded invocation, in call order.
func (m *MockTransport) Calls() []CallRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CallRecord, len(m.calls))
	copy(out, m.calls)
	return out
}

func fullMethodName(method protoreflect.MethodDescriptor) string {
	if method == nil {
		return ""
	}
	return fmt.Sprintf("/%s/%s", method.Parent().FullName(), method.Name())
}

func cloneRequest(request protoreflect.Message) proto.Message {
	if request == nil {
		return nil
	}
	return proto.Clone(request.Interface())
}
