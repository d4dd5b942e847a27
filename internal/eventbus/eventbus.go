package eventbus

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
)

// Handler processes events of type T.
type Handler[T any] func(context.Context, T)

// Bus fans an event out to every handler registered for its dynamic type.
// The HTTP server and the gRPC transport publish through the
// package-level global bus so none of them needs to know who, if anyone,
// is listening. Tracing (internal/otel) is just one subscriber among any
// number of others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]erasedHandler
}

// erasedHandler is a Handler[T] with its T erased to any; the generic
// Subscribe/Publish wrappers are what restore the concrete type on each
// side of the boundary.
type erasedHandler func(context.Context, any)

// New returns an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]erasedHandler)}
}

func (b *Bus) subscribe(t reflect.Type, h erasedHandler) (unsubscribe func()) {
	b.mu.Lock()
	b.handlers[t] = append(b.handlers[t], h)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		hs := b.handlers[t]
		for i := range hs {
			if reflect.ValueOf(hs[i]).Pointer() == reflect.ValueOf(h).Pointer() {
				b.handlers[t] = append(hs[:i], hs[i+1:]...)
				break
			}
		}
		if len(b.handlers[t]) == 0 {
			delete(b.handlers, t)
		}
	}
}

func (b *Bus) emit(ctx context.Context, e any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	hs := b.handlers[reflect.TypeOf(e)]
	snapshot := append([]erasedHandler(nil), hs...)
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(ctx, e)
	}
}

var global atomic.Pointer[Bus]

// Use installs b as the process-wide bus. A nil b turns Publish into a
// no-op, which is how tests and one-off tools opt out of event plumbing
// entirely.
func Use(b *Bus) { global.Store(b) }

// Subscribe registers h for every event of type T published through the
// global bus, returning a function that removes the registration again.
func Subscribe[T any](h Handler[T]) (unsubscribe func()) {
	b := global.Load()
	if b == nil {
		return func() {}
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	return b.subscribe(t, func(ctx context.Context, v any) { h(ctx, v.(T)) })
}

// Publish delivers e to every subscriber of type T on the global bus. A nil
// bus (no Use call yet) makes this a cheap no-op rather than a panic.
func Publish[T any](ctx context.Context, e T) {
	global.Load().emit(ctx, e)
}
