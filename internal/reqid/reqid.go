package reqid

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// key is the context key under which the request ID lives.
type key struct{}

// generator wraps a PCG source behind a mutex; math/rand/v2's top-level
// functions are unseeded per-process, and reqid wants one seed per
// process rather than per call.
type generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newGenerator() *generator {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// fixed seed rather than panic on every request.
		binary.BigEndian.PutUint64(seed[:8], 0x5151c5ae1919aa)
	}
	s1 := binary.BigEndian.Uint64(seed[:8])
	s2 := binary.BigEndian.Uint64(seed[8:])
	return &generator{rnd: rand.New(rand.NewPCG(s1, s2))}
}

func (g *generator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Int64()
}

var gen = newGenerator()

// NewContext returns a copy of parent carrying a newly generated request
// ID, along with that ID for the caller to attach to outbound metadata,
// logs, or spans immediately.
func NewContext(parent context.Context) (context.Context, int64) {
	id := gen.next()
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the request ID stored by NewContext, reporting
// whether one was present at all.
func FromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(key{}).(int64)
	return id, ok
}
