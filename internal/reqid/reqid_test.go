package reqid

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())

	got, ok := FromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %d from context, got %d ok=%v", id, got, ok)
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("unexpected id in empty context not wrapped by NewContext")
	}
}

func TestNewContext_DistinctIDsAcrossCalls(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		_, id := NewContext(context.Background())
		if seen[id] {
			t.Fatalf("request id %d generated twice in %d draws", id, i+1)
		}
		seen[id] = true
	}
}
