package reqid

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %q from context, got %q ok=%v", id, got, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("unexpected id in empty context")
	}
}

func TestNestedContextKeepsID(t *testing.T) {
	ctx, id := NewContext(context.Background())
	ctx2, id2 := NewContext(ctx)
	if id2 != id {
		t.Fatalf("nested context minted a new id: %q != %q", id2, id)
	}
	if ctx2 != ctx {
		t.Fatalf("nested context should be returned unchanged")
	}
}
