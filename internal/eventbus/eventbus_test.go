package eventbus

import (
	"context"
	"testing"
)

type ping struct{ n int }

func TestPublishSubscribe(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []int
	unsub := Subscribe(func(ctx context.Context, e ping) { got = append(got, e.n) })
	Publish(context.Background(), ping{1})
	Publish(context.Background(), ping{2})
	unsub()
	Publish(context.Background(), ping{3})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestUnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	Use(New())
	defer Use(nil)

	count := func(dst *int) Handler[ping] {
		return func(ctx context.Context, e ping) { *dst++ }
	}
	var a, b int
	Subscribe(count(&a))
	unsubB := Subscribe(count(&b))
	unsubB()
	Publish(context.Background(), ping{1})

	if a != 1 || b != 0 {
		t.Fatalf("expected only the first handler to fire, got a=%d b=%d", a, b)
	}
}

func TestPublishWithoutBus(t *testing.T) {
	Use(nil)
	Publish(context.Background(), ping{1})
}
