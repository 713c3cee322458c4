package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestBus_DeliversInPublishOrder(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	var got []string
	bus.Subscribe(func(a Action) {
		mu.Lock()
		got = append(got, a.Op)
		mu.Unlock()
	})

	bus.Start(context.Background())
	for _, op := range []string{"discover", "create", "toggle_like"} {
		bus.Publish(Action{Domain: "feed", Op: op, Phase: PhasePending})
	}
	bus.Stop()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 {
		t.Fatalf("delivered %d actions, want 3", len(got))
	}
	for i, want := range []string{"discover", "create", "toggle_like"} {
		if got[i] != want {
			t.Errorf("action %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestBus_StopFlushesQueuedActions(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	count := 0
	bus.Subscribe(func(Action) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	// Publish before Start: everything sits in the buffer.
	for i := 0; i < 5; i++ {
		bus.Publish(Action{Domain: "clubs", Op: "join", Phase: PhaseFulfilled})
	}
	bus.Start(context.Background())
	bus.Stop()

	mu.Lock()
	defer mu.Unlock()
	if count != 5 {
		t.Errorf("delivered %d actions, want all 5 flushed on Stop", count)
	}
}

func TestBus_NilSafe(t *testing.T) {
	var bus *Bus
	bus.Publish(Action{Domain: "feed", Op: "like"}) // must not panic
	bus.Stop()
}

func TestBus_FullBufferDropsWithoutBlocking(t *testing.T) {
	bus := NewBus(1)
	// Never started: the buffer holds one action, the rest are dropped.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			bus.Publish(Action{Domain: "rides", Op: "live"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}
}

func TestBus_PublishStampsTime(t *testing.T) {
	bus := NewBus(4)

	var mu sync.Mutex
	var at time.Time
	bus.Subscribe(func(a Action) {
		mu.Lock()
		at = a.At
		mu.Unlock()
	})

	bus.Start(context.Background())
	bus.Publish(Action{Domain: "user", Op: "follow", Phase: PhaseFulfilled})
	bus.Stop()

	mu.Lock()
	defer mu.Unlock()
	if at.IsZero() {
		t.Error("published action has no timestamp")
	}
}
