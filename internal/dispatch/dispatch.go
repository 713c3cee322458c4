// Package dispatch carries store phase changes to interested subscribers
// (logging, persistence) without coupling the stores to them.
package dispatch

import (
	"context"
	"log"
	"sync"
	"time"
)

// Phase is the settle phase of an async operation.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// Action describes one state transition in a domain store.
type Action struct {
	Domain string `json:"domain"` // "clubs", "rides", "market", "feed", "user"
	Op     string `json:"op"`     // "discover", "create", "toggle_like", ...
	Phase  Phase  `json:"phase"`
	Err    string `json:"err,omitempty"` // set only when Phase is rejected
	At     time.Time
}

// SubscriberFunc receives actions in publish order.
type SubscriberFunc func(Action)

const defaultBuffer = 256

// Bus fans actions out to subscribers from a single drain goroutine.
// One goroutine, not a pool: subscribers rely on seeing actions in the
// order they were published.
type Bus struct {
	ch   chan Action
	subs []SubscriberFunc

	startOnce sync.Once
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{ch: make(chan Action, buffer)}
}

// Subscribe registers a subscriber. Must be called before Start.
func (b *Bus) Subscribe(fn SubscriberFunc) {
	b.subs = append(b.subs, fn)
}

// Start begins draining the action channel. Call Stop to shut down.
func (b *Bus) Start(ctx context.Context) {
	b.startOnce.Do(func() {
		ctx, b.cancel = context.WithCancel(ctx)
		b.wg.Add(1)
		go b.drain(ctx)
	})
}

func (b *Bus) drain(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			// Deliver whatever is already queued, then exit.
			for {
				select {
				case a := <-b.ch:
					b.deliver(a)
				default:
					return
				}
			}
		case a := <-b.ch:
			b.deliver(a)
		}
	}
}

func (b *Bus) deliver(a Action) {
	for _, fn := range b.subs {
		fn(a)
	}
}

// Stop shuts the drain goroutine down after flushing queued actions.
func (b *Bus) Stop() {
	if b == nil || b.cancel == nil {
		return
	}
	b.cancel()
	b.wg.Wait()
}

// Publish enqueues an action without blocking the store that emitted it.
// A full buffer drops the action; state itself is never affected.
func (b *Bus) Publish(a Action) {
	if b == nil {
		return
	}
	if a.At.IsZero() {
		a.At = time.Now()
	}
	select {
	case b.ch <- a:
	default:
		log.Printf("[Dispatch] buffer full, dropped action domain=%s op=%s phase=%s", a.Domain, a.Op, a.Phase)
	}
}

// LogTap is a subscriber that mirrors every action to the process log.
func LogTap(a Action) {
	if a.Phase == PhaseRejected {
		log.Printf("[Dispatch] %s/%s %s: %s", a.Domain, a.Op, a.Phase, a.Err)
		return
	}
	log.Printf("[Dispatch] %s/%s %s", a.Domain, a.Op, a.Phase)
}
