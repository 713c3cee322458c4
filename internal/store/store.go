// Package store holds the client-side entity state, one store per domain.
//
// All writes go through reducer methods guarded by the store mutex; reads
// return snapshot copies. Fetch-shaped reducers are generation-gated so a
// late response can never overwrite newer state.
package store

import (
	"sync"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
)

// Status is the shared loading/error pair of a domain store.
// Loading and Err are mutually exclusive: pending clears Err, rejected
// clears Loading.
type Status struct {
	Loading bool
	Err     string
}

// Pagination tracks where a list collection stands.
// Page 0 means nothing fetched yet.
type Pagination struct {
	Page    int
	HasMore bool
}

// Collection is one paged entity list. Replacing and extending are the only
// two mutation shapes every list fetch resolves to.
type Collection[T any] struct {
	Items []T
	Pagination
}

// Reset installs a fresh first page.
func (c *Collection[T]) Reset(items []T, hasMore bool) {
	c.Items = items
	c.Page = 1
	c.HasMore = hasMore
}

// Extend appends a later page, preserving existing order.
func (c *Collection[T]) Extend(items []T, page int, hasMore bool) {
	c.Items = append(c.Items, items...)
	c.Page = page
	c.HasMore = hasMore
}

// CanFetchMore reports whether a fetch-more call should go out at all.
// Before the first page everything is fetchable.
func (c *Collection[T]) CanFetchMore() bool {
	return c.Page == 0 || c.HasMore
}

// Gate hands out per-slot generations. A fetch takes a generation when it
// starts; its settle is admitted only if no newer fetch for the same slot
// has started since.
type Gate struct {
	mu   sync.Mutex
	gens map[string]uint64
}

// Begin starts a new generation for slot and returns it.
func (g *Gate) Begin(slot string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gens == nil {
		g.gens = make(map[string]uint64)
	}
	g.gens[slot]++
	return g.gens[slot]
}

// Admit reports whether gen is still the latest generation for slot.
func (g *Gate) Admit(slot string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[slot] == gen
}

// base carries the plumbing every domain store shares: the mutex, the
// status pair, the generation gate and the action bus hookup.
type base struct {
	mu     sync.RWMutex
	status Status
	gate   Gate
	bus    *dispatch.Bus
	domain string
}

// begin marks an operation pending and claims a generation for its slot.
func (b *base) begin(op, slot string) uint64 {
	b.mu.Lock()
	b.status.Loading = true
	b.status.Err = ""
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhasePending})
	return b.gate.Begin(slot)
}

// reject records a failed operation. A stale rejection (superseded
// generation) is dropped entirely.
func (b *base) reject(op, slot string, gen uint64, msg string) {
	if !b.gate.Admit(slot, gen) {
		return
	}
	b.mu.Lock()
	b.status.Loading = false
	b.status.Err = msg
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhaseRejected, Err: msg})
}

// fulfill applies a reducer under the write lock if the generation is still
// current, and reports whether it was admitted.
func (b *base) fulfill(op, slot string, gen uint64, apply func()) bool {
	if !b.gate.Admit(slot, gen) {
		return false
	}
	b.mu.Lock()
	b.status.Loading = false
	apply()
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhaseFulfilled})
	return true
}

// mutate applies a synchronous reducer (optimistic or settle-time) that is
// not subject to generation gating.
func (b *base) mutate(op string, apply func()) {
	b.mu.Lock()
	b.status.Loading = false
	apply()
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhaseFulfilled})
}

// BeginMutation marks a non-fetch operation pending. Mutations are not
// generation-gated: they have no stale-fetch race.
func (b *base) BeginMutation(op string) {
	b.mu.Lock()
	b.status.Loading = true
	b.status.Err = ""
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhasePending})
}

// Fail records a failed mutation.
func (b *base) Fail(op, msg string) {
	b.mu.Lock()
	b.status.Loading = false
	b.status.Err = msg
	b.mu.Unlock()
	b.bus.Publish(dispatch.Action{Domain: b.domain, Op: op, Phase: dispatch.PhaseRejected, Err: msg})
}

// Status returns the store's loading/error pair.
func (b *base) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// removeByID filters every element whose id matches out of items.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}

// replaceByID swaps the element whose id matches for item, in place.
func replaceByID[T any](items []T, item T, idOf func(T) string) {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = item
			return
		}
	}
}
