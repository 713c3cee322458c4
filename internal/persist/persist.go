// Package persist saves a snapshot of the client state so the next session
// can render something meaningful before its first network round trip.
package persist

import (
	"context"
	"sync"
	"time"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// SnapshotVersion guards against loading snapshots written by an older
// state shape. Bump when Snapshot changes incompatibly.
const SnapshotVersion = 1

// Snapshot is the persisted subset of the client state: the lists the app
// renders first. Detail records and pagination are deliberately not
// persisted; they are refetched.
type Snapshot struct {
	Version int           `json:"version"`
	SavedAt time.Time     `json:"saved_at"`
	Profile *model.Profile `json:"profile,omitempty"`
	MyClubs []model.Club  `json:"my_clubs,omitempty"`
	Posts   []model.Post  `json:"posts,omitempty"`
}

// Persister stores and retrieves one snapshot per user.
type Persister interface {
	Save(ctx context.Context, userID string, snap *Snapshot) error
	// Load returns (nil, false, nil) when no snapshot exists.
	Load(ctx context.Context, userID string) (*Snapshot, bool, error)
	Clear(ctx context.Context, userID string) error
}

// MemoryPersister keeps snapshots in process memory. Used in tests and as
// the fallback when no Redis URL is configured.
type MemoryPersister struct {
	mu    sync.Mutex
	snaps map[string]*Snapshot
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{snaps: make(map[string]*Snapshot)}
}

func (m *MemoryPersister) Save(_ context.Context, userID string, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *snap
	m.snaps[userID] = &cp
	return nil
}

func (m *MemoryPersister) Load(_ context.Context, userID string) (*Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[userID]
	if !ok {
		return nil, false, nil
	}
	cp := *snap
	return &cp, true, nil
}

func (m *MemoryPersister) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, userID)
	return nil
}
