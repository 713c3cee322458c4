package persist

import (
	"context"
	"testing"
	"time"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func TestMemoryPersister_RoundTrip(t *testing.T) {
	p := NewMemoryPersister()
	ctx := context.Background()

	snap := &Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now(),
		Profile: &model.Profile{ID: "usr-viewer", Username: "dustrider"},
		MyClubs: []model.Club{{ID: "club-hill", Name: "Hill Street Riders"}},
		Posts:   []model.Post{{ID: "post-1"}},
	}
	if err := p.Save(ctx, "usr-viewer", snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := p.Load(ctx, "usr-viewer")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Profile.Username != "dustrider" || len(got.MyClubs) != 1 || len(got.Posts) != 1 {
		t.Errorf("snapshot = %+v, want the saved state back", got)
	}
}

func TestMemoryPersister_MissingUser(t *testing.T) {
	p := NewMemoryPersister()

	got, ok, err := p.Load(context.Background(), "usr-unknown")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || got != nil {
		t.Errorf("load = (%v, %v), want (nil, false) for a user without a snapshot", got, ok)
	}
}

func TestMemoryPersister_Clear(t *testing.T) {
	p := NewMemoryPersister()
	ctx := context.Background()

	p.Save(ctx, "usr-viewer", &Snapshot{Version: SnapshotVersion})
	if err := p.Clear(ctx, "usr-viewer"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, ok, _ := p.Load(ctx, "usr-viewer"); ok {
		t.Error("snapshot must be gone after Clear")
	}
}

func TestMemoryPersister_LoadReturnsCopy(t *testing.T) {
	p := NewMemoryPersister()
	ctx := context.Background()

	p.Save(ctx, "usr-viewer", &Snapshot{Version: SnapshotVersion, SavedAt: time.Now()})

	first, _, _ := p.Load(ctx, "usr-viewer")
	first.Version = 99

	second, _, _ := p.Load(ctx, "usr-viewer")
	if second.Version != SnapshotVersion {
		t.Error("mutating a loaded snapshot must not affect the stored one")
	}
}

func TestMemoryPersister_SnapshotsAreScopedPerUser(t *testing.T) {
	p := NewMemoryPersister()
	ctx := context.Background()

	p.Save(ctx, "usr-a", &Snapshot{Version: SnapshotVersion, Profile: &model.Profile{ID: "usr-a"}})
	p.Save(ctx, "usr-b", &Snapshot{Version: SnapshotVersion, Profile: &model.Profile{ID: "usr-b"}})
	p.Clear(ctx, "usr-a")

	if _, ok, _ := p.Load(ctx, "usr-a"); ok {
		t.Error("usr-a's snapshot must be cleared")
	}
	got, ok, _ := p.Load(ctx, "usr-b")
	if !ok || got.Profile.ID != "usr-b" {
		t.Error("usr-b's snapshot must survive usr-a's clear")
	}
}
