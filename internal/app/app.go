// Package app wires the client together: config, session, API transport,
// domain stores, services and the persistence hookup.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xride-labs/zoomies-web-sub000/internal/admin"
	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/config"
	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/persist"
	"github.com/xride-labs/zoomies-web-sub000/internal/service"
	"github.com/xride-labs/zoomies-web-sub000/internal/session"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// App is the assembled client. One App per signed-in session.
type App struct {
	Config  *config.Config
	Session *session.Session
	Bus     *dispatch.Bus

	Clubs  *service.ClubService
	Rides  *service.RideService
	Market *service.MarketService
	Feed   *service.FeedService
	User   *service.UserService
	Admin  *admin.Service

	persister persist.Persister

	clubStore *store.ClubStore
	feedStore *store.FeedStore
	userStore *store.UserStore
}

// New assembles an App from configuration. The bus is started; call Close
// when done.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// No token means an anonymous dev session, e.g. against the fake backend.
	sess := &session.Session{}
	if cfg.APIToken != "" {
		var err error
		sess, err = session.FromToken(cfg.APIToken)
		if err != nil {
			return nil, fmt.Errorf("failed to read session token: %w", err)
		}
		if sess.Expired(time.Now()) {
			log.Printf("[App] session token expired at %v, requests will be rejected", sess.ExpiresAt)
		}
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.RequestTimeout)

	bus := dispatch.NewBus(0)
	bus.Subscribe(dispatch.LogTap)

	clubStore := store.NewClubStore(bus)
	rideStore := store.NewRideStore(bus)
	marketStore := store.NewMarketStore(bus)
	feedStore := store.NewFeedStore(bus)
	userStore := store.NewUserStore(bus)

	var persister persist.Persister
	if cfg.RedisURL != "" {
		rdb, err := persist.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		persister = persist.NewRedisPersister(rdb, cfg.SnapshotTTL)
	} else {
		persister = persist.NewMemoryPersister()
	}

	bus.Start(ctx)

	return &App{
		Config:  cfg,
		Session: sess,
		Bus:     bus,

		Clubs:  service.NewClubService(api.NewClubsClient(client), clubStore, cfg.DiscoverPageSize),
		Rides:  service.NewRideService(api.NewRidesClient(client), rideStore, cfg.DiscoverPageSize, sess.UserID),
		Market: service.NewMarketService(api.NewMarketClient(client), marketStore, cfg.DiscoverPageSize),
		Feed:   service.NewFeedService(api.NewFeedClient(client), feedStore, cfg.FeedPageSize),
		User:   service.NewUserService(api.NewUserClient(client), userStore),
		Admin:  admin.NewService(api.NewAdminClient(client)),

		persister: persister,
		clubStore: clubStore,
		feedStore: feedStore,
		userStore: userStore,
	}, nil
}

// Hydrate restores the persisted snapshot, if any, so the first render has
// data before any fetch settles. Missing snapshots are not an error.
func (a *App) Hydrate(ctx context.Context) error {
	start := time.Now()
	snap, ok, err := a.persister.Load(ctx, a.Session.UserID)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !ok {
		return nil
	}

	if snap.Profile != nil {
		a.userStore.SetProfile(a.userStore.BeginProfile(), snap.Profile)
	}
	if len(snap.MyClubs) > 0 {
		a.clubStore.SetMine(a.clubStore.BeginMine(), snap.MyClubs)
	}
	if len(snap.Posts) > 0 {
		a.feedStore.ApplyFeed(a.feedStore.BeginFeed(), &model.FeedPage{Posts: snap.Posts, HasMore: true}, 1)
	}

	log.Printf("[App] Hydrate OK: user=%s posts=%d clubs=%d duration=%v",
		a.Session.UserID, len(snap.Posts), len(snap.MyClubs), time.Since(start))
	return nil
}

// Snapshot persists the current first-render state.
func (a *App) Snapshot(ctx context.Context) error {
	snap := &persist.Snapshot{
		Version: persist.SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Profile: a.userStore.Profile(),
		MyClubs: a.clubStore.MyClubs(),
		Posts:   a.feedStore.Posts(),
	}
	return a.persister.Save(ctx, a.Session.UserID, snap)
}

// Close flushes the action bus.
func (a *App) Close() {
	a.Bus.Stop()
}
