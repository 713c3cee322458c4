package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("[Persist] Redis connected: addr=%s", opts.Addr)
	return client, nil
}

// RedisPersister stores one JSON snapshot per user with a TTL, so an
// abandoned browser profile ages out on its own.
type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPersister(client *redis.Client, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, ttl: ttl}
}

func snapshotKey(userID string) string {
	return "zoomies:snapshot:" + userID
}

func (p *RedisPersister) Save(ctx context.Context, userID string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := p.client.Set(ctx, snapshotKey(userID), data, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	log.Printf("[Persist] Save OK: user=%s bytes=%d", userID, len(data))
	return nil
}

func (p *RedisPersister) Load(ctx context.Context, userID string) (*Snapshot, bool, error) {
	data, err := p.client.Get(ctx, snapshotKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		log.Printf("[Persist] Load discarded stale snapshot: user=%s version=%d", userID, snap.Version)
		return nil, false, nil
	}
	return &snap, true, nil
}

func (p *RedisPersister) Clear(ctx context.Context, userID string) error {
	if err := p.client.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
