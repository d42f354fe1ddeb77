package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

// Snapshot names used across the application.
const (
	SnapshotCart        = "cart"
	SnapshotSnanHistory = "snan_history"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type snapshotKeyer interface {
	SnapshotKey(name, userID string) string
}

// Snapshots caches per-user JSON snapshots of read-heavy collections (cart,
// ceremony history). Every mutating operation on the underlying collection
// must Invalidate its snapshot so the next cold read converges on the
// database rather than serving stale data.
type Snapshots struct {
	store snapshotStore
	keyer snapshotKeyer
	ttl   time.Duration
}

// Store exposes the read/write surface domain services depend on.
type Store interface {
	Get(ctx context.Context, name, userID string, dest any) (bool, error)
	Put(ctx context.Context, name, userID string, value any) error
	Invalidate(ctx context.Context, name, userID string) error
}

// NewSnapshots builds a snapshot cache backed by the provided store.
func NewSnapshots(store snapshotStore, keyer snapshotKeyer, ttl time.Duration) (*Snapshots, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	if keyer == nil {
		return nil, fmt.Errorf("snapshot keyer is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &Snapshots{store: store, keyer: keyer, ttl: ttl}, nil
}

// Get deserializes the cached snapshot into dest. A miss is not an error.
func (s *Snapshots) Get(ctx context.Context, name, userID string, dest any) (bool, error) {
	raw, err := s.store.Get(ctx, s.keyer.SnapshotKey(name, userID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return true, nil
}

// Put serializes value and stores it under the user's snapshot key.
func (s *Snapshots) Put(ctx context.Context, name, userID string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}
	return s.store.Set(ctx, s.keyer.SnapshotKey(name, userID), string(raw), s.ttl)
}

// Invalidate removes the user's snapshot so the next read hits the database.
func (s *Snapshots) Invalidate(ctx context.Context, name, userID string) error {
	return s.store.Del(ctx, s.keyer.SnapshotKey(name, userID))
}
