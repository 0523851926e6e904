package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moscowmix/sitesync/internal/domain"
)

// DefaultDocumentKey is the fixed key holding the whole-site configuration
// document.
const DefaultDocumentKey = "sitesync:config:live"

// Store is the remote side of the sync engine: one JSON document under one
// key, replaced wholesale on every write. No TTL, since the document is
// the site's source of truth, not a cache.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore creates a document store. An empty key falls back to
// DefaultDocumentKey.
func NewStore(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultDocumentKey
	}
	return &Store{client: client, key: key}
}

// Get fetches the configuration document. found is false when the
// document has never been written.
func (s *Store) Get(ctx context.Context) (domain.Snapshot, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, fmt.Errorf("failed to get config document: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("failed to unmarshal config document: %w", err)
	}
	return snap, true, nil
}

// Put replaces the configuration document.
func (s *Store) Put(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal config document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to put config document: %w", err)
	}
	return nil
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
