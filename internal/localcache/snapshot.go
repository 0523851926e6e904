package localcache

import (
	"encoding/json"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/logger"
)

const (
	// SnapshotKey is the cache key holding the serialized snapshot.
	SnapshotKey = "site_config_v1"

	// LiteContentMarker replaces blog post bodies when the full snapshot
	// does not fit in the cache. The real bodies stay safe in the remote
	// document; the marker keeps the structural metadata cached.
	LiteContentMarker = "Content in Cloud"
)

// SnapshotCache persists the whole site snapshot in the local KV store.
// Caching is best-effort: a failed save degrades to a lite snapshot and,
// if that fails too, is logged and dropped. It never fails a mutation.
type SnapshotCache struct {
	kv  KV
	log logger.Logger
}

func NewSnapshotCache(kv KV, log logger.Logger) *SnapshotCache {
	return &SnapshotCache{kv: kv, log: log}
}

// Load returns the cached snapshot, or ok=false when nothing usable is
// cached. A corrupt cache entry is treated as absent, not as an error:
// it is cleared and the caller falls back to defaults.
func (c *SnapshotCache) Load() (domain.Snapshot, bool) {
	raw, ok, err := c.kv.GetString(SnapshotKey)
	if err != nil {
		c.log.Warn("failed to read cached snapshot", logger.Error(err))
		return domain.Snapshot{}, false
	}
	if !ok {
		return domain.Snapshot{}, false
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		c.log.Warn("cached snapshot is corrupt, clearing it", logger.Error(err))
		if err := c.kv.Delete(SnapshotKey); err != nil {
			c.log.Warn("failed to clear corrupt snapshot", logger.Error(err))
		}
		return domain.Snapshot{}, false
	}
	return snap, true
}

// Save writes the snapshot to the cache. On failure it retries once with
// post bodies stripped, then gives up with a log line.
func (c *SnapshotCache) Save(snap domain.Snapshot) {
	if err := c.write(snap); err == nil {
		return
	} else {
		c.log.Warn("local cache full, saving lite snapshot", logger.Error(err))
	}

	lite := snap.Clone()
	for i := range lite.BlogPosts {
		lite.BlogPosts[i].Content = LiteContentMarker
	}
	if err := c.write(lite); err != nil {
		c.log.Error("failed to cache even lite snapshot", logger.Error(err))
	}
}

func (c *SnapshotCache) write(snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.kv.SetString(SnapshotKey, string(data))
}
