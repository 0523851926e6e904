package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/localcache"
	"github.com/moscowmix/sitesync/internal/logger"
)

type memRemote struct {
	mu    sync.Mutex
	doc   domain.Snapshot
	found bool
}

func (m *memRemote) Get(ctx context.Context) (domain.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone(), m.found, nil
}

func (m *memRemote) Put(ctx context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc, m.found = snap.Clone(), true
	return nil
}

func newTestStore(t *testing.T, seed domain.Snapshot, now time.Time) (*engine.Store, *memRemote) {
	t.Helper()
	log := logger.New("error", false)
	kv, err := localcache.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cache := localcache.NewSnapshotCache(kv, log)
	cache.Save(seed)
	remote := &memRemote{doc: seed.Clone(), found: true}
	store := engine.New(remote, cache, localcache.NewSaveTracker(kv, log), seed, log, engine.Options{
		Now: func() time.Time { return now },
	})
	return store, remote
}

func TestPublisherScanPromotesDuePosts(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	seed := domain.Snapshot{
		BlogPosts: []domain.BlogPost{
			{ID: "due", Title: "Due", Status: domain.StatusScheduled,
				ScheduledDate: now.Add(-24 * time.Hour).Format(time.RFC3339)},
			{ID: "future", Title: "Future", Status: domain.StatusScheduled,
				ScheduledDate: now.Add(24 * time.Hour).Format(time.RFC3339)},
		},
	}
	store, remote := newTestStore(t, seed, now)
	pub := NewPublisher(store, logger.New("error", false), time.Minute)

	pub.Scan(context.Background())

	snap := store.Snapshot()
	if got := snap.BlogPosts[snap.PostIndex("due")].Status; got != domain.StatusPublished {
		t.Errorf("due post status = %q, want published", got)
	}
	if got := snap.BlogPosts[snap.PostIndex("future")].Status; got != domain.StatusScheduled {
		t.Errorf("future post status = %q, want still scheduled", got)
	}

	// The promotion reached the remote document.
	doc, _, _ := remote.Get(context.Background())
	if got := doc.BlogPosts[doc.PostIndex("due")].Status; got != domain.StatusPublished {
		t.Errorf("remote due post status = %q, want published", got)
	}
}

func TestPublisherScanWithNothingDue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	seed := domain.Snapshot{
		BlogPosts: []domain.BlogPost{{ID: "published", Title: "Done"}},
	}
	store, _ := newTestStore(t, seed, now)
	pub := NewPublisher(store, logger.New("error", false), time.Minute)

	// Must be a clean no-op, repeatable.
	pub.Scan(context.Background())
	pub.Scan(context.Background())

	if got := len(store.Snapshot().BlogPosts); got != 1 {
		t.Errorf("post count = %d, want 1", got)
	}
}
