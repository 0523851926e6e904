package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/localcache"
	"github.com/moscowmix/sitesync/internal/logger"
)

// DefaultCooldown is the reconciliation suppression window after a local
// save. It must outlast the remote store's read-after-write propagation
// delay with margin.
const DefaultCooldown = 10 * time.Second

// Options tune a Store. Zero values fall back to production defaults.
type Options struct {
	// Cooldown overrides DefaultCooldown.
	Cooldown time.Duration

	// Now overrides the wall clock, for tests.
	Now func() time.Time

	// DefaultAuthor is stamped on blog posts created without an author.
	DefaultAuthor string
}

// Store holds the in-memory site snapshot and coordinates every read and
// write against the local cache and the remote document store. There is
// one Store per process; consumers receive a reference, there is no
// package-level instance.
//
// Concurrency model: mutations from one session are serialized (writeMu),
// remote pushes are serialized (pushMu), and readers go through stateMu.
// Nothing coordinates writers in *other* sessions; the document is
// last-writer-wins, and the cooldown only protects this session against
// re-reading its own not-yet-propagated write.
type Store struct {
	remote   RemoteStore
	cache    *localcache.SnapshotCache
	tracker  *localcache.SaveTracker
	log      logger.Logger
	defaults domain.Snapshot

	cooldown      time.Duration
	now           func() time.Time
	defaultAuthor string

	writeMu sync.Mutex   // serializes mutation pipelines
	pushMu  sync.Mutex   // serializes remote pushes
	stateMu sync.RWMutex // guards current
	current domain.Snapshot

	inFlight atomic.Int64 // remote saves currently running
}

// New builds a Store seeded from the local cache when one exists, else
// from the defaults. It performs no network I/O; call Refresh for the
// initial reconciliation.
func New(
	remote RemoteStore,
	cache *localcache.SnapshotCache,
	tracker *localcache.SaveTracker,
	defaults domain.Snapshot,
	log logger.Logger,
	opts Options,
) *Store {
	s := &Store{
		remote:        remote,
		cache:         cache,
		tracker:       tracker,
		log:           log,
		defaults:      defaults.Clone(),
		cooldown:      opts.Cooldown,
		now:           opts.Now,
		defaultAuthor: opts.DefaultAuthor,
	}
	if s.cooldown <= 0 {
		s.cooldown = DefaultCooldown
	}
	if s.now == nil {
		s.now = time.Now
	}

	if cached, ok := cache.Load(); ok {
		s.current = cached
		log.Info("snapshot loaded from local cache",
			logger.Int("products", len(cached.Products)),
			logger.Int("posts", len(cached.BlogPosts)))
	} else {
		s.current = s.defaults.Clone()
		log.Info("no usable local cache, starting from defaults")
	}
	return s
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Store) Snapshot() domain.Snapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current.Clone()
}

// VisiblePosts returns the publicly visible blog posts at the current
// time, newest first.
func (s *Store) VisiblePosts() []domain.BlogPost {
	return domain.VisiblePosts(s.Snapshot().BlogPosts, s.now())
}

// VerifyAdminPassword checks a password attempt against the current
// snapshot's credentials.
func (s *Store) VerifyAdminPassword(input string) bool {
	return s.Snapshot().VerifyAdminPassword(input)
}

// SaveInFlight reports whether a remote save is currently running.
func (s *Store) SaveInFlight() bool {
	return s.inFlight.Load() > 0
}

// Refresh runs one reconciliation pass: fetch the remote document and
// either adopt it or keep local state, per the Gate/Merge policy. Called
// on startup, periodically, and from the manual refresh endpoint.
func (s *Store) Refresh(ctx context.Context) error {
	now := s.now()
	if !Gate(s.tracker.LastSave(), now, s.cooldown, s.SaveInFlight()) {
		s.log.Debug("reconciliation skipped",
			logger.Duration("cooldown", s.cooldown),
			logger.String("last_save", s.tracker.LastSave().Format(time.RFC3339)))
		return nil
	}

	remote, found, err := s.remote.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch remote snapshot: %w", err)
	}

	if !found {
		// Bootstrap: the document has never been written. Upload the
		// defaults and keep whatever local state we already have; the
		// next pass reconciles normally.
		s.log.Info("no remote document, uploading defaults")
		if err := s.remote.Put(ctx, s.defaults); err != nil {
			return fmt.Errorf("failed to bootstrap remote document: %w", err)
		}
		return nil
	}

	merged := Merge(remote, s.defaults)
	s.adopt(merged)
	s.log.Info("adopted remote snapshot",
		logger.Int("products", len(merged.Products)),
		logger.Int("posts", len(merged.BlogPosts)))
	return nil
}

// ForceSync pushes the entire current snapshot to the remote store
// unconditionally and verifies it. Operator escape hatch for a stuck
// reconciliation state; safe to invoke repeatedly.
func (s *Store) ForceSync(ctx context.Context) error {
	snap := s.Snapshot()
	s.tracker.RecordSave(s.now())

	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	s.pushMu.Lock()
	defer s.pushMu.Unlock()

	if err := s.pushAndVerify(ctx, snap); err != nil {
		return fmt.Errorf("force sync: %w", err)
	}
	s.log.Info("force sync completed",
		logger.Int("products", len(snap.Products)),
		logger.Int("posts", len(snap.BlogPosts)))
	return nil
}

func (s *Store) adopt(snap domain.Snapshot) {
	s.stateMu.Lock()
	s.current = snap
	s.stateMu.Unlock()
	s.cache.Save(snap)
}

func (s *Store) pushAndVerify(ctx context.Context, snap domain.Snapshot) error {
	if err := s.remote.Put(ctx, snap); err != nil {
		return fmt.Errorf("remote put: %w", err)
	}
	return s.verify(ctx, snap)
}
