package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/localcache"
	"github.com/moscowmix/sitesync/internal/logger"
)

// fakeRemote is an in-memory document store. It can fail puts, serve
// stale reads, and block writes to simulate an in-flight save.
type fakeRemote struct {
	mu       sync.Mutex
	doc      domain.Snapshot
	found    bool
	putErr   error
	getErr   error
	stale    bool          // Get returns the document as it was before the last Put
	prev     domain.Snapshot
	prevSet  bool
	blockPut chan struct{} // when non-nil, Put waits until the channel is closed
	puts     int
	gets     int
}

func (f *fakeRemote) Get(ctx context.Context) (domain.Snapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return domain.Snapshot{}, false, f.getErr
	}
	if f.stale {
		return f.prev.Clone(), f.prevSet, nil
	}
	return f.doc.Clone(), f.found, nil
}

func (f *fakeRemote) Put(ctx context.Context, snap domain.Snapshot) error {
	f.mu.Lock()
	block := f.blockPut
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.prev, f.prevSet = f.doc.Clone(), f.found
	f.doc, f.found = snap.Clone(), true
	return nil
}

func (f *fakeRemote) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func (f *fakeRemote) document() (domain.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc.Clone(), f.found
}

// fakeClock is a settable wall clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// testDefaults is a small seed so tests stay readable.
func testDefaults() domain.Snapshot {
	return domain.Snapshot{
		HeroHeadline:    "Default Headline",
		HeroSubheadline: "Default Subheadline",
		Assets:          domain.Assets{"copperHero": "default.jpg"},
		Products: []domain.Product{
			{ID: "copper-mug", Name: "Copper Mug"},
			{ID: "copper-bottle", Name: "Copper Bottle"},
			{ID: "fire-starters", Name: "Fire Starters"},
		},
		BlogPosts: []domain.BlogPost{
			{ID: "default-post", Title: "Default Post"},
		},
		Story:         domain.Story{Headline: "Default Story", Values: []string{"Purity"}},
		AdminPassword: "admin",
		PasswordHint:  "Default is admin",
	}
}

type testEnv struct {
	store   *Store
	remote  *fakeRemote
	clock   *fakeClock
	kv      *localcache.FileStore
	cache   *localcache.SnapshotCache
	tracker *localcache.SaveTracker
}

func newEnv(t *testing.T, remote *fakeRemote, cooldown time.Duration, prepare func(env *testEnv)) *testEnv {
	t.Helper()
	log := logger.New("error", false)
	kv, err := localcache.NewFileStore(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		remote:  remote,
		clock:   newFakeClock(),
		kv:      kv,
		cache:   localcache.NewSnapshotCache(kv, log),
		tracker: localcache.NewSaveTracker(kv, log),
	}
	if prepare != nil {
		prepare(env)
	}
	env.store = New(remote, env.cache, env.tracker, testDefaults(), log, Options{
		Cooldown:      cooldown,
		Now:           env.clock.Now,
		DefaultAuthor: "Michael B.",
	})
	return env
}

func TestBootstrapIsIdempotent(t *testing.T) {
	remote := &fakeRemote{}
	env := newEnv(t, remote, 10*time.Second, nil)
	ctx := context.Background()

	require.NoError(t, env.store.Refresh(ctx))
	doc, found := remote.document()
	require.True(t, found, "bootstrap should upload the defaults")
	assert.Equal(t, testDefaults(), doc)
	assert.Equal(t, 1, remote.putCount())

	// Second pass finds the document and adopts it; no second bootstrap.
	require.NoError(t, env.store.Refresh(ctx))
	assert.Equal(t, 1, remote.putCount())
	assert.Equal(t, testDefaults().Products, env.store.Snapshot().Products)
}

func TestBootstrapKeepsLocalState(t *testing.T) {
	remote := &fakeRemote{}
	local := testDefaults().WithHeroText("Edited Locally", "still local")
	env := newEnv(t, remote, 10*time.Second, func(env *testEnv) {
		env.cache.Save(local)
	})

	require.NoError(t, env.store.Refresh(context.Background()))
	assert.Equal(t, "Edited Locally", env.store.Snapshot().HeroHeadline,
		"bootstrap uploads defaults but must not overwrite local state")
}

// The two-phase scenario: a stale remote read inside the cooldown window
// keeps local state; the same read after the window adopts remote.
func TestCooldownHoldsLocalStateThenYields(t *testing.T) {
	remoteDoc := testDefaults().WithBlogPosts([]domain.BlogPost{
		{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"}, {ID: "r5"},
	})
	remote := &fakeRemote{doc: remoteDoc, found: true}

	localDoc := testDefaults().WithBlogPosts([]domain.BlogPost{
		{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"}, {ID: "r5"}, {ID: "local-only"},
	})

	env := newEnv(t, remote, 10*time.Second, func(env *testEnv) {
		env.cache.Save(localDoc)
		// Last save 2 seconds ago.
		env.tracker.RecordSave(env.clock.Now().Add(-2 * time.Second))
	})
	ctx := context.Background()

	require.NoError(t, env.store.Refresh(ctx))
	assert.Len(t, env.store.Snapshot().BlogPosts, 6, "within cooldown the local 6-post list must survive")

	env.clock.Advance(11 * time.Second)
	require.NoError(t, env.store.Refresh(ctx))
	posts := env.store.Snapshot().BlogPosts
	assert.Len(t, posts, 5, "past cooldown the remote list wins")
	for _, p := range posts {
		assert.NotEqual(t, "local-only", p.ID, "the stale local-only post must be discarded")
	}
}

func TestCooldownIrrelevantWhenNeverSaved(t *testing.T) {
	remoteDoc := testDefaults().WithHeroText("Remote Headline", "from remote")
	remote := &fakeRemote{doc: remoteDoc, found: true}
	env := newEnv(t, remote, 10*time.Second, nil)

	require.NoError(t, env.store.Refresh(context.Background()))
	assert.Equal(t, "Remote Headline", env.store.Snapshot().HeroHeadline)
}

func TestRefreshSkipsWhileSaveInFlight(t *testing.T) {
	release := make(chan struct{})
	remote := &fakeRemote{found: true, doc: testDefaults(), blockPut: release}
	// Cooldown of 1ns so only the in-flight guard can gate.
	env := newEnv(t, remote, time.Nanosecond, nil)

	done := make(chan error, 1)
	go func() {
		done <- env.store.AddBlogPost(context.Background(), domain.BlogPost{ID: "new", Title: "New"})
	}()

	require.Eventually(t, env.store.SaveInFlight, time.Second, time.Millisecond,
		"save should be in flight while the put is blocked")

	getsBefore := func() int {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.gets
	}()
	env.clock.Advance(time.Second)
	require.NoError(t, env.store.Refresh(context.Background()))
	assert.Equal(t, getsBefore, func() int {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.gets
	}(), "reconciliation must not even fetch while a save is in flight")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, env.store.SaveInFlight())
}

func TestForceSyncBypassesCooldown(t *testing.T) {
	remote := &fakeRemote{}
	env := newEnv(t, remote, 10*time.Second, func(env *testEnv) {
		env.tracker.RecordSave(env.clock.Now()) // cooldown active right now
	})

	require.NoError(t, env.store.ForceSync(context.Background()))
	doc, found := remote.document()
	require.True(t, found)
	assert.Equal(t, env.store.Snapshot(), doc)

	// Safe to invoke repeatedly.
	require.NoError(t, env.store.ForceSync(context.Background()))
	assert.Equal(t, 2, remote.putCount())
}

func TestRefreshPropagatesFetchError(t *testing.T) {
	remote := &fakeRemote{getErr: context.DeadlineExceeded}
	env := newEnv(t, remote, 10*time.Second, nil)
	assert.Error(t, env.store.Refresh(context.Background()))
}

func TestStoreStartsFromCacheThenDefaults(t *testing.T) {
	remote := &fakeRemote{}

	env := newEnv(t, remote, 10*time.Second, nil)
	assert.Equal(t, "Default Headline", env.store.Snapshot().HeroHeadline)

	cached := testDefaults().WithHeroText("Cached", "cached")
	env2 := newEnv(t, remote, 10*time.Second, func(env *testEnv) {
		env.cache.Save(cached)
	})
	assert.Equal(t, "Cached", env2.store.Snapshot().HeroHeadline)
}
