package localcache

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/logger"
)

// fakeKV is an in-memory KV that can reject writes above a size limit,
// standing in for a store running out of space.
type fakeKV struct {
	data     map[string]string
	maxValue int // 0 = unlimited
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (f *fakeKV) GetString(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) SetString(key, value string) error {
	if f.maxValue > 0 && len(value) > f.maxValue {
		return errors.New("quota exceeded")
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func testLog() logger.Logger { return logger.New("error", false) }

func TestSnapshotCacheRoundTrip(t *testing.T) {
	cache := NewSnapshotCache(newFakeKV(), testLog())

	if _, ok := cache.Load(); ok {
		t.Error("Load() on empty cache reported a snapshot")
	}

	snap := domain.Snapshot{
		HeroHeadline: "hello",
		BlogPosts:    []domain.BlogPost{{ID: "p1", Content: "<p>full body</p>"}},
	}
	cache.Save(snap)

	got, ok := cache.Load()
	if !ok {
		t.Fatal("Load() after Save() found nothing")
	}
	if got.HeroHeadline != "hello" || len(got.BlogPosts) != 1 || got.BlogPosts[0].Content != "<p>full body</p>" {
		t.Errorf("Load() = %+v, want the saved snapshot", got)
	}
}

func TestSnapshotCacheDegradesToLite(t *testing.T) {
	kv := newFakeKV()
	cache := NewSnapshotCache(kv, testLog())

	big := strings.Repeat("x", 4096)
	snap := domain.Snapshot{
		HeroHeadline: "hello",
		BlogPosts: []domain.BlogPost{
			{ID: "p1", Title: "Post One", Content: big},
			{ID: "p2", Title: "Post Two", Content: big},
		},
	}

	// The full snapshot exceeds the quota; the lite one fits.
	kv.maxValue = 2048
	cache.Save(snap)

	got, ok := cache.Load()
	if !ok {
		t.Fatal("lite snapshot was not cached")
	}
	if len(got.BlogPosts) != 2 {
		t.Fatalf("lite snapshot lost posts: %d", len(got.BlogPosts))
	}
	for _, p := range got.BlogPosts {
		if p.Content != LiteContentMarker {
			t.Errorf("post %s content = %q, want lite marker", p.ID, p.Content)
		}
		if p.Title == "" {
			t.Errorf("post %s lost structural metadata", p.ID)
		}
	}
}

func TestSnapshotCacheSwallowsTotalFailure(t *testing.T) {
	kv := newFakeKV()
	kv.maxValue = 1 // nothing fits
	cache := NewSnapshotCache(kv, testLog())

	// Must not panic or error out of the call.
	cache.Save(domain.Snapshot{HeroHeadline: "hello"})

	if _, ok := cache.Load(); ok {
		t.Error("Load() found a snapshot even though every write failed")
	}
}

func TestSnapshotCacheClearsCorruptEntry(t *testing.T) {
	kv := newFakeKV()
	kv.data[SnapshotKey] = "{not json"
	cache := NewSnapshotCache(kv, testLog())

	if _, ok := cache.Load(); ok {
		t.Error("Load() accepted a corrupt cache entry")
	}
	if _, present := kv.data[SnapshotKey]; present {
		t.Error("corrupt entry left behind after Load()")
	}
}

func TestSaveTracker(t *testing.T) {
	kv := newFakeKV()
	tr := NewSaveTracker(kv, testLog())

	if !tr.LastSave().IsZero() {
		t.Error("LastSave() on empty store should be zero")
	}

	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tr.RecordSave(at)

	got := tr.LastSave()
	if !got.Equal(at) {
		t.Errorf("LastSave() = %v, want %v", got, at)
	}

	// A second tracker over the same store sees the timestamp: the
	// cooldown must survive a restart.
	tr2 := NewSaveTracker(kv, testLog())
	if !tr2.LastSave().Equal(at) {
		t.Error("LastSave() did not survive tracker re-creation")
	}
}

func TestSaveTrackerIgnoresGarbage(t *testing.T) {
	kv := newFakeKV()
	kv.data[LastSaveKey] = "not-a-number"
	tr := NewSaveTracker(kv, testLog())
	if !tr.LastSave().IsZero() {
		t.Error("LastSave() should treat garbage as never-saved")
	}
}
