package localcache

import (
	"strconv"
	"time"

	"github.com/moscowmix/sitesync/internal/logger"
)

// LastSaveKey is the cache key holding the instant of the last local save,
// as unix milliseconds.
const LastSaveKey = "last_save_at"

// SaveTracker persists the time of the last local save. It backs the
// reconciliation cooldown, and lives in the same persistent store as the
// snapshot so the cooldown survives a full process restart. An in-memory
// tracker is not enough: a restart right after a save would otherwise
// re-fetch a stale remote copy and clobber the save.
type SaveTracker struct {
	kv  KV
	log logger.Logger
}

func NewSaveTracker(kv KV, log logger.Logger) *SaveTracker {
	return &SaveTracker{kv: kv, log: log}
}

// LastSave returns the recorded instant, or the zero time when no save
// has ever been recorded.
func (t *SaveTracker) LastSave() time.Time {
	raw, ok, err := t.kv.GetString(LastSaveKey)
	if err != nil {
		t.log.Warn("failed to read last save time", logger.Error(err))
		return time.Time{}
	}
	if !ok {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// RecordSave persists at as the last save instant. Failure is logged and
// swallowed: a missing record only weakens the cooldown, it must never
// fail the mutation that triggered it.
func (t *SaveTracker) RecordSave(at time.Time) {
	if err := t.kv.SetString(LastSaveKey, strconv.FormatInt(at.UnixMilli(), 10)); err != nil {
		t.log.Warn("failed to record save time", logger.Error(err))
	}
}
