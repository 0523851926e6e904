package engine

import (
	"time"

	"github.com/moscowmix/sitesync/internal/domain"
)

// The reconciliation policy is split into pure functions so it can be
// unit-tested without any I/O; Store.Refresh is the thin orchestration
// around them.

// Gate reports whether a reconciliation pass may run.
//
// Two gates protect a session's own recent writes from being clobbered by
// a stale remote read: the in-flight save guard, and a cooldown window
// after the last recorded save. The cooldown is wall-clock based and must
// be longer than the remote store's read-after-write propagation delay; it
// is a coarse substitute for read-your-writes consistency. A session that
// has never saved anything has nothing to protect and always passes.
func Gate(lastSave, now time.Time, cooldown time.Duration, saveInFlight bool) bool {
	if saveInFlight {
		return false
	}
	if !lastSave.IsZero() && now.Sub(lastSave) < cooldown {
		return false
	}
	return true
}

// Merge combines a fetched remote snapshot with the seed defaults.
// Remote is the eventual source of truth, but older documents may be
// missing fields newer code expects, and a half-written document may
// carry empty lists; every field falls back to its default rather than
// going blank.
func Merge(remote, defaults domain.Snapshot) domain.Snapshot {
	out := defaults.Clone()

	if remote.HeroHeadline != "" {
		out.HeroHeadline = remote.HeroHeadline
	}
	if remote.HeroSubheadline != "" {
		out.HeroSubheadline = remote.HeroSubheadline
	}

	// Asset slots merge key-by-key over the defaults, keeping default
	// slots the remote document never mentions. Defaults may carry no
	// asset map at all (a seed file can null it out).
	if out.Assets == nil {
		out.Assets = domain.Assets{}
	}
	for k, v := range remote.Assets {
		out.Assets[k] = v
	}

	out.Story = mergeStory(remote.Story, defaults.Story)

	// Lists are taken from remote only when non-empty. An empty remote
	// list is indistinguishable from a partially-propagated write, so it
	// never wins over the defaults.
	if len(remote.Products) > 0 {
		out.Products = remote.Clone().Products
	}
	if len(remote.BlogPosts) > 0 {
		out.BlogPosts = remote.Clone().BlogPosts
	}

	if remote.AdminPassword != "" {
		out.AdminPassword = remote.AdminPassword
	}
	if remote.PasswordHint != "" {
		out.PasswordHint = remote.PasswordHint
	}
	if len(remote.AdminUsers) > 0 {
		out.AdminUsers = remote.Clone().AdminUsers
	}

	return out
}

func mergeStory(remote, def domain.Story) domain.Story {
	out := def
	if remote.Headline != "" {
		out.Headline = remote.Headline
	}
	if remote.Subheadline != "" {
		out.Subheadline = remote.Subheadline
	}
	if remote.Narrative != "" {
		out.Narrative = remote.Narrative
	}
	if len(remote.Values) > 0 {
		out.Values = append([]string(nil), remote.Values...)
	} else {
		out.Values = append([]string(nil), def.Values...)
	}
	if remote.HeroImage != "" {
		out.HeroImage = remote.HeroImage
	}
	return out
}
