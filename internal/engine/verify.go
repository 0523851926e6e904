package engine

import (
	"context"
	"fmt"

	"github.com/moscowmix/sitesync/internal/domain"
)

// verify re-reads the remote document after a put and compares record
// counts and id sets against what was written. The document store gives
// no durability signal beyond "the write call returned", so re-reading is
// the only confirmation available. A mismatch does not necessarily mean
// the write was lost (the read may have hit a stale replica), but either
// way the save cannot be confirmed.
func (s *Store) verify(ctx context.Context, want domain.Snapshot) error {
	got, found, err := s.remote.Get(ctx)
	if err != nil {
		return fmt.Errorf("verification read failed: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: document absent after write", ErrVerifyMismatch)
	}

	if len(got.Products) != len(want.Products) {
		return fmt.Errorf("%w: %d products read back, wrote %d",
			ErrVerifyMismatch, len(got.Products), len(want.Products))
	}
	if len(got.BlogPosts) != len(want.BlogPosts) {
		return fmt.Errorf("%w: %d posts read back, wrote %d",
			ErrVerifyMismatch, len(got.BlogPosts), len(want.BlogPosts))
	}
	if id, ok := missingID(productIDs(want.Products), productIDs(got.Products)); !ok {
		return fmt.Errorf("%w: product %q missing after write", ErrVerifyMismatch, id)
	}
	if id, ok := missingID(postIDs(want.BlogPosts), postIDs(got.BlogPosts)); !ok {
		return fmt.Errorf("%w: post %q missing after write", ErrVerifyMismatch, id)
	}
	return nil
}

func productIDs(in []domain.Product) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = p.ID
	}
	return out
}

func postIDs(in []domain.BlogPost) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = p.ID
	}
	return out
}

// missingID returns the first id in want that is absent from got.
func missingID(want, got []string) (string, bool) {
	seen := make(map[string]bool, len(got))
	for _, id := range got {
		seen[id] = true
	}
	for _, id := range want {
		if !seen[id] {
			return id, false
		}
	}
	return "", true
}
