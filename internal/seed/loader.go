package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moscowmix/sitesync/internal/domain"
)

// Load returns the default snapshot, optionally overridden by a YAML seed
// file. An empty path means no override. The file is unmarshalled on top
// of the compiled-in defaults, so it only needs to carry the fields a
// deployment wants to change; lists (products, blogPosts) replace their
// defaults wholesale when present.
func Load(path string) (domain.Snapshot, error) {
	snap := Default()
	if path == "" {
		return snap, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	// A seed file carrying an explicit null (e.g. a bare "assets:" key)
	// zeroes the map; restore an empty one so callers can index it.
	if snap.Assets == nil {
		snap.Assets = domain.Assets{}
	}

	// Derive ids for seeded entries that omit them.
	for i := range snap.Products {
		if snap.Products[i].ID == "" {
			snap.Products[i].ID = domain.Slugify(snap.Products[i].Name)
		}
	}
	for i := range snap.BlogPosts {
		if snap.BlogPosts[i].ID == "" {
			snap.BlogPosts[i].ID = domain.Slugify(snap.BlogPosts[i].Title)
		}
	}

	return snap, nil
}
