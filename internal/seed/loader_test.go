package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	snap, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(snap.Products) == 0 {
		t.Error("default snapshot has no products")
	}
	if len(snap.BlogPosts) == 0 {
		t.Error("default snapshot has no blog posts")
	}
	if snap.AdminPassword == "" {
		t.Error("default snapshot has no admin password")
	}
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	seed := `
heroHeadline: "Custom Headline"
products:
  - name: "Seeded Mug"
    subtitle: "From seed file"
    category: "Copper Drinkware"
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if snap.HeroHeadline != "Custom Headline" {
		t.Errorf("heroHeadline = %q, want override", snap.HeroHeadline)
	}
	// Fields absent from the seed keep their defaults.
	if snap.HeroSubheadline == "" {
		t.Error("heroSubheadline default was lost")
	}
	if len(snap.BlogPosts) == 0 {
		t.Error("blogPosts default was lost")
	}
	// Present lists replace wholesale, with derived ids.
	if len(snap.Products) != 1 {
		t.Fatalf("products = %d entries, want 1", len(snap.Products))
	}
	if snap.Products[0].ID != "seeded-mug" {
		t.Errorf("seeded product id = %q, want derived slug", snap.Products[0].ID)
	}
}

func TestLoadRestoresNulledAssetMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	// A bare key is an explicit null and zeroes the map during unmarshal.
	if err := os.WriteFile(path, []byte("assets:\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if snap.Assets == nil {
		t.Fatal("assets map is nil after loading a nulled assets key")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(path, []byte("products: {not: [valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
}
