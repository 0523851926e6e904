package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moscowmix/sitesync/internal/domain"
)

func TestGate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cooldown := 10 * time.Second

	tests := []struct {
		name     string
		lastSave time.Time
		inFlight bool
		want     bool
	}{
		{"never saved", time.Time{}, false, true},
		{"saved 2s ago, inside cooldown", now.Add(-2 * time.Second), false, false},
		{"saved 11s ago, past cooldown", now.Add(-11 * time.Second), false, true},
		{"saved exactly cooldown ago", now.Add(-cooldown), false, true},
		{"save in flight wins over everything", now.Add(-time.Hour), true, false},
		{"never saved but in flight", time.Time{}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.lastSave, now, cooldown, tt.inFlight))
		})
	}
}

func TestMergeListFallback(t *testing.T) {
	defaults := testDefaults()

	// Empty remote lists fall back to the defaults.
	empty := domain.Snapshot{}
	merged := Merge(empty, defaults)
	assert.Equal(t, defaults.Products, merged.Products)
	assert.Equal(t, defaults.BlogPosts, merged.BlogPosts)

	// Non-empty remote lists win exactly as stored.
	remote := domain.Snapshot{
		Products: []domain.Product{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
	}
	merged = Merge(remote, defaults)
	assert.Equal(t, remote.Products, merged.Products)
	assert.Equal(t, defaults.BlogPosts, merged.BlogPosts)
}

func TestMergeScalarFallback(t *testing.T) {
	defaults := testDefaults()

	merged := Merge(domain.Snapshot{HeroHeadline: "From Remote"}, defaults)
	assert.Equal(t, "From Remote", merged.HeroHeadline)
	assert.Equal(t, defaults.HeroSubheadline, merged.HeroSubheadline)
	assert.Equal(t, defaults.AdminPassword, merged.AdminPassword)
	assert.Equal(t, defaults.PasswordHint, merged.PasswordHint)
}

func TestMergeAssetsKeyByKey(t *testing.T) {
	defaults := testDefaults()
	remote := domain.Snapshot{
		Assets: domain.Assets{
			"copperHero": "remote.jpg",
			"customSlot": "custom.jpg",
		},
	}

	merged := Merge(remote, defaults)
	assert.Equal(t, "remote.jpg", merged.Assets["copperHero"])
	assert.Equal(t, "custom.jpg", merged.Assets["customSlot"])
	// Default slots the remote never mentions survive.
	for k := range defaults.Assets {
		assert.Contains(t, merged.Assets, k)
	}
}

func TestMergeIntoNilDefaultAssets(t *testing.T) {
	defaults := testDefaults()
	defaults.Assets = nil
	remote := domain.Snapshot{
		Assets: domain.Assets{"logo": "x.png"},
	}

	merged := Merge(remote, defaults)
	assert.Equal(t, "x.png", merged.Assets["logo"])

	// And the other way round: nil on both sides still yields a usable map.
	merged = Merge(domain.Snapshot{}, defaults)
	assert.NotNil(t, merged.Assets)
}

func TestMergeStoryFieldwise(t *testing.T) {
	defaults := testDefaults()
	remote := domain.Snapshot{
		Story: domain.Story{Narrative: "remote narrative"},
	}

	merged := Merge(remote, defaults)
	assert.Equal(t, "remote narrative", merged.Story.Narrative)
	assert.Equal(t, defaults.Story.Headline, merged.Story.Headline)
	assert.Equal(t, defaults.Story.Values, merged.Story.Values)
}

func TestMergeCredentialForms(t *testing.T) {
	defaults := testDefaults()
	remote := domain.Snapshot{
		AdminUsers: []domain.AdminUser{{ID: "u1", Login: "ops", Password: "pw"}},
	}

	merged := Merge(remote, defaults)
	assert.Equal(t, remote.AdminUsers, merged.AdminUsers)
	assert.Equal(t, defaults.AdminPassword, merged.AdminPassword,
		"legacy password survives alongside admin users")
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	defaults := testDefaults()
	remote := domain.Snapshot{
		Products: []domain.Product{{ID: "a", Features: []string{"f"}}},
	}

	merged := Merge(remote, defaults)
	merged.Products[0].Features[0] = "changed"
	merged.Assets["copperHero"] = "changed"

	assert.Equal(t, "f", remote.Products[0].Features[0])
	assert.Equal(t, "default.jpg", defaults.Assets["copperHero"])
}
