package domain

import "maps"

// Assets maps named asset slots (logo, hero images, textures, per-product
// demo videos) to URLs or data URIs. The set of keys is open-ended: the
// admin panel may register custom slots at any time.
type Assets map[string]string

// Story is the brand narrative block shown on the about page.
type Story struct {
	Headline    string   `json:"headline" yaml:"headline"`
	Subheadline string   `json:"subheadline" yaml:"subheadline"`
	Narrative   string   `json:"narrative" yaml:"narrative"`
	Values      []string `json:"values" yaml:"values"`
	HeroImage   string   `json:"heroImage,omitempty" yaml:"heroImage,omitempty"`
}

// Snapshot is the complete site configuration document.
//
// It is the single mutable root aggregate: every write replaces the whole
// document, both in memory and in the remote store. Snapshot is a value
// type and must never be mutated in place; each mutation goes through one
// of the With* constructors, which return a deep copy with one facet
// replaced. JSON field names match the document layout already present in
// the remote store, so documents written by earlier revisions of the admin
// panel keep loading unchanged.
type Snapshot struct {
	HeroHeadline    string     `json:"heroHeadline" yaml:"heroHeadline"`
	HeroSubheadline string     `json:"heroSubheadline" yaml:"heroSubheadline"`
	Assets          Assets     `json:"assets" yaml:"assets"`
	Products        []Product  `json:"products" yaml:"products"`
	BlogPosts       []BlogPost `json:"blogPosts" yaml:"blogPosts"`
	Story           Story      `json:"story" yaml:"story"`

	// Credentials come in two shapes for backward compatibility: the
	// legacy single password+hint pair, and the newer named admin users.
	// Either or both may be present in a stored document.
	AdminPassword string      `json:"adminPassword,omitempty" yaml:"adminPassword,omitempty"`
	PasswordHint  string      `json:"passwordHint,omitempty" yaml:"passwordHint,omitempty"`
	AdminUsers    []AdminUser `json:"adminUsers,omitempty" yaml:"adminUsers,omitempty"`
}

// Clone returns a deep copy. The copy shares no slices or maps with the
// receiver, so callers can hold it across later mutations.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Assets = maps.Clone(s.Assets)
	out.Products = cloneProducts(s.Products)
	out.BlogPosts = cloneBlogPosts(s.BlogPosts)
	out.Story = s.Story.clone()
	out.AdminUsers = cloneAdminUsers(s.AdminUsers)
	return out
}

func (st Story) clone() Story {
	out := st
	out.Values = append([]string(nil), st.Values...)
	return out
}

// WithHeroText replaces the hero headline and subheadline.
func (s Snapshot) WithHeroText(headline, subheadline string) Snapshot {
	out := s.Clone()
	out.HeroHeadline = headline
	out.HeroSubheadline = subheadline
	return out
}

// WithAssets merges partial into the asset map. Existing slots not named
// in partial are kept; named slots are overwritten, new ones added.
func (s Snapshot) WithAssets(partial Assets) Snapshot {
	out := s.Clone()
	if out.Assets == nil {
		out.Assets = Assets{}
	}
	maps.Copy(out.Assets, partial)
	return out
}

// WithProducts replaces the product list wholesale.
func (s Snapshot) WithProducts(products []Product) Snapshot {
	out := s.Clone()
	out.Products = cloneProducts(products)
	return out
}

// WithBlogPosts replaces the blog post list wholesale.
func (s Snapshot) WithBlogPosts(posts []BlogPost) Snapshot {
	out := s.Clone()
	out.BlogPosts = cloneBlogPosts(posts)
	return out
}

// WithStory replaces the brand story.
func (s Snapshot) WithStory(story Story) Snapshot {
	out := s.Clone()
	out.Story = story.clone()
	return out
}

// WithPassword replaces the legacy admin password. An empty hint keeps the
// current hint.
func (s Snapshot) WithPassword(password, hint string) Snapshot {
	out := s.Clone()
	out.AdminPassword = password
	if hint != "" {
		out.PasswordHint = hint
	}
	return out
}

// WithAdminUsers replaces the admin user list.
func (s Snapshot) WithAdminUsers(users []AdminUser) Snapshot {
	out := s.Clone()
	out.AdminUsers = cloneAdminUsers(users)
	return out
}

// ProductIndex returns the position of the product with the given id, or
// -1 when absent.
func (s Snapshot) ProductIndex(id string) int {
	for i, p := range s.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PostIndex returns the position of the blog post with the given id, or
// -1 when absent.
func (s Snapshot) PostIndex(id string) int {
	for i, p := range s.BlogPosts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
