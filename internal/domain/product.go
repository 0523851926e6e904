package domain

import "strings"

// Category is the storefront section a product belongs to.
type Category string

const (
	CategoryCopperDrinkware Category = "Copper Drinkware"
	CategoryFireStarters    Category = "Fire Starters"
)

// Product is one storefront item.
//
// ID is a stable slug, unique within the snapshot, derived from the name
// at creation when not supplied. It never changes afterwards: consuming
// pages and external links key on it. The position of a product inside
// Snapshot.Products drives storefront display order and is only changed
// by explicit reorder operations.
type Product struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Subtitle     string   `json:"subtitle" yaml:"subtitle"`
	Price        *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Description  string   `json:"description" yaml:"description"`
	Features     []string `json:"features" yaml:"features"`
	Category     Category `json:"category" yaml:"category"`
	Images       []string `json:"images" yaml:"images"`
	Rating       float64  `json:"rating" yaml:"rating"`
	Reviews      int      `json:"reviews" yaml:"reviews"`
	IsNew        bool     `json:"isNew,omitempty" yaml:"isNew,omitempty"`
	IsBestSeller bool     `json:"isBestSeller,omitempty" yaml:"isBestSeller,omitempty"`
	AmazonURL    string   `json:"amazonUrl,omitempty" yaml:"amazonUrl,omitempty"`
}

func (p Product) clone() Product {
	out := p
	out.Features = append([]string(nil), p.Features...)
	out.Images = append([]string(nil), p.Images...)
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	return out
}

func cloneProducts(in []Product) []Product {
	if in == nil {
		return nil
	}
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}

// Slugify derives a stable id from a display name: lowercased, with runs
// of non-alphanumeric characters collapsed to single dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
