package domain

import "time"

// PostStatus is the publication lifecycle state of a blog post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
)

// BlogPost is one journal entry. Content is an HTML body. Date and
// ReadTime are display strings; ScheduledDate and PublishedAt are RFC 3339
// instants used by the publication lifecycle.
//
// Records written before the lifecycle existed carry no status at all;
// those are treated as published.
type BlogPost struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Excerpt         string     `json:"excerpt" yaml:"excerpt"`
	Content         string     `json:"content" yaml:"content"`
	CoverImage      string     `json:"coverImage" yaml:"coverImage"`
	Date            string     `json:"date" yaml:"date"`
	Author          string     `json:"author" yaml:"author"`
	ReadTime        string     `json:"readTime" yaml:"readTime"`
	Slug            string     `json:"slug,omitempty" yaml:"slug,omitempty"`
	Tags            []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty" yaml:"metaDescription,omitempty"`
	Status          PostStatus `json:"status,omitempty" yaml:"status,omitempty"`
	ScheduledDate   string     `json:"scheduledDate,omitempty" yaml:"scheduledDate,omitempty"`
	PublishedAt     string     `json:"publishedAt,omitempty" yaml:"publishedAt,omitempty"`
}

func (p BlogPost) clone() BlogPost {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

func cloneBlogPosts(in []BlogPost) []BlogPost {
	if in == nil {
		return nil
	}
	out := make([]BlogPost, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}

// EffectiveStatus normalizes the legacy empty status to published.
func (p BlogPost) EffectiveStatus() PostStatus {
	if p.Status == "" {
		return StatusPublished
	}
	return p.Status
}

// ScheduledFor parses ScheduledDate. ok is false when the field is empty
// or not a valid RFC 3339 instant.
func (p BlogPost) ScheduledFor() (t time.Time, ok bool) {
	if p.ScheduledDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, p.ScheduledDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DueAt reports whether the post is scheduled and its scheduled instant
// has passed, making it eligible for automatic promotion to published.
// A scheduled post with a missing or unparseable date is never due.
func (p BlogPost) DueAt(now time.Time) bool {
	if p.EffectiveStatus() != StatusScheduled {
		return false
	}
	at, ok := p.ScheduledFor()
	return ok && !at.After(now)
}

// VisibleAt reports whether the post is publicly visible: published, or
// scheduled with a scheduled instant in the past (the publisher may not
// have promoted it yet, but readers must already see it).
func (p BlogPost) VisibleAt(now time.Time) bool {
	switch p.EffectiveStatus() {
	case StatusPublished:
		return true
	case StatusScheduled:
		return p.DueAt(now)
	default:
		return false
	}
}

// VisiblePosts filters posts down to the ones visible at now, preserving
// order.
func VisiblePosts(posts []BlogPost, now time.Time) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.VisibleAt(now) {
			out = append(out, p.clone())
		}
	}
	return out
}
