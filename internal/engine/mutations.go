package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/logger"
)

// Direction moves a product one slot within the storefront ordering.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// build transforms the current snapshot into the next one. It must not
// mutate its argument; it receives a private deep copy.
type build func(domain.Snapshot) (domain.Snapshot, error)

// applyOptimistic runs a fire-and-forget mutation: commit to memory and
// local cache immediately, then push to the remote store in the
// background.
func (s *Store) applyOptimistic(op string, fn build) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.Snapshot())
	if err != nil {
		return err
	}
	s.commitAndPushLocked(op, next)
	return nil
}

// commitAndPushLocked commits next locally and launches the background
// push. The save timestamp and the in-flight guard go up before the
// snapshot is adopted, so a concurrent reconciliation pass can never see
// the new state without the gates that protect it. Caller holds writeMu.
func (s *Store) commitAndPushLocked(op string, next domain.Snapshot) {
	s.tracker.RecordSave(s.now())
	s.inFlight.Add(1)
	s.adopt(next)

	go func() {
		defer s.inFlight.Add(-1)
		s.pushMu.Lock()
		defer s.pushMu.Unlock()
		// Detached from the request context: a caller navigating away
		// must not abort a half-issued save.
		if err := s.pushAndVerify(context.Background(), next); err != nil {
			s.log.Warn("background save failed, local state kept",
				logger.String("op", op),
				logger.String("policy", Optimistic.String()),
				logger.Error(err))
		} else {
			s.log.Debug("save confirmed",
				logger.String("op", op),
				logger.String("policy", Optimistic.String()))
		}
	}()
}

// applyConfirmed runs a save-first mutation: push and verify remotely,
// and only then commit to memory and local cache. On any failure the
// prior state is left untouched and the error goes back to the caller.
func (s *Store) applyConfirmed(ctx context.Context, op string, fn build) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.Snapshot())
	if err != nil {
		return err
	}

	s.tracker.RecordSave(s.now())
	s.inFlight.Add(1)
	err = func() error {
		defer s.inFlight.Add(-1)
		s.pushMu.Lock()
		defer s.pushMu.Unlock()
		return s.pushAndVerify(ctx, next)
	}()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.adopt(next)
	s.log.Debug("save confirmed",
		logger.String("op", op),
		logger.String("policy", ConfirmedWrite.String()))
	return nil
}

// UpdateHeroText replaces the hero headline and subheadline. Optimistic.
func (s *Store) UpdateHeroText(headline, subheadline string) error {
	return s.applyOptimistic("update_hero", func(cur domain.Snapshot) (domain.Snapshot, error) {
		return cur.WithHeroText(headline, subheadline), nil
	})
}

// UpdateAssets merges partial into the asset map. Optimistic.
func (s *Store) UpdateAssets(partial domain.Assets) error {
	return s.applyOptimistic("update_assets", func(cur domain.Snapshot) (domain.Snapshot, error) {
		return cur.WithAssets(partial), nil
	})
}

// UpdateStory replaces the brand story. Optimistic.
func (s *Store) UpdateStory(story domain.Story) error {
	return s.applyOptimistic("update_story", func(cur domain.Snapshot) (domain.Snapshot, error) {
		return cur.WithStory(story), nil
	})
}

// AddProduct inserts a product at the head of the storefront ordering,
// deriving its id from the name when absent. Optimistic.
func (s *Store) AddProduct(p domain.Product) error {
	return s.applyOptimistic("add_product", func(cur domain.Snapshot) (domain.Snapshot, error) {
		if p.ID == "" {
			p.ID = domain.Slugify(p.Name)
		}
		if p.ID == "" {
			return domain.Snapshot{}, fmt.Errorf("product needs a name or id")
		}
		if cur.ProductIndex(p.ID) >= 0 {
			return domain.Snapshot{}, fmt.Errorf("%w: product %q", ErrDuplicateID, p.ID)
		}
		products := append([]domain.Product{p}, cur.Products...)
		return cur.WithProducts(products), nil
	})
}

// UpdateProduct replaces the product with the same id in place.
// Optimistic.
func (s *Store) UpdateProduct(p domain.Product) error {
	return s.applyOptimistic("update_product", func(cur domain.Snapshot) (domain.Snapshot, error) {
		i := cur.ProductIndex(p.ID)
		if i < 0 {
			return domain.Snapshot{}, fmt.Errorf("%w: %q", ErrProductNotFound, p.ID)
		}
		products := cur.Clone().Products
		products[i] = p
		return cur.WithProducts(products), nil
	})
}

// DeleteProduct removes a product by id; deleting an absent id is a
// no-op. Optimistic.
func (s *Store) DeleteProduct(id string) error {
	return s.applyOptimistic("delete_product", func(cur domain.Snapshot) (domain.Snapshot, error) {
		products := make([]domain.Product, 0, len(cur.Products))
		for _, p := range cur.Clone().Products {
			if p.ID != id {
				products = append(products, p)
			}
		}
		return cur.WithProducts(products), nil
	})
}

// ReorderProduct swaps a product with its immediate neighbor in the given
// direction. Already at the boundary, or an unknown id, is a silent no-op
// with no save issued; positions never wrap around. Optimistic.
func (s *Store) ReorderProduct(id string, dir Direction) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.Snapshot()
	i := cur.ProductIndex(id)
	j := -1
	switch {
	case i < 0:
		// unknown id
	case dir == DirectionUp && i > 0:
		j = i - 1
	case dir == DirectionDown && i < len(cur.Products)-1:
		j = i + 1
	}
	if j < 0 {
		return nil
	}

	products := cur.Products // cur is already a private copy
	products[i], products[j] = products[j], products[i]
	s.commitAndPushLocked("reorder_product", cur.WithProducts(products))
	return nil
}

// AddBlogPost creates a post at the head of the journal, so index 0 stays
// the featured post. Save-first: the post is only visible locally once
// the remote write is confirmed.
func (s *Store) AddBlogPost(ctx context.Context, p domain.BlogPost) error {
	return s.applyConfirmed(ctx, "add_post", func(cur domain.Snapshot) (domain.Snapshot, error) {
		if p.ID == "" {
			p.ID = domain.Slugify(p.Title)
		}
		if p.ID == "" {
			return domain.Snapshot{}, fmt.Errorf("blog post needs a title or id")
		}
		if cur.PostIndex(p.ID) >= 0 {
			return domain.Snapshot{}, fmt.Errorf("%w: post %q", ErrDuplicateID, p.ID)
		}
		if err := validateSchedule(p); err != nil {
			return domain.Snapshot{}, err
		}
		if p.Author == "" {
			p.Author = s.defaultAuthor
		}
		posts := append([]domain.BlogPost{p}, cur.BlogPosts...)
		return cur.WithBlogPosts(posts), nil
	})
}

// UpdateBlogPost replaces the post with the same id in place. Save-first.
func (s *Store) UpdateBlogPost(ctx context.Context, p domain.BlogPost) error {
	return s.applyConfirmed(ctx, "update_post", func(cur domain.Snapshot) (domain.Snapshot, error) {
		i := cur.PostIndex(p.ID)
		if i < 0 {
			return domain.Snapshot{}, fmt.Errorf("%w: %q", ErrPostNotFound, p.ID)
		}
		if err := validateSchedule(p); err != nil {
			return domain.Snapshot{}, err
		}
		posts := cur.Clone().BlogPosts
		posts[i] = p
		return cur.WithBlogPosts(posts), nil
	})
}

// DeleteBlogPost removes a post by id; absent ids are a no-op.
// Optimistic.
func (s *Store) DeleteBlogPost(id string) error {
	return s.applyOptimistic("delete_post", func(cur domain.Snapshot) (domain.Snapshot, error) {
		posts := make([]domain.BlogPost, 0, len(cur.BlogPosts))
		for _, p := range cur.Clone().BlogPosts {
			if p.ID != id {
				posts = append(posts, p)
			}
		}
		return cur.WithBlogPosts(posts), nil
	})
}

// ChangeAdminPassword replaces the legacy password; an empty hint keeps
// the current one. Optimistic.
func (s *Store) ChangeAdminPassword(password, hint string) error {
	return s.applyOptimistic("change_password", func(cur domain.Snapshot) (domain.Snapshot, error) {
		if password == "" {
			return domain.Snapshot{}, fmt.Errorf("password must not be empty")
		}
		return cur.WithPassword(password, hint), nil
	})
}

// AddAdminUser creates a named admin account. Optimistic.
func (s *Store) AddAdminUser(name, login, password, role string) (domain.AdminUser, error) {
	user := domain.NewAdminUser(name, login, password, role, s.now())
	err := s.applyOptimistic("add_admin_user", func(cur domain.Snapshot) (domain.Snapshot, error) {
		if login == "" || password == "" {
			return domain.Snapshot{}, fmt.Errorf("admin user needs a login and a password")
		}
		users := append(cur.Clone().AdminUsers, user)
		return cur.WithAdminUsers(users), nil
	})
	if err != nil {
		return domain.AdminUser{}, err
	}
	return user, nil
}

// RemoveAdminUser deletes an admin account by id; absent ids are a no-op.
// Optimistic.
func (s *Store) RemoveAdminUser(id string) error {
	return s.applyOptimistic("remove_admin_user", func(cur domain.Snapshot) (domain.Snapshot, error) {
		users := make([]domain.AdminUser, 0, len(cur.AdminUsers))
		for _, u := range cur.Clone().AdminUsers {
			if u.ID != id {
				users = append(users, u)
			}
		}
		return cur.WithAdminUsers(users), nil
	})
}

// PublishDuePosts promotes every scheduled post whose scheduled instant
// has passed. It goes through the save-first pipeline like any other post
// edit. Returns the number of posts promoted; zero due posts issues no
// save at all.
func (s *Store) PublishDuePosts(ctx context.Context) (int, error) {
	now := s.now()

	due := 0
	for _, p := range s.Snapshot().BlogPosts {
		if p.DueAt(now) {
			due++
		}
	}
	if due == 0 {
		return 0, nil
	}

	promoted := 0
	err := s.applyConfirmed(ctx, "publish_due_posts", func(cur domain.Snapshot) (domain.Snapshot, error) {
		posts := cur.Clone().BlogPosts
		promoted = 0
		for i := range posts {
			if posts[i].DueAt(now) {
				posts[i].Status = domain.StatusPublished
				posts[i].PublishedAt = now.UTC().Format(time.RFC3339)
				promoted++
			}
		}
		return cur.WithBlogPosts(posts), nil
	})
	if err != nil {
		return 0, err
	}
	return promoted, nil
}

func validateSchedule(p domain.BlogPost) error {
	if p.Status != domain.StatusScheduled {
		return nil
	}
	if _, ok := p.ScheduledFor(); !ok {
		return fmt.Errorf("%w: got %q", ErrScheduleRequired, p.ScheduledDate)
	}
	return nil
}
