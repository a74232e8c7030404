package directory

import (
	"context"
	"sort"
	"strings"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

const popularLimit = 3

// Defaults applied by Create to fields the caller left empty.
const (
	DefaultTitle    = "New Travel Story"
	DefaultContent  = "Content of the new travel story..."
	DefaultExcerpt  = "A short excerpt of the travel story"
	DefaultImageURL = "https://images.unsplash.com/photo-1528127269322-539801943592"
	DefaultCountry  = "Unknown"
)

var defaultTags = []string{"travel", "new"}

// List returns every post in directory order, newest additions first.
func (d *Directory) List(ctx context.Context, viewer string) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshots(d.posts, viewer), nil
}

// Popular returns the three most liked posts. Ties keep directory order.
func (d *Directory) Popular(ctx context.Context, viewer string) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	ranked := append([]*models.Post(nil), d.posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Likes > ranked[j].Likes
	})
	if len(ranked) > popularLimit {
		ranked = ranked[:popularLimit]
	}
	return d.snapshots(ranked, viewer), nil
}

// Recent returns the n most recently created posts. n <= 0 returns all of them.
func (d *Directory) Recent(ctx context.Context, viewer string, n int) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	ranked := append([]*models.Post(nil), d.posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return d.snapshots(ranked, viewer), nil
}

func (d *Directory) Get(ctx context.Context, id, viewer string) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.find(id)
	if i < 0 {
		return models.Post{}, common.NotFoundError(nil, "Post not found")
	}
	return d.snapshot(d.posts[i], viewer), nil
}

// ByCountry matches the country name case-insensitively. No match is an empty result, not an error.
func (d *Directory) ByCountry(ctx context.Context, country, viewer string) ([]models.Post, error) {
	return d.filter(ctx, viewer, func(p *models.Post) bool {
		return strings.EqualFold(p.Country, country)
	})
}

// Search returns posts whose title, country or author username contains query, ignoring case.
func (d *Directory) Search(ctx context.Context, query, viewer string) ([]models.Post, error) {
	q := strings.ToLower(query)
	return d.filter(ctx, viewer, func(p *models.Post) bool {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Country), q) {
			return true
		}
		u, ok := d.users[p.AuthorID]
		return ok && strings.Contains(strings.ToLower(u.Username), q)
	})
}

func (d *Directory) filter(ctx context.Context, viewer string, keep func(*models.Post) bool) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := []models.Post{}
	for _, p := range d.posts {
		if keep(p) {
			out = append(out, d.snapshot(p, viewer))
		}
	}
	return out, nil
}

// Create adds a post written by author at the front of the directory.
// An author the directory has not seen yet is added to the users collection.
func (d *Directory) Create(ctx context.Context, in models.NewPost, author models.User) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	if author.ID == "" {
		return models.Post{}, common.InvalidArgumentError(nil, "author is required")
	}

	now := d.now()
	p := &models.Post{
		ID:        d.newID(),
		Title:     orDefault(in.Title, DefaultTitle),
		Excerpt:   orDefault(in.Excerpt, DefaultExcerpt),
		Content:   orDefault(in.Content, DefaultContent),
		ImageURL:  orDefault(in.ImageURL, DefaultImageURL),
		Country:   orDefault(in.Country, DefaultCountry),
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      append([]string(nil), in.Tags...),
	}
	if len(p.Tags) == 0 {
		p.Tags = append([]string(nil), defaultTags...)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[author.ID]; !ok {
		d.users[author.ID] = publicUser(author)
	}
	d.posts = append([]*models.Post{p}, d.posts...)
	return d.snapshot(p, author.ID), nil
}

// Update merges the non-nil fields of patch into the post and refreshes UpdatedAt.
// The result is seen from viewer.
func (d *Directory) Update(ctx context.Context, id, viewer string, patch models.PostPatch) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.find(id)
	if i < 0 {
		return models.Post{}, common.NotFoundError(nil, "Post not found")
	}
	p := d.posts[i]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.Tags != nil {
		p.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.RelatedPosts != nil {
		p.RelatedPosts = append([]models.PostSummary(nil), (*patch.RelatedPosts)...)
	}
	p.UpdatedAt = d.now()
	return d.snapshot(p, viewer), nil
}

// Delete removes the post and reports whether anything was removed.
func (d *Directory) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.find(id)
	if i < 0 {
		return false, nil
	}
	d.posts = append(d.posts[:i], d.posts[i+1:]...)
	delete(d.likes, id)
	return true, nil
}

// ToggleLike flips viewer's like on the post and moves Likes by one in the same direction.
// Likes never drops below zero.
func (d *Directory) ToggleLike(ctx context.Context, id, viewer string) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.find(id)
	if i < 0 {
		return models.Post{}, common.NotFoundError(nil, "Post not found")
	}
	p := d.posts[i]
	likers := d.likes[id]
	if _, liked := likers[viewer]; liked {
		delete(likers, viewer)
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		if likers == nil {
			likers = make(map[string]struct{})
			d.likes[id] = likers
		}
		likers[viewer] = struct{}{}
		p.Likes++
	}
	return d.snapshot(p, viewer), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
