// Package directory holds the in-memory collections of posts, users and
// countries that back the travel story API.
//
// A Directory is built once per process and handed to whoever serves the
// queries. All methods are safe for concurrent use. Values returned are
// copies; a mutation made through one call is visible to every later read.
package directory

import (
	"sync"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Directory struct {
	mu        sync.RWMutex
	posts     []*models.Post
	users     map[string]*models.User
	countries []models.Country
	// likes[postID] is the set of viewers that currently like the post.
	likes map[string]map[string]struct{}

	now   func() time.Time
	newID func() string
}

type Option func(*Directory)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithIDGenerator overrides post id allocation.
func WithIDGenerator(gen func() string) Option {
	return func(d *Directory) { d.newID = gen }
}

// WithPosts seeds the directory with posts and their authors instead of the demo data.
func WithPosts(users []models.User, posts []models.Post) Option {
	return func(d *Directory) {
		d.users = make(map[string]*models.User, len(users))
		for _, u := range users {
			d.users[u.ID] = publicUser(u)
		}
		d.posts = make([]*models.Post, 0, len(posts))
		for i := range posts {
			p := clonePost(posts[i])
			d.posts = append(d.posts, &p)
		}
	}
}

// WithCountries replaces the seeded country list.
func WithCountries(countries []models.Country) Option {
	return func(d *Directory) {
		d.countries = append([]models.Country(nil), countries...)
	}
}

// New returns a directory preloaded with the demo posts, authors and countries.
func New(opts ...Option) *Directory {
	users, posts := seedData()
	base := []Option{WithPosts(users, posts), WithCountries(seedCountries())}
	return newDirectory(append(base, opts...)...)
}

// NewEmpty returns a directory with no posts, users or countries.
func NewEmpty(opts ...Option) *Directory {
	return newDirectory(opts...)
}

func newDirectory(opts ...Option) *Directory {
	d := &Directory{
		users: make(map[string]*models.User),
		likes: make(map[string]map[string]struct{}),
		now:   time.Now,
		newID: func() string { return primitive.NewObjectID().Hex() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// snapshot copies p for viewer, hydrating the author from the users collection.
// Callers must hold d.mu.
func (d *Directory) snapshot(p *models.Post, viewer string) models.Post {
	out := clonePost(*p)
	if u, ok := d.users[p.AuthorID]; ok {
		out.Author = *u
	} else {
		out.Author = models.User{ID: p.AuthorID}
	}
	_, out.IsLiked = d.likes[p.ID][viewer]
	return out
}

func (d *Directory) snapshots(posts []*models.Post, viewer string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, d.snapshot(p, viewer))
	}
	return out
}

// find returns the index of the post with id, or -1. Callers must hold d.mu.
func (d *Directory) find(id string) int {
	for i, p := range d.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// publicUser is the copy of u kept in the users collection. Profiles are
// readable anonymously, so the login email stays on the session record.
func publicUser(u models.User) *models.User {
	u.Email = ""
	return &u
}

func clonePost(p models.Post) models.Post {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	if p.RelatedPosts != nil {
		p.RelatedPosts = append([]models.PostSummary(nil), p.RelatedPosts...)
	}
	return p
}
