package utils

import (
	"sort"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

// Sort orders accepted by SortPosts.
const (
	SortNone          = ""
	SortNewest        = "newest"
	SortMostLiked     = "most_liked"
	SortMostCommented = "most_commented"
)

const (
	DefaultPerPage = 9
	MaxPerPage     = 100
)

// SortPosts orders posts in place. Equal keys keep their relative order.
func SortPosts(posts []models.Post, order string) error {
	var less func(a, b models.Post) bool
	switch order {
	case SortNone:
		return nil
	case SortNewest:
		less = func(a, b models.Post) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortMostLiked:
		less = func(a, b models.Post) bool { return a.Likes > b.Likes }
	case SortMostCommented:
		less = func(a, b models.Post) bool { return a.Comments > b.Comments }
	default:
		return common.InvalidArgumentError(nil, "unknown sort order "+order)
	}
	sort.SliceStable(posts, func(i, j int) bool { return less(posts[i], posts[j]) })
	return nil
}

type Page struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// Paginate cuts the 1-based page out of posts. A page past the end is empty.
// perPage below 1 means DefaultPerPage; above MaxPerPage it is capped.
func Paginate(posts []models.Post, page, perPage int) (Page, error) {
	if page < 1 {
		return Page{}, common.InvalidArgumentError(nil, "page must be at least 1")
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	total := len(posts)
	p := Page{
		Posts:      []models.Post{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	// compare before multiplying; page comes straight from the query string
	if page-1 >= p.TotalPages {
		return p, nil
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	p.Posts = posts[start:end]
	return p, nil
}
