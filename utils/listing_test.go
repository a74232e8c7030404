package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

func samplePosts() []models.Post {
	day := func(d int) time.Time { return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC) }
	return []models.Post{
		{ID: "a", Likes: 10, Comments: 1, CreatedAt: day(1)},
		{ID: "b", Likes: 30, Comments: 5, CreatedAt: day(3)},
		{ID: "c", Likes: 10, Comments: 9, CreatedAt: day(2)},
		{ID: "d", Likes: 20, Comments: 5, CreatedAt: day(4)},
	}
}

func order(posts []models.Post) string {
	s := ""
	for _, p := range posts {
		s += p.ID
	}
	return s
}

func TestSortPosts(t *testing.T) {
	tests := []struct {
		order string
		want  string
	}{
		{SortNone, "abcd"},
		{SortNewest, "dbca"},
		{SortMostLiked, "bdac"},
		{SortMostCommented, "cbda"},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			posts := samplePosts()
			if err := SortPosts(posts, tt.order); err != nil {
				t.Fatal(err)
			}
			if got := order(posts); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}

	if err := SortPosts(samplePosts(), "random"); !errors.Is(err, common.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestPaginate(t *testing.T) {
	posts := samplePosts()

	p, err := Paginate(posts, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if order(p.Posts) != "d" || p.TotalPages != 2 || p.Total != 4 {
		t.Fatalf("page = %+v", p)
	}

	p, err = Paginate(posts, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.PerPage != DefaultPerPage || order(p.Posts) != "abcd" || p.TotalPages != 1 {
		t.Fatalf("page = %+v", p)
	}

	p, err = Paginate(posts, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Posts == nil || len(p.Posts) != 0 {
		t.Fatalf("out of range page = %+v", p)
	}

	if _, err := Paginate(posts, 0, 3); !errors.Is(err, common.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestPaginateHugeInputs(t *testing.T) {
	posts := samplePosts()

	p, err := Paginate(posts, math.MaxInt/2+1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Posts) != 0 || p.TotalPages != 2 {
		t.Fatalf("huge page = %+v", p)
	}

	p, err = Paginate(posts, 1, math.MaxInt)
	if err != nil {
		t.Fatal(err)
	}
	if p.PerPage != MaxPerPage || p.TotalPages != 1 || order(p.Posts) != "abcd" {
		t.Fatalf("huge limit = %+v", p)
	}

	p, err = Paginate(posts, math.MaxInt, math.MaxInt)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Posts) != 0 {
		t.Fatalf("huge page and limit = %+v", p)
	}

	p, err = Paginate(nil, 1, 3)
	if err != nil || p.Posts == nil || p.TotalPages != 0 {
		t.Fatalf("empty input = %+v, %v", p, err)
	}
}
