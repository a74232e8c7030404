package models

import "time"

type Post struct {
	ID           string        `bson:"_id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Excerpt      string        `bson:"excerpt" json:"excerpt"`
	Content      string        `bson:"content" json:"content"`
	ImageURL     string        `bson:"image_url" json:"imageUrl"`
	Country      string        `bson:"country" json:"country"`
	AuthorID     string        `bson:"author_id" json:"authorId"`
	Author       User          `bson:"-" json:"author"`
	Likes        int           `bson:"likes" json:"likes"`
	Comments     int           `bson:"comments" json:"comments"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
	Tags         []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	RelatedPosts []PostSummary `bson:"related_posts,omitempty" json:"relatedPosts,omitempty"`
	IsLiked      bool          `bson:"-" json:"isLiked"`
}

// PostSummary is a display copy of another post. It is not kept in sync with its source.
type PostSummary struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	ImageURL  string    `bson:"image_url" json:"imageUrl"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// NewPost carries the caller-supplied fields of a post being created.
// Empty fields fall back to the directory defaults.
type NewPost struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	Country  string   `json:"country"`
	Tags     []string `json:"tags"`
}

// PostPatch holds the editable fields of a post. Nil fields are left untouched.
type PostPatch struct {
	Title        *string        `json:"title"`
	Excerpt      *string        `json:"excerpt"`
	Content      *string        `json:"content"`
	ImageURL     *string        `json:"imageUrl"`
	Country      *string        `json:"country"`
	Tags         *[]string      `json:"tags"`
	RelatedPosts *[]PostSummary `json:"relatedPosts"`
}
