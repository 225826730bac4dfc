package domain

import (
	"errors"
	"time"
)

var ErrEmptyPost = errors.New("at least one of text or image_url is required")
var ErrEmptySearch = errors.New("at least one valid name is required")

// Post is immutable once created. Date is a free-form client-supplied string
// and is not validated as a calendar date.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Date      *string   `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// PostOwner is the slice of the owning user exposed in search results.
type PostOwner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PostWithUser joins a post with its owner for search responses.
type PostWithUser struct {
	Post
	User PostOwner `json:"user"`
}

// Pagination describes a search result window.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}
