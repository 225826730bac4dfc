package ports

import (
	"context"

	"github.com/conneco/feed-api/internal/core/domain"
)

// CreatePostInput is the DTO passed from the transport layer to PostService.
// Fields are raw; the service trims and validates them.
type CreatePostInput struct {
	UserID   int64
	Text     string
	ImageURL string
	Date     string
}

// SearchPostsInput carries the parameters for the name search. Page and Limit
// are sanitized by the service (page >= 1, limit clamped to [1,50], defaults
// 1 and 10).
type SearchPostsInput struct {
	Names []string
	Page  int
	Limit int
}

// SearchPostsResult is one page of joined rows plus its pagination descriptor.
type SearchPostsResult struct {
	Posts      []domain.PostWithUser
	Pagination domain.Pagination
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	ListByOwner(ctx context.Context, userID int64) ([]domain.Post, error)
	Search(ctx context.Context, input SearchPostsInput) (*SearchPostsResult, error)
}
