package ports

import (
	"context"

	"github.com/conneco/feed-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByOwner returns all posts owned by userID, newest first.
	FindByOwner(ctx context.Context, userID int64) ([]domain.Post, error)
	// CountByOwnerNames counts posts whose owner's name is in names,
	// independent of any pagination window.
	CountByOwnerNames(ctx context.Context, names []string) (int64, error)
	// FindByOwnerNames returns one page of posts whose owner's name is in
	// names, joined with the owner, ordered by creation time descending
	// with id descending as tie-break.
	FindByOwnerNames(ctx context.Context, names []string, offset, limit int64) ([]domain.PostWithUser, error)
}
