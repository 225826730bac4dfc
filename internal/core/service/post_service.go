package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// PostService implements post creation, owner listing, and name search.
type PostService struct {
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

// Create persists a post for the authenticated owner. At least one of text or
// image_url must be non-empty after trimming; whitespace-only values count as
// absent.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	text := strings.TrimSpace(input.Text)
	imageURL := strings.TrimSpace(input.ImageURL)
	if text == "" && imageURL == "" {
		return nil, domain.ErrEmptyPost
	}

	post := &domain.Post{
		UserID:   input.UserID,
		Text:     text,
		ImageURL: imageURL,
	}
	if date := strings.TrimSpace(input.Date); date != "" {
		post.Date = &date
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", created.ID).Int64("user_id", created.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) ListByOwner(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.posts.FindByOwner(ctx, userID)
}

// Search runs the paginated join over posts and their owners. The total is
// counted independently of the page window so it stays consistent across
// pages.
func (s *PostService) Search(ctx context.Context, input ports.SearchPostsInput) (*ports.SearchPostsResult, error) {
	names := normalizeNames(input.Names)
	if len(names) == 0 {
		return nil, domain.ErrEmptySearch
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total, err := s.posts.CountByOwnerNames(ctx, names)
	if err != nil {
		return nil, err
	}

	offset := int64(page-1) * int64(limit)
	posts, err := s.posts.FindByOwnerNames(ctx, names, offset, int64(limit))
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.SearchPostsResult{
		Posts: posts,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// normalizeNames trims every candidate and drops the empty ones.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
