package handler

import (
	"github.com/conneco/feed-api/internal/core/domain"
)

type createPostRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
	Date     string `json:"date"`
}

type searchPostsRequest struct {
	Names []string `json:"names" validate:"required,min=1"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

type createPostResponse struct {
	Post *domain.Post `json:"post"`
}

type listPostsResponse struct {
	Posts []domain.Post `json:"posts"`
}

type searchPostsResponse struct {
	Posts      []domain.PostWithUser `json:"posts"`
	Pagination domain.Pagination     `json:"pagination"`
}
