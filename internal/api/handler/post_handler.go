package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conneco/feed-api/internal/api/metrics"
	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. All routes require
// the auth middleware.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create persists a new post owned by the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  createPostResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		UserID:   user.ID,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, createPostResponse{Post: post})
}

// ListMine returns all posts owned by the authenticated user, newest first.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPostsResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/user [get]
func (h *PostHandler) ListMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	return respond(c, http.StatusOK, listPostsResponse{Posts: posts})
}

// Search returns a page of posts owned by any of the named users. Any
// authenticated caller may search across all users' posts.
//
// @Summary      Search posts by owner names
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      searchPostsRequest  true  "Names and pagination"
// @Success      200   {object}  searchPostsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts/search [post]
func (h *PostHandler) Search(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req searchPostsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result, err := h.service.Search(c.Request().Context(), ports.SearchPostsInput{
		Names: req.Names,
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		return err
	}
	metrics.PostSearchesTotal.Inc()
	metrics.PostSearchDuration.Observe(time.Since(start).Seconds())

	if result.Posts == nil {
		result.Posts = []domain.PostWithUser{}
	}
	return respond(c, http.StatusOK, searchPostsResponse{
		Posts:      result.Posts,
		Pagination: result.Pagination,
	})
}
