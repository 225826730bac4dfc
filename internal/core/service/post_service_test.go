package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

type stubPostRepo struct {
	createFn func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	countFn  func(ctx context.Context, names []string) (int64, error)
	findFn   func(ctx context.Context, names []string, offset, limit int64) ([]domain.PostWithUser, error)

	countCalls int
	findCalls  int
}

func (r *stubPostRepo) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	return r.createFn(ctx, post)
}

func (r *stubPostRepo) FindByOwner(context.Context, int64) ([]domain.Post, error) {
	return nil, nil
}

func (r *stubPostRepo) CountByOwnerNames(ctx context.Context, names []string) (int64, error) {
	r.countCalls++
	return r.countFn(ctx, names)
}

func (r *stubPostRepo) FindByOwnerNames(ctx context.Context, names []string, offset, limit int64) ([]domain.PostWithUser, error) {
	r.findCalls++
	return r.findFn(ctx, names, offset, limit)
}

func TestPostService_Create_TrimsFields(t *testing.T) {
	repo := &stubPostRepo{
		createFn: func(_ context.Context, post *domain.Post) (*domain.Post, error) {
			stored := *post
			stored.ID = 1
			return &stored, nil
		},
	}
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		UserID: 7,
		Text:   "  hi  ",
		Date:   " 2026-01-01 ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.Text != "hi" {
		t.Fatalf("expected trimmed text, got %q", post.Text)
	}
	if post.ImageURL != "" {
		t.Fatalf("expected empty image url, got %q", post.ImageURL)
	}
	if post.Date == nil || *post.Date != "2026-01-01" {
		t.Fatalf("expected trimmed date, got %v", post.Date)
	}
	if post.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", post.UserID)
	}
}

func TestPostService_Create_RequiresContentOrImage(t *testing.T) {
	repo := &stubPostRepo{
		createFn: func(context.Context, *domain.Post) (*domain.Post, error) {
			t.Fatalf("repository should not be called")
			return nil, nil
		},
	}
	svc := NewPostService(repo, zerolog.Nop())

	for _, input := range []ports.CreatePostInput{
		{UserID: 1},
		{UserID: 1, Text: "   ", ImageURL: "\t"},
	} {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrEmptyPost) {
			t.Fatalf("expected ErrEmptyPost, got %v", err)
		}
	}
}

func TestPostService_Search_NormalizesNames(t *testing.T) {
	var gotNames []string
	repo := &stubPostRepo{
		countFn: func(_ context.Context, names []string) (int64, error) {
			gotNames = names
			return 0, nil
		},
		findFn: func(context.Context, []string, int64, int64) ([]domain.PostWithUser, error) {
			return nil, nil
		},
	}
	svc := NewPostService(repo, zerolog.Nop())

	_, err := svc.Search(context.Background(), ports.SearchPostsInput{
		Names: []string{" alice ", "", "  ", "bob"},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !reflect.DeepEqual(gotNames, []string{"alice", "bob"}) {
		t.Fatalf("unexpected normalized names: %v", gotNames)
	}
}

func TestPostService_Search_RejectsEmptyNames(t *testing.T) {
	repo := &stubPostRepo{
		countFn: func(context.Context, []string) (int64, error) {
			t.Fatalf("store should not be reached")
			return 0, nil
		},
	}
	svc := NewPostService(repo, zerolog.Nop())

	for _, names := range [][]string{nil, {}, {"", "  "}} {
		if _, err := svc.Search(context.Background(), ports.SearchPostsInput{Names: names}); !errors.Is(err, domain.ErrEmptySearch) {
			t.Fatalf("expected ErrEmptySearch for %v, got %v", names, err)
		}
	}
	if repo.countCalls != 0 || repo.findCalls != 0 {
		t.Fatalf("store was reached before validation")
	}
}

func TestPostService_Search_Window(t *testing.T) {
	var gotOffset, gotLimit int64
	repo := &stubPostRepo{
		countFn: func(context.Context, []string) (int64, error) { return 25, nil },
		findFn: func(_ context.Context, _ []string, offset, limit int64) ([]domain.PostWithUser, error) {
			gotOffset, gotLimit = offset, limit
			return make([]domain.PostWithUser, 10), nil
		},
	}
	svc := NewPostService(repo, zerolog.Nop())

	result, err := svc.Search(context.Background(), ports.SearchPostsInput{
		Names: []string{"alice"},
		Page:  2,
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotOffset != 10 || gotLimit != 10 {
		t.Fatalf("unexpected window: offset=%d limit=%d", gotOffset, gotLimit)
	}

	p := result.Pagination
	if p.Total != 25 || p.TotalPages != 3 {
		t.Fatalf("unexpected totals: %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 should have both neighbours: %+v", p)
	}
}

func TestPostService_Search_Clamping(t *testing.T) {
	cases := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 0, 1, 10},
		{"limit above cap", 1, 100, 1, 50},
		{"negative limit", 1, -5, 1, 1},
		{"limit in range", 2, 25, 2, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotLimit int64
			repo := &stubPostRepo{
				countFn: func(context.Context, []string) (int64, error) { return 0, nil },
				findFn: func(_ context.Context, _ []string, _, limit int64) ([]domain.PostWithUser, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			svc := NewPostService(repo, zerolog.Nop())

			result, err := svc.Search(context.Background(), ports.SearchPostsInput{
				Names: []string{"alice"},
				Page:  tc.page,
				Limit: tc.limit,
			})
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			if result.Pagination.Page != tc.wantPage {
				t.Fatalf("expected page %d, got %d", tc.wantPage, result.Pagination.Page)
			}
			if result.Pagination.Limit != tc.wantLim || gotLimit != int64(tc.wantLim) {
				t.Fatalf("expected limit %d, got %d (repo saw %d)", tc.wantLim, result.Pagination.Limit, gotLimit)
			}
		})
	}
}

func TestPostService_Search_Boundaries(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		page           int
		wantTotalPages int
		wantNext       bool
		wantPrev       bool
	}{
		{"empty result", 0, 1, 0, false, false},
		{"first of many", 21, 1, 3, true, false},
		{"last page", 21, 3, 3, false, true},
		{"past the end", 21, 9, 3, false, true},
		{"exact multiple", 20, 2, 2, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubPostRepo{
				countFn: func(context.Context, []string) (int64, error) { return tc.total, nil },
				findFn: func(context.Context, []string, int64, int64) ([]domain.PostWithUser, error) {
					return nil, nil
				},
			}
			svc := NewPostService(repo, zerolog.Nop())

			result, err := svc.Search(context.Background(), ports.SearchPostsInput{
				Names: []string{"alice"},
				Page:  tc.page,
				Limit: 10,
			})
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			p := result.Pagination
			if p.TotalPages != tc.wantTotalPages {
				t.Fatalf("expected %d total pages, got %d", tc.wantTotalPages, p.TotalPages)
			}
			if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
				t.Fatalf("unexpected neighbours: %+v", p)
			}
		})
	}
}

func TestPostService_Search_StoreFault(t *testing.T) {
	storeErr := errors.New("cursor timeout")
	repo := &stubPostRepo{
		countFn: func(context.Context, []string) (int64, error) { return 0, storeErr },
	}
	svc := NewPostService(repo, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.SearchPostsInput{Names: []string{"a"}}); !errors.Is(err, storeErr) {
		t.Fatalf("store fault should propagate unchanged, got %v", err)
	}
}
