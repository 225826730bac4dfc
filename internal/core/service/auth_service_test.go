package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/conneco/feed-api/internal/core/domain"
)

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, name, pass string) (*domain.User, error) {
	r.nextID++
	user := &domain.User{ID: r.nextID, Name: name, Pass: pass, CreatedAt: time.Now().UTC()}
	r.users[user.ID] = user
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) FindByPass(_ context.Context, pass string) (*domain.User, error) {
	var found *domain.User
	for _, u := range r.users {
		if u.Pass == pass && (found == nil || u.ID < found.ID) {
			found = u
		}
	}
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	clone := *found
	return &clone, nil
}

func (r *stubUserRepo) FindByIDAndPass(_ context.Context, id int64, pass string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Pass != pass {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("secret")
	svc := NewAuthService(repo, tokens, zerolog.Nop())

	result, err := svc.Signup(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.User == nil || result.User.Name != "alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := tokens.Verify(result.Tokens.Access)
	if err != nil {
		t.Fatalf("access token invalid immediately after signup: %v", err)
	}
	if claims.UserID != strconv.FormatInt(result.User.ID, 10) {
		t.Fatalf("token subject %s does not match user id %d", claims.UserID, result.User.ID)
	}
	if claims.UserPass != "pass123" {
		t.Fatalf("token should embed the stored credential, got %q", claims.UserPass)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewTokenService("secret"), zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("secret")
	svc := NewAuthService(repo, tokens, zerolog.Nop())

	created, err := svc.Signup(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.User.ID != created.User.ID {
		t.Fatalf("expected user %d, got %d", created.User.ID, result.User.ID)
	}
	if _, err := tokens.Verify(result.Tokens.Refresh); err != nil {
		t.Fatalf("refresh token invalid after login: %v", err)
	}
}

func TestAuthService_Login_UnknownCredential(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewTokenService("secret"), zerolog.Nop())

	if _, err := svc.Login(context.Background(), "nobody"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

type failingUserRepo struct {
	stubUserRepo
	err error
}

func (r *failingUserRepo) FindByPass(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func TestAuthService_Login_StoreFault(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &failingUserRepo{err: storeErr}
	svc := NewAuthService(repo, NewTokenService("secret"), zerolog.Nop())

	_, err := svc.Login(context.Background(), "pass")
	if !errors.Is(err, storeErr) {
		t.Fatalf("store fault should propagate unchanged, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	tokens := NewTokenService("secret")
	svc := NewAuthService(newStubUserRepo(), tokens, zerolog.Nop())

	pair, err := tokens.Issue("9", "pass")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	renewed, err := svc.Refresh(context.Background(), pair.Refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if renewed.Access == "" || renewed.Refresh == "" {
		t.Fatalf("expected new pair, got %+v", renewed)
	}

	if _, err := svc.Refresh(context.Background(), "bogus"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
