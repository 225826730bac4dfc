package ports

import (
	"context"

	"github.com/conneco/feed-api/internal/core/domain"
)

// AuthResult is returned by signup and login.
type AuthResult struct {
	User   *domain.User
	Tokens *TokenPair
}

type AuthService interface {
	Signup(ctx context.Context, name, pass string) (*AuthResult, error)
	Login(ctx context.Context, pass string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
