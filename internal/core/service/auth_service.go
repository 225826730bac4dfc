package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

// AuthService implements signup, login, and token refresh.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, name, pass string) (*ports.AuthResult, error) {
	if name == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.Create(ctx, name, pass)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	tokens, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), user.Pass)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("name", user.Name).Msg("user created")

	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

// Login locates the account by credential equality. There is no account
// selector in the request, so the first matching row wins; names are expected
// unique but not enforced.
func (s *AuthService) Login(ctx context.Context, pass string) (*ports.AuthResult, error) {
	if pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByPass(ctx, pass)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	tokens, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), user.Pass)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	return s.tokens.Refresh(refreshToken)
}
