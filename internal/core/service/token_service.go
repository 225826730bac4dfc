package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// tokenClaims is the signed payload: the subject user id and the credential
// embedded at issuance time. Embedding the credential lets the auth gate
// re-validate it against the store on every request, so a credential change
// revokes all outstanding tokens without server-side session state.
type tokenClaims struct {
	UserID   string `json:"userId"`
	UserPass string `json:"userPass"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 token pairs with one shared secret.
// The key is read-only after construction and safe to share across requests.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(userID, userPass string) (*ports.TokenPair, error) {
	access, err := s.sign(userID, userPass, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(userID, userPass, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &ports.TokenPair{Access: access, Refresh: refresh}, nil
}

// Verify returns domain.ErrInvalidToken for anything a client can cause:
// malformed input, signature mismatch, expiry. Invalid tokens are routine and
// must map to a 401-class outcome, not a fault.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: claims.UserID, UserPass: claims.UserPass}, nil
}

// Refresh re-issues both tokens from a valid refresh token. There is no
// rotation tracking: the presented refresh token stays valid until its own
// expiry regardless of how many times it is used.
func (s *TokenService) Refresh(refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.Issue(claims.UserID, claims.UserPass)
}

func (s *TokenService) sign(userID, userPass string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		UserID:   userID,
		UserPass: userPass,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
