package ports

import (
	"context"

	"github.com/conneco/feed-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user with a store-assigned id and returns the
	// stored row.
	Create(ctx context.Context, name, pass string) (*domain.User, error)
	// FindByPass returns the first user whose stored credential equals pass.
	FindByPass(ctx context.Context, pass string) (*domain.User, error)
	// FindByIDAndPass returns the user matching both id and credential.
	// This is the token re-validation lookup: zero rows means the
	// credential changed since issuance.
	FindByIDAndPass(ctx context.Context, id int64, pass string) (*domain.User, error)
}
