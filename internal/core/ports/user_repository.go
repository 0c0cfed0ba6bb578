package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindActiveByCredentials matches username and password exactly and
	// additionally requires is_active=true. Used by cart re-authentication.
	FindActiveByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	UpdateCart(ctx context.Context, id string, cart map[string]int) error
	SetActive(ctx context.Context, id string, active bool) error
}
