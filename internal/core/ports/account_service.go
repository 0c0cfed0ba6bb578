package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// AccountService owns the user lifecycle and username uniqueness.
type AccountService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Deactivate(ctx context.Context, actingUsername, targetUsername string) error
}
