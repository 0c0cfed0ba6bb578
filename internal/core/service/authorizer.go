package service

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// Authorizer resolves the acting user's role by username lookup and grants
// only existing admins. Activation state is deliberately not consulted: an
// admin's own deactivation does not block admin actions.
type Authorizer struct {
	users ports.UserRepository
}

func NewAuthorizer(users ports.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

func (a *Authorizer) Authorize(ctx context.Context, actingUsername string) error {
	user, err := a.users.FindByUsername(ctx, actingUsername)
	if err != nil {
		return domain.ErrNotAuthorized
	}
	if user.Role != domain.RoleAdmin {
		return domain.ErrNotAuthorized
	}
	return nil
}
