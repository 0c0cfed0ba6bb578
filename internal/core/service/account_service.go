package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// AccountService implements registration, login and deactivation.
type AccountService struct {
	users  ports.UserRepository
	authz  ports.Authorizer
	logger zerolog.Logger
}

func NewAccountService(users ports.UserRepository, authz ports.Authorizer, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, authz: authz, logger: logger}
}

// Register creates a user with is_active=true. The username must be globally
// unique; the pre-check keeps the friendly Conflict message, and the store's
// unique index closes the race between two concurrent registrations. Role is
// stored as given without enum validation.
func (s *AccountService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	}

	user := &domain.User{
		Username: username,
		Password: password,
		Role:     role,
		IsActive: true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("user registered")
	return created, nil
}

// Login succeeds iff the stored password equals the supplied one exactly.
// It does not consult is_active; only cart operations require an active
// account. Unknown user and wrong password produce the same error.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Deactivate flips is_active to false on the target account. The acting user
// is authorized first; the target existence check runs only after the gate.
func (s *AccountService) Deactivate(ctx context.Context, actingUsername, targetUsername string) error {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return err
	}

	user, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if err := s.users.SetActive(ctx, user.ID, false); err != nil {
		return err
	}

	s.logger.Info().Str("username", targetUsername).Str("acting_user", actingUsername).Msg("user deactivated")
	return nil
}
