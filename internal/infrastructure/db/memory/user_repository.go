// Package memory provides map-backed repositories guarded by mutexes. They
// back the service test suites and match the Mongo repositories' semantics,
// including username uniqueness on insert.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := cloneUser(user)
	stored.ID = uuid.NewString()
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindActiveByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username && u.Password == password && u.IsActive {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) UpdateCart(_ context.Context, id string, cart map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Cart = cloneCart(cart)
	return nil
}

func (r *UserRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Cart = cloneCart(u.Cart)
	return &clone
}

func cloneCart(cart map[string]int) map[string]int {
	if cart == nil {
		return nil
	}
	out := make(map[string]int, len(cart))
	for k, v := range cart {
		out[k] = v
	}
	return out
}
