package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]domain.Category)}
}

func (r *CategoryRepository) Insert(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.ID = uuid.NewString()
	r.categories[stored.ID] = stored
	return &stored, nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// Len reports the number of stored categories.
func (r *CategoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}
