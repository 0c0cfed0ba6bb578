package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindVisibleByID matches id and in_stock=true in a single query.
	FindVisibleByID(ctx context.Context, id string) (*domain.Product, error)
	// ListVisible returns every product with in_stock=true. Order is
	// store-defined.
	ListVisible(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
