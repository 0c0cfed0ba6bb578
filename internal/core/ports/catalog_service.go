package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product. InStock defaults
// to true when omitted.
type CreateProductInput struct {
	Name          string
	AmountInStock int
	Price         float64
	InStock       *bool
}

// ProductPatch is a partial update: nil fields keep the stored value.
type ProductPatch struct {
	Name          *string
	AmountInStock *int
	Price         *float64
	InStock       *bool
}

// CatalogService owns the product and category lifecycle. Every mutation is
// gated on the acting user being an admin.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, actingUsername string, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actingUsername, productID string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, actingUsername, productID string) error

	CreateCategory(ctx context.Context, actingUsername, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, actingUsername, categoryID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, actingUsername, categoryID string) error
}
