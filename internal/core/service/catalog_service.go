package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CatalogCache abstracts the visible-product listing cache (Redis). The cache
// is advisory: failures are logged and the store stays authoritative.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements the product and category lifecycle.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	authz      ports.Authorizer
	cache      CatalogCache // optional, may be nil
	logger     zerolog.Logger
}

func NewCatalogService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	authz ports.Authorizer,
	cache CatalogCache,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		authz:      authz,
		cache:      cache,
		logger:     logger,
	}
}

// ListProducts returns every product with in_stock=true, served from the
// cache when warm. Order is store-defined.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	products, err := s.products.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

// CreateProduct inserts unconditionally after the authorization gate; there
// is no duplicate-name check. in_stock defaults to true when omitted.
func (s *CatalogService) CreateProduct(ctx context.Context, actingUsername string, input ports.CreateProductInput) (*domain.Product, error) {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return nil, err
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &domain.Product{
		Name:          input.Name,
		AmountInStock: input.AmountInStock,
		Price:         input.Price,
		InStock:       inStock,
	}

	created, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct applies a partial update: nil patch fields keep the stored
// value. in_stock is set exactly as given and never derived from the amount.
func (s *CatalogService) UpdateProduct(ctx context.Context, actingUsername, productID string, patch ports.ProductPatch) (*domain.Product, error) {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.AmountInStock != nil {
		product.AmountInStock = *patch.AmountInStock
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("product_id", productID).Msg("product updated")
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, actingUsername, productID string) error {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return err
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("product_id", productID).Msg("product deleted")
	return nil
}

// CreateCategory goes through the same username-to-role gate as products.
func (s *CatalogService) CreateCategory(ctx context.Context, actingUsername, name string) (*domain.Category, error) {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return nil, err
	}

	created, err := s.categories.Insert(ctx, &domain.Category{Name: name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, actingUsername, categoryID, name string) (*domain.Category, error) {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", categoryID).Msg("category updated")
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, actingUsername, categoryID string) error {
	if err := s.authz.Authorize(ctx, actingUsername); err != nil {
		return err
	}

	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return err
	}

	s.logger.Info().Str("category_id", categoryID).Msg("category deleted")
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
