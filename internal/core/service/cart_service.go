package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

const cartLockShards = 32

// CartService implements merge-on-add cart mutation and the view-time join
// against live catalog state. Cart writes for the same user are serialized by
// a sharded lock (fnv hash of the username), so concurrent adds cannot lose
// an increment. Cart quantities never touch product stock.
type CartService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	locks    [cartLockShards]sync.Mutex
	logger   zerolog.Logger
}

func NewCartService(users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{users: users, products: products, logger: logger}
}

// AddToCart re-authenticates with username+password and requires an active
// account. The product must exist and be visible. An existing entry has its
// quantity incremented; otherwise a new entry is inserted.
func (s *CartService) AddToCart(ctx context.Context, username, password, productID string, quantity int) error {
	mu := s.lockFor(username)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.users.FindActiveByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrAccountUnavailable
		}
		return err
	}

	if _, err := s.products.FindVisibleByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.ErrProductUnavailable
		}
		return err
	}

	cart := user.Cart
	if cart == nil {
		cart = make(map[string]int)
	}
	cart[productID] += quantity

	if err := s.users.UpdateCart(ctx, user.ID, cart); err != nil {
		return err
	}

	s.logger.Info().
		Str("username", username).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("product added to cart")
	return nil
}

// ViewCart joins each stored cart entry against current product state.
// Entries whose product is missing or delisted are skipped; they stay in the
// stored cart and reappear if the product comes back in stock.
func (s *CartService) ViewCart(ctx context.Context, username, password string) (*ports.CartView, error) {
	user, err := s.users.FindActiveByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccountUnavailable
		}
		return nil, err
	}

	view := &ports.CartView{Entries: []ports.CartEntry{}}
	for productID, quantity := range user.Cart {
		product, err := s.products.FindVisibleByID(ctx, productID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := product.Price * float64(quantity)
		view.Entries = append(view.Entries, ports.CartEntry{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Subtotal:    subtotal,
		})
		view.TotalPrice += subtotal
	}
	return view, nil
}

// lockFor maps a username deterministically to one of the shard locks.
func (s *CartService) lockFor(username string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return &s.locks[int(h.Sum32())%cartLockShards]
}
