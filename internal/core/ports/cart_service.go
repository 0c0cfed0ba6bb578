package ports

import "context"

// CartEntry is the view-time join of a stored cart line against the live
// product. It is computed on demand and never persisted.
type CartEntry struct {
	ProductID   string
	ProductName string
	Quantity    int
	Subtotal    float64
}

// CartView aggregates the visible cart entries and their total price.
// Entries whose product is missing or delisted are excluded from the view but
// remain in the stored cart.
type CartView struct {
	Entries    []CartEntry
	TotalPrice float64
}

// CartService owns the per-user cart map and its price aggregation.
type CartService interface {
	AddToCart(ctx context.Context, username, password, productID string, quantity int) error
	ViewCart(ctx context.Context, username, password string) (*CartView, error)
}
