package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Add puts a product in the caller's cart, accumulating quantity.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addToCartRequest  true  "Credentials, product id and quantity"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.cart.AddToCart(c.Request().Context(), req.Username, req.Password, req.ProductID, req.Quantity); err != nil {
		return respondError(c, err)
	}

	metrics.CartAddsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "product added to cart"})
}

// View returns the cart joined against live catalog state.
//
// @Summary      View the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      viewCartRequest  true  "Credentials"
// @Success      200   {object}  viewCartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) View(c echo.Context) error {
	var req viewCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	view, err := h.cart.ViewCart(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	entries := make([]cartEntryResponse, len(view.Entries))
	for i, e := range view.Entries {
		entries[i] = cartEntryResponse{
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			Quantity:    e.Quantity,
			Subtotal:    e.Subtotal,
		}
	}

	return c.JSON(http.StatusOK, viewCartResponse{
		Cart:       entries,
		TotalPrice: view.TotalPrice,
	})
}
