package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product operations.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List returns every visible product.
//
// @Summary      List visible products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// Create inserts a new product. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product fields plus acting username"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.CreateProductInput{
		Name:          req.Name,
		AmountInStock: *req.AmountInStock,
		Price:         *req.Price,
		InStock:       req.InStock,
	}

	if _, err := h.catalog.CreateProduct(c.Request().Context(), req.CurrentUser, input); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("create_product").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "the product has been successfully created"})
}

// Update applies a partial update to a product. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change plus acting username"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	patch := ports.ProductPatch{
		Name:          req.Name,
		AmountInStock: req.AmountInStock,
		Price:         req.Price,
		InStock:       req.InStock,
	}

	if _, err := h.catalog.UpdateProduct(c.Request().Context(), req.CurrentUser, c.Param("id"), patch); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("update_product").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "the product has been successfully updated"})
}

// Delete removes a product. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Product id"
// @Param        body  body      actingUserRequest  true  "Acting username"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	var req actingUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), req.CurrentUser, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("delete_product").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "the product has been successfully deleted"})
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		AmountInStock: p.AmountInStock,
		Price:         p.Price,
		InStock:       p.InStock,
	}
}
