package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations. Categories
// authorize through the same guard as products.
type CategoryHandler struct {
	catalog ports.CatalogService
}

func NewCategoryHandler(catalog ports.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// Create inserts a new category. Admin only.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category name plus acting username"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.catalog.CreateCategory(c.Request().Context(), req.CurrentUser, req.Name); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("create_category").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "the category has been successfully created"})
}

// Update renames a category. Admin only.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Category id"
// @Param        body  body      categoryRequest  true  "New name plus acting username"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.catalog.UpdateCategory(c.Request().Context(), req.CurrentUser, c.Param("id"), req.Name); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("update_category").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "the category has been successfully updated"})
}

// Delete removes a category. Admin only.
//
// @Summary      Delete a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Category id"
// @Param        body  body      actingUserRequest  true  "Acting username"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	var req actingUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.catalog.DeleteCategory(c.Request().Context(), req.CurrentUser, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			metrics.AuthDenialsTotal.WithLabelValues("delete_category").Inc()
		}
		return respondError(c, err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "the category has been successfully deleted"})
}
