package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// CategoryHandler serves /api/admin/categories.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Nome string `json:"nome" validate:"required"`
}

type updateCategoryRequest struct {
	ID    string  `json:"id" validate:"required"`
	Nome  *string `json:"nome"`
	Ordem *int    `json:"ordem"`
}

// List returns all categories in display order.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Router       /api/admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a category; the slug derives from the name.
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.service.Create(c.Request().Context(), req.Nome)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

// Update renames or moves a category.
//
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      updateCategoryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/categories [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.service.Update(c.Request().Context(), req.ID, req.Nome, req.Ordem)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Delete removes an unused category.
//
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Param        id   query     string  true  "Category ID"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/categories [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c)
}

// Reorder sets the display order from the position of each id.
//
// @Summary      Reorder categories
// @Tags         categories
// @Accept       json
// @Param        body  body      reorderRequest  true  "Ordered ids"
// @Success      200   {object}  successResponse
// @Router       /api/admin/categories/reorder [put]
func (h *CategoryHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Reorder(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return ok(c)
}
