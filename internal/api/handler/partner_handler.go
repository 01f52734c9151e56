package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// PartnerHandler serves /api/admin/partners.
type PartnerHandler struct {
	service ports.PartnerService
}

func NewPartnerHandler(service ports.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: service}
}

type createPartnerRequest struct {
	Nome    string `json:"nome" validate:"required"`
	LogoURL string `json:"logo_url"`
	SiteURL string `json:"site_url"`
	Ativo   *bool  `json:"ativo"`
}

type updatePartnerRequest struct {
	ID      string  `json:"id" validate:"required"`
	Nome    *string `json:"nome"`
	LogoURL *string `json:"logo_url"`
	SiteURL *string `json:"site_url"`
	Ativo   *bool   `json:"ativo"`
	Ordem   *int    `json:"ordem"`
}

// List returns every partner in display order.
//
// @Summary      List partners
// @Tags         partners
// @Produce      json
// @Success      200  {array}  domain.Partner
// @Router       /api/admin/partners [get]
func (h *PartnerHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a partner logo.
//
// @Summary      Create partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body      createPartnerRequest  true  "Partner"
// @Success      201   {object}  domain.Partner
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/partners [post]
func (h *PartnerHandler) Create(c echo.Context) error {
	var req createPartnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Create(c.Request().Context(), ports.PartnerInput{
		Nome:    req.Nome,
		LogoURL: req.LogoURL,
		SiteURL: req.SiteURL,
		Ativo:   boolOr(req.Ativo, true),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update changes the fields present in the body.
//
// @Summary      Update partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body      updatePartnerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Partner
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/partners [put]
func (h *PartnerHandler) Update(c echo.Context) error {
	var req updatePartnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Update(c.Request().Context(), req.ID, domain.PartnerPatch{
		Nome:    req.Nome,
		LogoURL: req.LogoURL,
		SiteURL: req.SiteURL,
		Ativo:   req.Ativo,
		Ordem:   req.Ordem,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a partner.
//
// @Summary      Delete partner
// @Tags         partners
// @Param        id   query     string  true  "Partner ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/partners [delete]
func (h *PartnerHandler) Delete(c echo.Context) error {
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
// @Summary      Reorder partners
// @Tags         partners
// @Accept       json
// @Param        body  body      reorderRequest  true  "Ordered ids"
// @Success      200   {object}  successResponse
// @Router       /api/admin/partners/reorder [put]
func (h *PartnerHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Reorder(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return ok(c)
}
