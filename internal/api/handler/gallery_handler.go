package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// GalleryHandler serves /api/admin/galleries and its photos.
type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

type createGalleryRequest struct {
	Titulo      string `json:"titulo" validate:"required"`
	Slug        string `json:"slug"`
	Descricao   string `json:"descricao"`
	CategoriaID string `json:"categoria_id"`
	CapaURL     string `json:"capa_url"`
	VideoURL    string `json:"video_url"`
	Principal   bool   `json:"principal"`
	Ativo       *bool  `json:"ativo"`
}

type updateGalleryRequest struct {
	ID          string  `json:"id" validate:"required"`
	Titulo      *string `json:"titulo"`
	Slug        *string `json:"slug"`
	Descricao   *string `json:"descricao"`
	CategoriaID *string `json:"categoria_id"`
	CapaURL     *string `json:"capa_url"`
	VideoURL    *string `json:"video_url"`
	Principal   *bool   `json:"principal"`
	Ativo       *bool   `json:"ativo"`
	Ordem       *int    `json:"ordem"`
}

// List returns galleries, optionally filtered.
//
// @Summary      List galleries
// @Tags         galleries
// @Produce      json
// @Param        categoria_id  query     string  false  "Category filter"
// @Param        principal     query     bool    false  "Only home-page galleries"
// @Success      200  {array}   domain.Gallery
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/galleries [get]
func (h *GalleryHandler) List(c echo.Context) error {
	filter := domain.GalleryFilter{CategoriaID: c.QueryParam("categoria_id")}
	if raw := c.QueryParam("principal"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Invalid("principal deve ser true ou false")
		}
		filter.Principal = &v
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a gallery. At most six galleries may be principal.
//
// @Summary      Create gallery
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Param        body  body      createGalleryRequest  true  "Gallery"
// @Success      201   {object}  domain.Gallery
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/galleries [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req createGalleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	g, err := h.service.Create(c.Request().Context(), ports.GalleryInput{
		Titulo:      req.Titulo,
		Slug:        req.Slug,
		Descricao:   req.Descricao,
		CategoriaID: req.CategoriaID,
		CapaURL:     req.CapaURL,
		VideoURL:    req.VideoURL,
		Principal:   req.Principal,
		Ativo:       ativo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, g)
}

// Update changes the fields present in the body.
//
// @Summary      Update gallery
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Param        body  body      updateGalleryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Gallery
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/galleries [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	var req updateGalleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	g, err := h.service.Update(c.Request().Context(), req.ID, ports.UpdateGalleryInput{
		Titulo:      req.Titulo,
		Slug:        req.Slug,
		Descricao:   req.Descricao,
		CategoriaID: req.CategoriaID,
		CapaURL:     req.CapaURL,
		VideoURL:    req.VideoURL,
		Principal:   req.Principal,
		Ativo:       req.Ativo,
		Ordem:       req.Ordem,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// Delete removes a gallery with its photos. Media assets are deleted in the
// background.
//
// @Summary      Delete gallery
// @Tags         galleries
// @Produce      json
// @Param        id   query     string  true  "Gallery ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/galleries [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
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
// @Summary      Reorder galleries
// @Tags         galleries
// @Accept       json
// @Param        body  body      reorderRequest  true  "Ordered ids"
// @Success      200   {object}  successResponse
// @Router       /api/admin/galleries/reorder [put]
func (h *GalleryHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Reorder(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return ok(c)
}
