package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type photoRequest struct {
	URL      string `json:"url" validate:"required"`
	PublicID string `json:"public_id"`
	Legenda  string `json:"legenda"`
}

// createPhotosRequest accepts either a single photo inline or a batch in fotos.
type createPhotosRequest struct {
	GaleriaID string         `json:"galeria_id" validate:"required"`
	URL       string         `json:"url"`
	PublicID  string         `json:"public_id"`
	Legenda   string         `json:"legenda"`
	Fotos     []photoRequest `json:"fotos" validate:"dive"`
}

func (r createPhotosRequest) inputs() []ports.PhotoInput {
	if len(r.Fotos) == 0 {
		if r.URL == "" {
			return nil
		}
		return []ports.PhotoInput{{URL: r.URL, PublicID: r.PublicID, Legenda: r.Legenda}}
	}
	out := make([]ports.PhotoInput, 0, len(r.Fotos))
	for _, f := range r.Fotos {
		out = append(out, ports.PhotoInput{URL: f.URL, PublicID: f.PublicID, Legenda: f.Legenda})
	}
	return out
}

type updatePhotoRequest struct {
	ID      string  `json:"id" validate:"required"`
	Legenda *string `json:"legenda"`
	Ordem   *int    `json:"ordem"`
}

// Photos lists the photos of one gallery.
//
// @Summary      List photos
// @Tags         photos
// @Produce      json
// @Param        galeria_id  query     string  true  "Gallery ID"
// @Success      200  {array}   domain.Photo
// @Router       /api/admin/galleries/photos [get]
func (h *GalleryHandler) Photos(c echo.Context) error {
	galleryID, err := queryID(c, "galeria_id")
	if err != nil {
		return err
	}
	items, err := h.service.Photos(c.Request().Context(), galleryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// AddPhotos attaches one photo or a batch to a gallery.
//
// @Summary      Add photos
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        body  body      createPhotosRequest  true  "Photo or batch"
// @Success      201   {array}   domain.Photo
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/galleries/photos [post]
func (h *GalleryHandler) AddPhotos(c echo.Context) error {
	var req createPhotosRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in := req.inputs()
	if len(in) == 0 {
		return domain.Invalid("Nenhuma foto enviada")
	}

	photos, err := h.service.AddPhotos(c.Request().Context(), req.GaleriaID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, photos)
}

// UpdatePhoto changes the caption or position of a photo.
//
// @Summary      Update photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        body  body      updatePhotoRequest  true  "Fields to change"
// @Success      200   {object}  domain.Photo
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/galleries/photos [put]
func (h *GalleryHandler) UpdatePhoto(c echo.Context) error {
	var req updatePhotoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.UpdatePhoto(c.Request().Context(), req.ID, req.Legenda, req.Ordem)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePhoto removes a photo; its media asset is deleted in the background.
//
// @Summary      Delete photo
// @Tags         photos
// @Produce      json
// @Param        id   query     string  true  "Photo ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/galleries/photos [delete]
func (h *GalleryHandler) DeletePhoto(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeletePhoto(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c)
}

// ReorderPhotos sets the photo order inside a gallery.
//
// @Summary      Reorder photos
// @Tags         photos
// @Accept       json
// @Param        body  body      reorderRequest  true  "Ordered ids"
// @Success      200   {object}  successResponse
// @Router       /api/admin/galleries/photos/reorder [put]
func (h *GalleryHandler) ReorderPhotos(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.ReorderPhotos(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return ok(c)
}
