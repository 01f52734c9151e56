package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/api/metrics"
	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// MaxUploadBytes bounds a single upload body.
const MaxUploadBytes = 100 << 20

// UploadHandler proxies files to the media host. A nil store means the host
// is not configured and uploads answer 503.
type UploadHandler struct {
	store ports.MediaStore
}

func NewUploadHandler(store ports.MediaStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload forwards the multipart file to the media host under folder.
//
// @Summary      Upload media
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Image or video"
// @Param        folder  formData  string  false  "Destination folder"
// @Success      201  {object}  domain.MediaAsset
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/admin/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if h.store == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Upload não configurado")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return domain.Invalid("Arquivo é obrigatório")
		}
		return domain.Invalid("Upload inválido")
	}
	if fh.Size > MaxUploadBytes {
		return domain.Invalid("Arquivo excede o limite de 100MB")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	asset, err := h.store.Upload(c.Request().Context(), f, fh.Filename, c.FormValue("folder"))
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.MediaUploadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, asset)
}
