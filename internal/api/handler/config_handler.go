package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// ConfigHandler serves the site key/value configuration.
type ConfigHandler struct {
	service ports.ConfigService
}

func NewConfigHandler(service ports.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// Get returns the whole configuration map.
//
// @Summary      Get configuration
// @Tags         config
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/admin/config [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Update upserts the keys present in the body.
//
// @Summary      Update configuration
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]string  true  "Keys to upsert"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/config [put]
func (h *ConfigHandler) Update(c echo.Context) error {
	var values domain.SiteConfig
	if err := c.Bind(&values); err != nil {
		return domain.Invalid("Payload inválido")
	}
	if len(values) == 0 {
		return domain.Invalid("Nenhuma configuração enviada")
	}
	cfg, err := h.service.Update(c.Request().Context(), values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
