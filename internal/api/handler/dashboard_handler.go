package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview returns the panel counters.
//
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	d, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
