package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/api/middleware"
	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// currentUser returns the identity injected by the Session middleware. Its
// absence means the route was mounted without Session and is rejected.
func currentUser(c echo.Context) (*domain.SessionUser, error) {
	user, ok := middleware.User(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado")
	}
	return user, nil
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("Payload inválido")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}

// queryID reads a required identifier from the query string.
func queryID(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.QueryParam(name))
	if id == "" {
		return "", domain.Invalid(name + " é obrigatório")
	}
	return id, nil
}

type successResponse struct {
	Success bool `json:"success"`
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

type reorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
