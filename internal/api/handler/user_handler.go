package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// UserHandler manages panel accounts. Mounted behind RBAC(admin).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Nome  string `json:"nome" validate:"required"`
	Senha string `json:"senha" validate:"required"`
	Role  string `json:"role"`
}

type updateUserRequest struct {
	ID    string  `json:"id" validate:"required"`
	Nome  *string `json:"nome"`
	Role  *string `json:"role"`
	Ativo *bool   `json:"ativo"`
	Senha *string `json:"senha"`
}

// List returns every account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds an account.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Nome:     req.Nome,
		Password: req.Senha,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

// Update changes the fields present in the body.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.Update(c.Request().Context(), req.ID, ports.UpdateUserInput{
		Nome:     req.Nome,
		Role:     req.Role,
		Ativo:    req.Ativo,
		Password: req.Senha,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete removes an account other than the caller's own.
//
// @Summary      Delete user
// @Tags         users
// @Param        id   query     string  true  "User ID"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor.ID, id); err != nil {
		return err
	}
	return ok(c)
}
