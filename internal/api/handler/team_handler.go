package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// TeamHandler serves /api/admin/team.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type createTeamMemberRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Cargo     string `json:"cargo"`
	Bio       string `json:"bio"`
	FotoURL   string `json:"foto_url"`
	Instagram string `json:"instagram"`
	Ativo     *bool  `json:"ativo"`
}

type updateTeamMemberRequest struct {
	ID        string  `json:"id" validate:"required"`
	Nome      *string `json:"nome"`
	Cargo     *string `json:"cargo"`
	Bio       *string `json:"bio"`
	FotoURL   *string `json:"foto_url"`
	Instagram *string `json:"instagram"`
	Ativo     *bool   `json:"ativo"`
	Ordem     *int    `json:"ordem"`
}

// List returns every team member in display order.
//
// @Summary      List team
// @Tags         team
// @Produce      json
// @Success      200  {array}  domain.TeamMember
// @Router       /api/admin/team [get]
func (h *TeamHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a team member.
//
// @Summary      Create team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body      createTeamMemberRequest  true  "Member"
// @Success      201   {object}  domain.TeamMember
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/team [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.service.Create(c.Request().Context(), ports.TeamMemberInput{
		Nome:      req.Nome,
		Cargo:     req.Cargo,
		Bio:       req.Bio,
		FotoURL:   req.FotoURL,
		Instagram: req.Instagram,
		Ativo:     boolOr(req.Ativo, true),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

// Update changes the fields present in the body.
//
// @Summary      Update team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body      updateTeamMemberRequest  true  "Fields to change"
// @Success      200   {object}  domain.TeamMember
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/team [put]
func (h *TeamHandler) Update(c echo.Context) error {
	var req updateTeamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.service.Update(c.Request().Context(), req.ID, domain.TeamMemberPatch{
		Nome:      req.Nome,
		Cargo:     req.Cargo,
		Bio:       req.Bio,
		FotoURL:   req.FotoURL,
		Instagram: req.Instagram,
		Ativo:     req.Ativo,
		Ordem:     req.Ordem,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a team member.
//
// @Summary      Delete team member
// @Tags         team
// @Param        id   query     string  true  "Member ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/team [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
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
// @Summary      Reorder team
// @Tags         team
// @Accept       json
// @Param        body  body      reorderRequest  true  "Ordered ids"
// @Success      200   {object}  successResponse
// @Router       /api/admin/team/reorder [put]
func (h *TeamHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Reorder(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return ok(c)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
