package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// TemplateHandler serves the WhatsApp message templates.
type TemplateHandler struct {
	service ports.TemplateService
}

func NewTemplateHandler(service ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

type createTemplateRequest struct {
	Titulo    string `json:"titulo" validate:"required"`
	Mensagem  string `json:"mensagem" validate:"required"`
	Categoria string `json:"categoria"`
	Ativo     *bool  `json:"ativo"`
}

type updateTemplateRequest struct {
	ID        string  `json:"id" validate:"required"`
	Titulo    *string `json:"titulo"`
	Mensagem  *string `json:"mensagem"`
	Categoria *string `json:"categoria"`
	Ativo     *bool   `json:"ativo"`
	Ordem     *int    `json:"ordem"`
}

// List returns templates grouped by category.
//
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  domain.MessageTemplate
// @Router       /api/admin/templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a template. Placeholders: {nome}, {empresa}, {tipo_projeto}.
//
// @Summary      Create template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      createTemplateRequest  true  "Template"
// @Success      201   {object}  domain.MessageTemplate
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/templates [post]
func (h *TemplateHandler) Create(c echo.Context) error {
	var req createTemplateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.service.Create(c.Request().Context(), ports.TemplateInput{
		Titulo:    req.Titulo,
		Mensagem:  req.Mensagem,
		Categoria: req.Categoria,
		Ativo:     boolOr(req.Ativo, true),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// Update changes the fields present in the body.
//
// @Summary      Update template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      updateTemplateRequest  true  "Fields to change"
// @Success      200   {object}  domain.MessageTemplate
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/templates [put]
func (h *TemplateHandler) Update(c echo.Context) error {
	var req updateTemplateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.service.Update(c.Request().Context(), req.ID, domain.MessageTemplatePatch{
		Titulo:    req.Titulo,
		Mensagem:  req.Mensagem,
		Categoria: req.Categoria,
		Ativo:     req.Ativo,
		Ordem:     req.Ordem,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete removes a template.
//
// @Summary      Delete template
// @Tags         templates
// @Param        id   query     string  true  "Template ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/templates [delete]
func (h *TemplateHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c)
}

// Render fills a template for a lead and builds the wa.me link.
//
// @Summary      Render template
// @Tags         templates
// @Produce      json
// @Param        id       query     string  true  "Template ID"
// @Param        lead_id  query     string  true  "Lead ID"
// @Success      200  {object}  ports.RenderedMessage
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/templates/render [get]
func (h *TemplateHandler) Render(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	leadID, err := queryID(c, "lead_id")
	if err != nil {
		return err
	}
	msg, err := h.service.Render(c.Request().Context(), id, leadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
