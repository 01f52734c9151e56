package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// LeadHandler serves the CRM board under /api/admin/leads.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

type createLeadRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Empresa     string `json:"empresa"`
	TipoProjeto string `json:"tipo_projeto"`
	Orcamento   string `json:"orcamento"`
	Mensagem    string `json:"mensagem"`
	Origem      string `json:"origem"`
	Status      string `json:"status"`
}

func (r createLeadRequest) input() ports.LeadInput {
	return ports.LeadInput{
		Nome:        r.Nome,
		Email:       r.Email,
		Telefone:    r.Telefone,
		Empresa:     r.Empresa,
		TipoProjeto: r.TipoProjeto,
		Orcamento:   r.Orcamento,
		Mensagem:    r.Mensagem,
		Origem:      r.Origem,
		Status:      r.Status,
	}
}

type updateLeadRequest struct {
	ID          string  `json:"id" validate:"required"`
	Nome        *string `json:"nome"`
	Email       *string `json:"email"`
	Telefone    *string `json:"telefone"`
	Empresa     *string `json:"empresa"`
	TipoProjeto *string `json:"tipo_projeto"`
	Orcamento   *string `json:"orcamento"`
	Mensagem    *string `json:"mensagem"`
	Origem      *string `json:"origem"`
	Status      *string `json:"status"`
	Ordem       *int    `json:"ordem"`
}

type createInteractionRequest struct {
	LeadID    string `json:"lead_id" validate:"required"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao" validate:"required"`
}

// List returns leads, newest first.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Param        status  query     string  false  "Pipeline stage"
// @Param        search  query     string  false  "Matches nome, email or empresa"
// @Param        from    query     string  false  "Created on or after (YYYY-MM-DD or RFC3339)"
// @Param        to      query     string  false  "Created on or before (YYYY-MM-DD or RFC3339)"
// @Success      200  {array}   domain.Lead
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	filter := domain.LeadFilter{Search: strings.TrimSpace(c.QueryParam("search"))}

	if s := strings.TrimSpace(c.QueryParam("status")); s != "" {
		status := domain.LeadStatus(s)
		if !status.Valid() {
			return domain.Invalid("Status inválido")
		}
		filter.Status = status
	}

	var err error
	if filter.From, err = parseDate(c.QueryParam("from"), false); err != nil {
		return err
	}
	if filter.To, err = parseDate(c.QueryParam("to"), true); err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create registers a lead typed in by the team.
//
// @Summary      Create lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createLeadRequest  true  "Lead"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req createLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	lead, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lead)
}

// Update changes the fields present in the body. A Kanban move sends status
// and ordem.
//
// @Summary      Update lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      updateLeadRequest  true  "Fields to change"
// @Success      200   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/leads [put]
func (h *LeadHandler) Update(c echo.Context) error {
	var req updateLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	lead, err := h.service.Update(c.Request().Context(), req.ID, ports.UpdateLeadInput{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Empresa:     req.Empresa,
		TipoProjeto: req.TipoProjeto,
		Orcamento:   req.Orcamento,
		Mensagem:    req.Mensagem,
		Origem:      req.Origem,
		Status:      req.Status,
		Ordem:       req.Ordem,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// Delete removes a lead and its timeline.
//
// @Summary      Delete lead
// @Tags         leads
// @Param        id   query     string  true  "Lead ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/leads [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c)
}

// Stats aggregates the pipeline.
//
// @Summary      Lead statistics
// @Tags         leads
// @Produce      json
// @Success      200  {object}  domain.LeadStats
// @Router       /api/admin/leads/stats [get]
func (h *LeadHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Interactions lists a lead's timeline, newest first.
//
// @Summary      List interactions
// @Tags         leads
// @Produce      json
// @Param        lead_id  query     string  true  "Lead ID"
// @Success      200  {array}   domain.LeadInteraction
// @Router       /api/admin/leads/interactions [get]
func (h *LeadHandler) Interactions(c echo.Context) error {
	leadID, err := queryID(c, "lead_id")
	if err != nil {
		return err
	}
	items, err := h.service.Interactions(c.Request().Context(), leadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// AddInteraction appends a timeline entry authored by the session user.
//
// @Summary      Add interaction
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createInteractionRequest  true  "Interaction"
// @Success      201   {object}  domain.LeadInteraction
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/leads/interactions [post]
func (h *LeadHandler) AddInteraction(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createInteractionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	autor := user.Nome
	if autor == "" {
		autor = user.Email
	}
	it, err := h.service.AddInteraction(c.Request().Context(), ports.InteractionInput{
		LeadID:    req.LeadID,
		Tipo:      req.Tipo,
		Descricao: req.Descricao,
		Autor:     autor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, it)
}

// DeleteInteraction removes one timeline entry.
//
// @Summary      Delete interaction
// @Tags         leads
// @Param        id   query     string  true  "Interaction ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/leads/interactions [delete]
func (h *LeadHandler) DeleteInteraction(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteInteraction(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c)
}

// parseDate accepts a calendar date or an RFC3339 instant. A bare date used
// as an upper bound covers the whole day.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, domain.Invalid("Data inválida: " + raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
