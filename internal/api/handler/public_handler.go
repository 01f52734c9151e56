package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lentefilmes/site-admin/internal/api/metrics"
	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// publicCacheControl lets shared caches serve the payload for a minute and
// revalidate in the background.
const publicCacheControl = "public, s-maxage=60, stale-while-revalidate=300"

// PublicHandler serves the unauthenticated surface used by the marketing site.
type PublicHandler struct {
	leads   ports.LeadService
	content ports.ContentService
}

func NewPublicHandler(leads ports.LeadService, content ports.ContentService) *PublicHandler {
	return &PublicHandler{leads: leads, content: content}
}

type captureLeadRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Empresa     string `json:"empresa"`
	TipoProjeto string `json:"tipo_projeto"`
	Orcamento   string `json:"orcamento"`
	Mensagem    string `json:"mensagem"`
	Origem      string `json:"origem"`
}

type captureLeadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// CaptureLead stores a contact-form submission as a new lead.
//
// @Summary      Capture lead
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      captureLeadRequest  true  "Contact form"
// @Success      201   {object}  captureLeadResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/leads [post]
func (h *PublicHandler) CaptureLead(c echo.Context) error {
	var req captureLeadRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("Payload inválido")
	}

	lead, err := h.leads.Capture(c.Request().Context(), ports.LeadInput{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Empresa:     req.Empresa,
		TipoProjeto: req.TipoProjeto,
		Orcamento:   req.Orcamento,
		Mensagem:    req.Mensagem,
		Origem:      req.Origem,
	})
	if err != nil {
		return err
	}

	metrics.LeadsCapturedTotal.WithLabelValues(metrics.OrigemLabel(lead.Origem)).Inc()
	return c.JSON(http.StatusCreated, captureLeadResponse{Success: true, ID: lead.ID})
}

// Site returns everything the home page renders.
//
// @Summary      Public site content
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.PublicSite
// @Router       /api/public/site [get]
func (h *PublicHandler) Site(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.ContentRequestDuration.WithLabelValues("site"))
	defer timer.ObserveDuration()

	site, err := h.content.Site(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", publicCacheControl)
	return c.JSON(http.StatusOK, site)
}

// Gallery returns one active gallery with its photos.
//
// @Summary      Public gallery
// @Tags         public
// @Produce      json
// @Param        slug  path      string  true  "Gallery slug"
// @Success      200   {object}  domain.GalleryDetail
// @Failure      404   {object}  map[string]string
// @Router       /api/public/galleries/{slug} [get]
func (h *PublicHandler) Gallery(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.ContentRequestDuration.WithLabelValues("gallery"))
	defer timer.ObserveDuration()

	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return domain.ErrNotFound
	}
	g, err := h.content.Gallery(c.Request().Context(), slug)
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", publicCacheControl)
	return c.JSON(http.StatusOK, g)
}

// Projects returns the portfolio catalog.
//
// @Summary      Public projects
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/public/projects [get]
func (h *PublicHandler) Projects(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.ContentRequestDuration.WithLabelValues("projects"))
	defer timer.ObserveDuration()

	items, err := h.content.Projects(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", publicCacheControl)
	return c.JSON(http.StatusOK, items)
}
