package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// LeadService covers public lead capture, the CRM board and lead timelines.
type LeadService struct {
	leads        ports.LeadRepository
	interactions ports.InteractionRepository
	dedup        ports.SubmissionDedup
	logger       zerolog.Logger
	now          func() time.Time
}

// LeadOption configures a LeadService.
type LeadOption func(*LeadService)

// WithSubmissionDedup enables suppression of repeated contact-form posts.
func WithSubmissionDedup(d ports.SubmissionDedup) LeadOption {
	return func(s *LeadService) { s.dedup = d }
}

// WithLeadClock overrides time.Now, for tests.
func WithLeadClock(now func() time.Time) LeadOption {
	return func(s *LeadService) { s.now = now }
}

func NewLeadService(leads ports.LeadRepository, interactions ports.InteractionRepository, logger zerolog.Logger, opts ...LeadOption) *LeadService {
	s := &LeadService{leads: leads, interactions: interactions, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capture stores a contact-form submission. The form is public, so input is
// validated strictly and origin defaults to "site".
func (s *LeadService) Capture(ctx context.Context, in ports.LeadInput) (*domain.Lead, error) {
	lead, err := buildLead(in)
	if err != nil {
		return nil, err
	}
	lead.Status = domain.LeadNovo
	if lead.Origem == "" {
		lead.Origem = "site"
	}

	fp := ""
	if s.dedup != nil {
		fp = fingerprint(lead)
		if id, err := s.dedup.Lookup(ctx, fp); err != nil {
			s.logger.Warn().Err(err).Msg("lead dedup lookup failed")
		} else if id != "" {
			s.logger.Info().Str("lead_id", id).Msg("duplicate lead submission ignored")
			lead.ID = id
			return lead, nil
		}
	}

	created, err := s.leads.Create(ctx, lead)
	if err != nil {
		return nil, err
	}
	if fp != "" {
		if err := s.dedup.Remember(ctx, fp, created.ID); err != nil {
			s.logger.Warn().Err(err).Msg("lead dedup remember failed")
		}
	}
	s.logger.Info().Str("lead_id", created.ID).Str("origem", created.Origem).Msg("lead captured")
	return created, nil
}

// Create adds a lead from the panel. Status may be preset.
func (s *LeadService) Create(ctx context.Context, in ports.LeadInput) (*domain.Lead, error) {
	lead, err := buildLead(in)
	if err != nil {
		return nil, err
	}
	lead.Status = domain.LeadNovo
	if in.Status != "" {
		st := domain.LeadStatus(in.Status)
		if !st.Valid() {
			return nil, domain.Invalid("Status inválido")
		}
		lead.Status = st
	}
	if lead.Origem == "" {
		lead.Origem = "manual"
	}
	return s.leads.Create(ctx, lead)
}

func buildLead(in ports.LeadInput) (*domain.Lead, error) {
	nome := domain.Clean(in.Nome, domain.MaxLeadNome)
	email := strings.ToLower(domain.Clean(in.Email, domain.MaxLeadEmail))
	mensagem := domain.Clean(in.Mensagem, domain.MaxLeadMensagem)

	if len([]rune(nome)) < domain.MinLeadNome {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	if !domain.ValidEmail(email) {
		return nil, domain.Invalid("Email inválido")
	}
	if len([]rune(mensagem)) < domain.MinLeadMensagem {
		return nil, domain.Invalid("Mensagem deve ter pelo menos 10 caracteres")
	}

	return &domain.Lead{
		Nome:        nome,
		Email:       email,
		Telefone:    domain.Clean(in.Telefone, domain.MaxLeadTelefone),
		Empresa:     domain.Clean(in.Empresa, domain.MaxLeadEmpresa),
		TipoProjeto: domain.Clean(in.TipoProjeto, domain.MaxLeadTipoProjeto),
		Orcamento:   domain.Clean(in.Orcamento, domain.MaxLeadOrcamento),
		Mensagem:    mensagem,
		Origem:      domain.Clean(in.Origem, domain.MaxLeadOrigem),
	}, nil
}

func fingerprint(l *domain.Lead) string {
	sum := sha256.Sum256([]byte(l.Email + "\x00" + l.Mensagem))
	return hex.EncodeToString(sum[:])
}

func (s *LeadService) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Invalid("Status inválido")
	}
	return s.leads.List(ctx, filter)
}

// Update applies a partial change; a Kanban move sends status and ordem.
// An unknown status is rejected before anything is written.
func (s *LeadService) Update(ctx context.Context, id string, in ports.UpdateLeadInput) (*domain.Lead, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch := domain.LeadPatch{
		Telefone:    domain.CleanPtr(in.Telefone, domain.MaxLeadTelefone),
		Empresa:     domain.CleanPtr(in.Empresa, domain.MaxLeadEmpresa),
		TipoProjeto: domain.CleanPtr(in.TipoProjeto, domain.MaxLeadTipoProjeto),
		Orcamento:   domain.CleanPtr(in.Orcamento, domain.MaxLeadOrcamento),
		Mensagem:    domain.CleanPtr(in.Mensagem, domain.MaxLeadMensagem),
		Origem:      domain.CleanPtr(in.Origem, domain.MaxLeadOrigem),
		Ordem:       in.Ordem,
	}
	if in.Status != nil {
		st := domain.LeadStatus(*in.Status)
		if !st.Valid() {
			return nil, domain.Invalid("Status inválido")
		}
		patch.Status = &st
	}
	if in.Nome != nil {
		n := domain.Clean(*in.Nome, domain.MaxLeadNome)
		if len([]rune(n)) < domain.MinLeadNome {
			return nil, domain.Invalid("Nome é obrigatório")
		}
		patch.Nome = &n
	}
	if in.Email != nil {
		e := strings.ToLower(domain.Clean(*in.Email, domain.MaxLeadEmail))
		if !domain.ValidEmail(e) {
			return nil, domain.Invalid("Email inválido")
		}
		patch.Email = &e
	}
	return s.leads.Update(ctx, id, patch)
}

// Delete removes the lead's interactions before the lead itself.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	if _, err := s.leads.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.interactions.DeleteByLead(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("lead_id", id).Int64("interactions", n).Msg("lead deleted")
	return nil
}

// Stats aggregates the pipeline. Conversion rate is closed leads over all
// leads, as a percentage with one decimal.
func (s *LeadService) Stats(ctx context.Context) (*domain.LeadStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	c, err := s.leads.Counts(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	return statsFromCounts(c), nil
}

func statsFromCounts(c *ports.LeadCounts) *domain.LeadStats {
	stats := &domain.LeadStats{
		Total:     c.Total,
		PorStatus: make(map[domain.LeadStatus]int, len(domain.LeadStatuses)),
		PorOrigem: c.PorOrigem,
		EsteMes:   c.Since,
	}
	if stats.PorOrigem == nil {
		stats.PorOrigem = map[string]int{}
	}
	for _, st := range domain.LeadStatuses {
		stats.PorStatus[st] = c.PorStatus[st]
	}
	stats.EmAberto = c.Total - c.PorStatus[domain.LeadFechado] - c.PorStatus[domain.LeadPerdido]
	if c.Total > 0 {
		rate := float64(c.PorStatus[domain.LeadFechado]) / float64(c.Total) * 100
		stats.TaxaConversao = float64(int(rate*10+0.5)) / 10
	}
	return stats
}

func (s *LeadService) Interactions(ctx context.Context, leadID string) ([]domain.LeadInteraction, error) {
	if leadID == "" {
		return nil, domain.Invalid("lead_id é obrigatório")
	}
	return s.interactions.ListByLead(ctx, leadID)
}

func (s *LeadService) AddInteraction(ctx context.Context, in ports.InteractionInput) (*domain.LeadInteraction, error) {
	if in.LeadID == "" {
		return nil, domain.Invalid("lead_id é obrigatório")
	}
	tipo := domain.InteractionType(in.Tipo)
	if tipo == "" {
		tipo = domain.InteractionNota
	}
	if !tipo.Valid() {
		return nil, domain.Invalid("Tipo de interação inválido")
	}
	descricao := domain.Clean(in.Descricao, domain.MaxLeadMensagem)
	if descricao == "" {
		return nil, domain.Invalid("Descrição é obrigatória")
	}
	if _, err := s.leads.FindByID(ctx, in.LeadID); err != nil {
		return nil, err
	}

	it := &domain.LeadInteraction{
		LeadID:    in.LeadID,
		Tipo:      tipo,
		Descricao: descricao,
		Autor:     domain.Clean(in.Autor, domain.MaxNomeLen),
		CreatedAt: s.now().UTC(),
	}
	if err := s.interactions.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *LeadService) DeleteInteraction(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	return s.interactions.Delete(ctx, id)
}
