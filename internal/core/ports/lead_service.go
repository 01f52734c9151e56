package ports

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// LeadInput carries the fields of a new lead, from the contact form or the panel.
type LeadInput struct {
	Nome        string
	Email       string
	Telefone    string
	Empresa     string
	TipoProjeto string
	Orcamento   string
	Mensagem    string
	Origem      string
	Status      string
}

// UpdateLeadInput is a partial lead update. Status is re-validated.
type UpdateLeadInput struct {
	Nome        *string
	Email       *string
	Telefone    *string
	Empresa     *string
	TipoProjeto *string
	Orcamento   *string
	Mensagem    *string
	Origem      *string
	Status      *string
	Ordem       *int
}

// InteractionInput carries a new timeline entry.
type InteractionInput struct {
	LeadID    string
	Tipo      string
	Descricao string
	Autor     string
}

// LeadService covers public capture and the CRM board.
type LeadService interface {
	Capture(ctx context.Context, in LeadInput) (*domain.Lead, error)
	Create(ctx context.Context, in LeadInput) (*domain.Lead, error)
	List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error)
	Update(ctx context.Context, id string, in UpdateLeadInput) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.LeadStats, error)

	Interactions(ctx context.Context, leadID string) ([]domain.LeadInteraction, error)
	AddInteraction(ctx context.Context, in InteractionInput) (*domain.LeadInteraction, error)
	DeleteInteraction(ctx context.Context, id string) error
}
