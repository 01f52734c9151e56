package ports

import (
	"context"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// LeadCounts is the raw aggregation the store computes for LeadStats.
type LeadCounts struct {
	Total     int
	PorStatus map[domain.LeadStatus]int
	PorOrigem map[string]int
	Since     int
}

// LeadRepository defines persistence for leads.
type LeadRepository interface {
	List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	Update(ctx context.Context, id string, patch domain.LeadPatch) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context, since time.Time) (*LeadCounts, error)
}

// InteractionRepository stores the CRM timeline of each lead.
type InteractionRepository interface {
	ListByLead(ctx context.Context, leadID string) ([]domain.LeadInteraction, error)
	Create(ctx context.Context, in *domain.LeadInteraction) error
	Delete(ctx context.Context, id string) error
	DeleteByLead(ctx context.Context, leadID string) (int64, error)
}

// SubmissionDedup maps a contact-form fingerprint to the lead it produced,
// for a short window.
type SubmissionDedup interface {
	Lookup(ctx context.Context, fingerprint string) (string, error)
	Remember(ctx context.Context, fingerprint, leadID string) error
}
