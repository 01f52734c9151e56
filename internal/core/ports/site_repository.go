package ports

import (
	"context"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// TeamRepository defines persistence for team members.
type TeamRepository interface {
	List(ctx context.Context, onlyActive bool) ([]domain.TeamMember, error)
	Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	Count(ctx context.Context) (int, error)
}

// PartnerRepository defines persistence for partners.
type PartnerRepository interface {
	List(ctx context.Context, onlyActive bool) ([]domain.Partner, error)
	Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	Update(ctx context.Context, id string, patch domain.PartnerPatch) (*domain.Partner, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	Count(ctx context.Context) (int, error)
}

// TemplateRepository defines persistence for WhatsApp message templates.
type TemplateRepository interface {
	List(ctx context.Context) ([]domain.MessageTemplate, error)
	FindByID(ctx context.Context, id string) (*domain.MessageTemplate, error)
	Create(ctx context.Context, t *domain.MessageTemplate) (*domain.MessageTemplate, error)
	Update(ctx context.Context, id string, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ConfigRepository stores the key/value site configuration.
type ConfigRepository interface {
	All(ctx context.Context) (domain.SiteConfig, error)
	Upsert(ctx context.Context, values domain.SiteConfig) error
}

// ContentCache keeps rendered public payloads for a short revalidation window.
type ContentCache interface {
	// Get decodes the cached value into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// ProjectSource is the structured-content platform holding the alternate
// project catalog.
type ProjectSource interface {
	Projects(ctx context.Context) ([]domain.Project, error)
}
