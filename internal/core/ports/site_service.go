package ports

import (
	"context"
	"io"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// TeamMemberInput carries a new team member.
type TeamMemberInput struct {
	Nome      string
	Cargo     string
	Bio       string
	FotoURL   string
	Instagram string
	Ativo     bool
}

// PartnerInput carries a new partner.
type PartnerInput struct {
	Nome    string
	LogoURL string
	SiteURL string
	Ativo   bool
}

// TemplateInput carries a new message template.
type TemplateInput struct {
	Titulo    string
	Mensagem  string
	Categoria string
	Ativo     bool
}

// RenderedMessage is a template filled in for a lead.
type RenderedMessage struct {
	Mensagem string `json:"mensagem"`
	Link     string `json:"link"`
}

type TeamService interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Create(ctx context.Context, in TeamMemberInput) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type PartnerService interface {
	List(ctx context.Context) ([]domain.Partner, error)
	Create(ctx context.Context, in PartnerInput) (*domain.Partner, error)
	Update(ctx context.Context, id string, patch domain.PartnerPatch) (*domain.Partner, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type TemplateService interface {
	List(ctx context.Context) ([]domain.MessageTemplate, error)
	Create(ctx context.Context, in TemplateInput) (*domain.MessageTemplate, error)
	Update(ctx context.Context, id string, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error)
	Delete(ctx context.Context, id string) error
	Render(ctx context.Context, templateID, leadID string) (*RenderedMessage, error)
}

type ConfigService interface {
	Get(ctx context.Context) (domain.SiteConfig, error)
	Update(ctx context.Context, values domain.SiteConfig) (domain.SiteConfig, error)
}

// ContentService serves the public site.
type ContentService interface {
	Site(ctx context.Context) (*domain.PublicSite, error)
	Gallery(ctx context.Context, slug string) (*domain.GalleryDetail, error)
	Projects(ctx context.Context) ([]domain.Project, error)
}

type DashboardService interface {
	Overview(ctx context.Context) (*domain.Dashboard, error)
}

// MediaStore is the image/video hosting service.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (*domain.MediaAsset, error)
	Destroy(ctx context.Context, publicID string) error
}
