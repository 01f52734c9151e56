package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// TemplateService manages WhatsApp message templates and renders them for a lead.
type TemplateService struct {
	repo   ports.TemplateRepository
	leads  ports.LeadRepository
	config ports.ConfigRepository
}

func NewTemplateService(repo ports.TemplateRepository, leads ports.LeadRepository, config ports.ConfigRepository) *TemplateService {
	return &TemplateService{repo: repo, leads: leads, config: config}
}

func (s *TemplateService) List(ctx context.Context) ([]domain.MessageTemplate, error) {
	return s.repo.List(ctx)
}

func (s *TemplateService) Create(ctx context.Context, in ports.TemplateInput) (*domain.MessageTemplate, error) {
	titulo := domain.Clean(in.Titulo, domain.MaxTituloLen)
	mensagem := domain.Clean(in.Mensagem, domain.MaxLeadMensagem)
	if titulo == "" || mensagem == "" {
		return nil, domain.Invalid("Título e mensagem são obrigatórios")
	}
	return s.repo.Create(ctx, &domain.MessageTemplate{
		Titulo:    titulo,
		Mensagem:  mensagem,
		Categoria: domain.Clean(in.Categoria, domain.MaxNomeLen),
		Ativo:     in.Ativo,
	})
}

func (s *TemplateService) Update(ctx context.Context, id string, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch.Titulo = domain.CleanPtr(patch.Titulo, domain.MaxTituloLen)
	patch.Mensagem = domain.CleanPtr(patch.Mensagem, domain.MaxLeadMensagem)
	if (patch.Titulo != nil && *patch.Titulo == "") || (patch.Mensagem != nil && *patch.Mensagem == "") {
		return nil, domain.Invalid("Título e mensagem são obrigatórios")
	}
	patch.Categoria = domain.CleanPtr(patch.Categoria, domain.MaxNomeLen)
	return s.repo.Update(ctx, id, patch)
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	return s.repo.Delete(ctx, id)
}

// Render fills {nome}, {empresa} and {tipo_projeto} from the lead and builds
// a wa.me link to the lead's phone, falling back to the company number.
func (s *TemplateService) Render(ctx context.Context, templateID, leadID string) (*ports.RenderedMessage, error) {
	if templateID == "" || leadID == "" {
		return nil, domain.Invalid("id e lead_id são obrigatórios")
	}
	tpl, err := s.repo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	msg := RenderTemplate(tpl.Mensagem, lead)

	phone := Digits(lead.Telefone)
	if phone == "" {
		cfg, err := s.config.All(ctx)
		if err != nil {
			return nil, err
		}
		phone = Digits(cfg[domain.ConfigWhatsApp])
	}
	return &ports.RenderedMessage{Mensagem: msg, Link: WhatsAppLink(phone, msg)}, nil
}

// RenderTemplate substitutes the lead placeholders in text.
func RenderTemplate(text string, lead *domain.Lead) string {
	return strings.NewReplacer(
		"{nome}", lead.Nome,
		"{empresa}", lead.Empresa,
		"{tipo_projeto}", lead.TipoProjeto,
	).Replace(text)
}

// WhatsAppLink returns a wa.me deep link. Brazilian numbers without a
// country code get 55 prepended.
func WhatsAppLink(phone, text string) string {
	if phone != "" && len(phone) <= 11 {
		phone = "55" + phone
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}

// Digits keeps only ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
