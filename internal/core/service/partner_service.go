package service

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type PartnerService struct {
	repo ports.PartnerRepository
}

func NewPartnerService(repo ports.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

func (s *PartnerService) List(ctx context.Context) ([]domain.Partner, error) {
	return s.repo.List(ctx, false)
}

func (s *PartnerService) Create(ctx context.Context, in ports.PartnerInput) (*domain.Partner, error) {
	nome := domain.Clean(in.Nome, domain.MaxNomeLen)
	if nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	return s.repo.Create(ctx, &domain.Partner{
		Nome:    nome,
		LogoURL: domain.Clean(in.LogoURL, domain.MaxURLLen),
		SiteURL: domain.Clean(in.SiteURL, domain.MaxURLLen),
		Ativo:   in.Ativo,
	})
}

func (s *PartnerService) Update(ctx context.Context, id string, patch domain.PartnerPatch) (*domain.Partner, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch.Nome = domain.CleanPtr(patch.Nome, domain.MaxNomeLen)
	if patch.Nome != nil && *patch.Nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	patch.LogoURL = domain.CleanPtr(patch.LogoURL, domain.MaxURLLen)
	patch.SiteURL = domain.CleanPtr(patch.SiteURL, domain.MaxURLLen)
	return s.repo.Update(ctx, id, patch)
}

func (s *PartnerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	return s.repo.Delete(ctx, id)
}

func (s *PartnerService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("Lista de IDs é obrigatória")
	}
	return s.repo.Reorder(ctx, ids)
}
