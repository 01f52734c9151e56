package service

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type TeamService struct {
	repo ports.TeamRepository
}

func NewTeamService(repo ports.TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.repo.List(ctx, false)
}

func (s *TeamService) Create(ctx context.Context, in ports.TeamMemberInput) (*domain.TeamMember, error) {
	nome := domain.Clean(in.Nome, domain.MaxNomeLen)
	if nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	return s.repo.Create(ctx, &domain.TeamMember{
		Nome:      nome,
		Cargo:     domain.Clean(in.Cargo, domain.MaxNomeLen),
		Bio:       domain.Clean(in.Bio, domain.MaxDescricaoLen),
		FotoURL:   domain.Clean(in.FotoURL, domain.MaxURLLen),
		Instagram: domain.Clean(in.Instagram, domain.MaxNomeLen),
		Ativo:     in.Ativo,
	})
}

func (s *TeamService) Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch.Nome = domain.CleanPtr(patch.Nome, domain.MaxNomeLen)
	if patch.Nome != nil && *patch.Nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	patch.Cargo = domain.CleanPtr(patch.Cargo, domain.MaxNomeLen)
	patch.Bio = domain.CleanPtr(patch.Bio, domain.MaxDescricaoLen)
	patch.FotoURL = domain.CleanPtr(patch.FotoURL, domain.MaxURLLen)
	patch.Instagram = domain.CleanPtr(patch.Instagram, domain.MaxNomeLen)
	return s.repo.Update(ctx, id, patch)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	return s.repo.Delete(ctx, id)
}

func (s *TeamService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("Lista de IDs é obrigatória")
	}
	return s.repo.Reorder(ctx, ids)
}
