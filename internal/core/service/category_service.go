package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

type CategoryService struct {
	repo      ports.CategoryRepository
	galleries ports.GalleryRepository
	logger    zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, galleries ports.GalleryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, galleries: galleries, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, nome string) (*domain.Category, error) {
	nome = domain.Clean(nome, domain.MaxNomeLen)
	if nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	slug := domain.Slugify(nome)
	if slug == "" {
		return nil, domain.Invalid("Nome inválido")
	}
	exists, err := s.repo.NameExists(ctx, nome, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Invalid("Já existe uma categoria com este nome")
	}
	return s.repo.Create(ctx, &domain.Category{Nome: nome, Slug: slug})
}

// Update renames and/or moves a category. Renaming re-derives the slug.
func (s *CategoryService) Update(ctx context.Context, id string, nome *string, ordem *int) (*domain.Category, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch := domain.CategoryPatch{Ordem: ordem}
	if nome != nil {
		n := domain.Clean(*nome, domain.MaxNomeLen)
		slug := domain.Slugify(n)
		if slug == "" {
			return nil, domain.Invalid("Nome é obrigatório")
		}
		exists, err := s.repo.NameExists(ctx, n, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.Invalid("Já existe uma categoria com este nome")
		}
		patch.Nome = &n
		patch.Slug = &slug
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete refuses to remove a category still referenced by a gallery.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	n, err := s.galleries.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Invalid("Categoria possui galerias vinculadas e não pode ser excluída")
	}
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("Lista de IDs é obrigatória")
	}
	return s.repo.Reorder(ctx, ids)
}
