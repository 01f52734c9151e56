package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

var errPrincipalQuota = domain.Invalid(fmt.Sprintf("Limite de %d galerias principais atingido", domain.MaxPrincipalGalleries))

// GalleryService manages galleries and photos. Media host assets of removed
// photos are handed to the cleaner and deleted in the background.
type GalleryService struct {
	galleries ports.GalleryRepository
	photos    ports.PhotoRepository
	cleaner   ports.MediaCleaner
	logger    zerolog.Logger
}

func NewGalleryService(galleries ports.GalleryRepository, photos ports.PhotoRepository, cleaner ports.MediaCleaner, logger zerolog.Logger) *GalleryService {
	return &GalleryService{galleries: galleries, photos: photos, cleaner: cleaner, logger: logger}
}

func (s *GalleryService) List(ctx context.Context, filter domain.GalleryFilter) ([]domain.Gallery, error) {
	return s.galleries.List(ctx, filter)
}

func (s *GalleryService) Create(ctx context.Context, in ports.GalleryInput) (*domain.Gallery, error) {
	titulo := domain.Clean(in.Titulo, domain.MaxTituloLen)
	if titulo == "" {
		return nil, domain.Invalid("Título é obrigatório")
	}
	slug := domain.Slugify(in.Slug)
	if slug == "" {
		slug = domain.Slugify(titulo)
	}
	if slug == "" {
		return nil, domain.Invalid("Não foi possível gerar o slug a partir do título")
	}

	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}
	// Check-then-act: two concurrent creates may both pass.
	if in.Principal {
		if err := s.ensurePrincipalRoom(ctx, ""); err != nil {
			return nil, err
		}
	}

	g := &domain.Gallery{
		Titulo:    titulo,
		Slug:      slug,
		Descricao: domain.Clean(in.Descricao, domain.MaxDescricaoLen),
		CapaURL:   domain.Clean(in.CapaURL, domain.MaxURLLen),
		VideoURL:  domain.Clean(in.VideoURL, domain.MaxURLLen),
		Principal: in.Principal,
		Ativo:     in.Ativo,
	}
	if in.CategoriaID != "" {
		cat := in.CategoriaID
		g.CategoriaID = &cat
	}

	created, err := s.galleries.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("gallery_id", created.ID).Str("slug", created.Slug).Msg("gallery created")
	return created, nil
}

// Update applies a partial change. The principal quota is re-checked only
// when the flag is being switched on.
func (s *GalleryService) Update(ctx context.Context, id string, in ports.UpdateGalleryInput) (*domain.Gallery, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch := domain.GalleryPatch{
		Descricao:   domain.CleanPtr(in.Descricao, domain.MaxDescricaoLen),
		CategoriaID: in.CategoriaID,
		CapaURL:     domain.CleanPtr(in.CapaURL, domain.MaxURLLen),
		VideoURL:    domain.CleanPtr(in.VideoURL, domain.MaxURLLen),
		Principal:   in.Principal,
		Ativo:       in.Ativo,
		Ordem:       in.Ordem,
	}
	if in.Titulo != nil {
		t := domain.Clean(*in.Titulo, domain.MaxTituloLen)
		if t == "" {
			return nil, domain.Invalid("Título é obrigatório")
		}
		patch.Titulo = &t
	}
	if in.Slug != nil {
		slug := domain.Slugify(*in.Slug)
		if slug == "" {
			return nil, domain.Invalid("Slug inválido")
		}
		if err := s.ensureSlugFree(ctx, slug, id); err != nil {
			return nil, err
		}
		patch.Slug = &slug
	}

	if in.Principal != nil && *in.Principal {
		current, err := s.galleries.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Principal {
			if err := s.ensurePrincipalRoom(ctx, id); err != nil {
				return nil, err
			}
		}
	}

	return s.galleries.Update(ctx, id, patch)
}

// Delete removes the gallery's photos first, queues their assets for
// deletion on the media host, then removes the gallery row.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	if _, err := s.galleries.FindByID(ctx, id); err != nil {
		return err
	}
	removed, err := s.photos.DeleteByGallery(ctx, id)
	if err != nil {
		return err
	}
	if err := s.galleries.Delete(ctx, id); err != nil {
		return err
	}
	for _, p := range removed {
		s.cleaner.Enqueue(p.PublicID)
	}
	s.logger.Info().Str("gallery_id", id).Int("photos", len(removed)).Msg("gallery deleted")
	return nil
}

func (s *GalleryService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("Lista de IDs é obrigatória")
	}
	return s.galleries.Reorder(ctx, ids)
}

func (s *GalleryService) Photos(ctx context.Context, galleryID string) ([]domain.Photo, error) {
	if galleryID == "" {
		return nil, domain.Invalid("galeria_id é obrigatório")
	}
	return s.photos.ListByGallery(ctx, galleryID)
}

func (s *GalleryService) AddPhotos(ctx context.Context, galleryID string, in []ports.PhotoInput) ([]domain.Photo, error) {
	if galleryID == "" {
		return nil, domain.Invalid("galeria_id é obrigatório")
	}
	if len(in) == 0 {
		return nil, domain.Invalid("Nenhuma foto enviada")
	}
	if _, err := s.galleries.FindByID(ctx, galleryID); err != nil {
		return nil, err
	}

	photos := make([]domain.Photo, 0, len(in))
	for i, p := range in {
		url := domain.Clean(p.URL, domain.MaxURLLen)
		if url == "" {
			return nil, domain.Invalid(fmt.Sprintf("Foto %d sem URL", i+1))
		}
		photos = append(photos, domain.Photo{
			GaleriaID: galleryID,
			URL:       url,
			PublicID:  domain.Clean(p.PublicID, domain.MaxURLLen),
			Legenda:   domain.Clean(p.Legenda, domain.MaxLegendaLen),
		})
	}
	return s.photos.CreateMany(ctx, photos)
}

func (s *GalleryService) UpdatePhoto(ctx context.Context, id string, legenda *string, ordem *int) (*domain.Photo, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	return s.photos.Update(ctx, id, domain.PhotoPatch{
		Legenda: domain.CleanPtr(legenda, domain.MaxLegendaLen),
		Ordem:   ordem,
	})
}

func (s *GalleryService) DeletePhoto(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.photos.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Enqueue(p.PublicID)
	return nil
}

func (s *GalleryService) ReorderPhotos(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("Lista de IDs é obrigatória")
	}
	return s.photos.Reorder(ctx, ids)
}

func (s *GalleryService) ensureSlugFree(ctx context.Context, slug, excludeID string) error {
	taken, err := s.galleries.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Invalid("Já existe uma galeria com este slug")
	}
	return nil
}

func (s *GalleryService) ensurePrincipalRoom(ctx context.Context, excludeID string) error {
	n, err := s.galleries.CountPrincipal(ctx, excludeID)
	if err != nil {
		return err
	}
	if n >= domain.MaxPrincipalGalleries {
		return errPrincipalQuota
	}
	return nil
}
