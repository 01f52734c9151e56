package ports

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// GalleryInput carries the fields of a new gallery.
type GalleryInput struct {
	Titulo      string
	Slug        string
	Descricao   string
	CategoriaID string
	CapaURL     string
	VideoURL    string
	Principal   bool
	Ativo       bool
}

// UpdateGalleryInput is a partial gallery update.
type UpdateGalleryInput struct {
	Titulo      *string
	Slug        *string
	Descricao   *string
	CategoriaID *string
	CapaURL     *string
	VideoURL    *string
	Principal   *bool
	Ativo       *bool
	Ordem       *int
}

// PhotoInput carries one photo of a batch upload.
type PhotoInput struct {
	URL      string
	PublicID string
	Legenda  string
}

// CategoryService manages gallery categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, nome string) (*domain.Category, error)
	Update(ctx context.Context, id string, nome *string, ordem *int) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// GalleryService manages galleries and their photos.
type GalleryService interface {
	List(ctx context.Context, filter domain.GalleryFilter) ([]domain.Gallery, error)
	Create(ctx context.Context, in GalleryInput) (*domain.Gallery, error)
	Update(ctx context.Context, id string, in UpdateGalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error

	Photos(ctx context.Context, galleryID string) ([]domain.Photo, error)
	AddPhotos(ctx context.Context, galleryID string, in []PhotoInput) ([]domain.Photo, error)
	UpdatePhoto(ctx context.Context, id string, legenda *string, ordem *int) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
	ReorderPhotos(ctx context.Context, ids []string) error
}
