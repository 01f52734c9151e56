package ports

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// CategoryRepository defines persistence for gallery categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// NameExists reports whether another category (excluding excludeID) uses nome,
	// compared case-insensitively.
	NameExists(ctx context.Context, nome, excludeID string) (bool, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// GalleryRepository defines persistence for galleries.
type GalleryRepository interface {
	List(ctx context.Context, filter domain.GalleryFilter) ([]domain.Gallery, error)
	FindByID(ctx context.Context, id string) (*domain.Gallery, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Gallery, error)
	// SlugExists reports whether another gallery (excluding excludeID) uses slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// CountPrincipal counts principal galleries other than excludeID.
	CountPrincipal(ctx context.Context, excludeID string) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error)
	Update(ctx context.Context, id string, patch domain.GalleryPatch) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	Count(ctx context.Context) (int, error)
}

// PhotoRepository defines persistence for gallery photos.
type PhotoRepository interface {
	ListByGallery(ctx context.Context, galleryID string) ([]domain.Photo, error)
	FindByID(ctx context.Context, id string) (*domain.Photo, error)
	CreateMany(ctx context.Context, photos []domain.Photo) ([]domain.Photo, error)
	Update(ctx context.Context, id string, patch domain.PhotoPatch) (*domain.Photo, error)
	Delete(ctx context.Context, id string) error
	// DeleteByGallery removes every photo of a gallery and returns the removed rows.
	DeleteByGallery(ctx context.Context, galleryID string) ([]domain.Photo, error)
	Reorder(ctx context.Context, ids []string) error
	Count(ctx context.Context) (int, error)
}

// MediaCleaner schedules asynchronous deletion of media host assets.
type MediaCleaner interface {
	Enqueue(publicID string)
}
