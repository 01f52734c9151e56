package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tablePhotos  = "galeria_fotos"
	photoColumns = "id, galeria_id, url, public_id, legenda, ordem, created_at"
)

type PhotoRepository struct {
	db *DB
}

func NewPhotoRepository(db *DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func scanPhoto(row rowScanner) (*domain.Photo, error) {
	var p domain.Photo
	if err := row.Scan(&p.ID, &p.GaleriaID, &p.URL, &p.PublicID, &p.Legenda, &p.Ordem, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) ListByGallery(ctx context.Context, galleryID string) ([]domain.Photo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+photoColumns+" FROM galeria_fotos WHERE galeria_id = $1 ORDER BY ordem ASC, created_at ASC", galleryID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	out := []domain.Photo{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PhotoRepository) FindByID(ctx context.Context, id string) (*domain.Photo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	p, err := scanPhoto(r.db.sql.QueryRowContext(ctx, "SELECT "+photoColumns+" FROM galeria_fotos WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "find photo")
	}
	return p, nil
}

// CreateMany inserts a batch in one transaction, appended after the gallery's
// current last photo.
func (r *PhotoRepository) CreateMany(ctx context.Context, photos []domain.Photo) ([]domain.Photo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("insert photos: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		row := tx.QueryRowContext(ctx,
			`INSERT INTO galeria_fotos (id, galeria_id, url, public_id, legenda, ordem)
			 VALUES ($1, $2, $3, $4, $5,
			   (SELECT COALESCE(MAX(ordem), -1) + 1 FROM galeria_fotos WHERE galeria_id = $2))
			 RETURNING `+photoColumns,
			uuid.NewString(), p.GaleriaID, p.URL, p.PublicID, p.Legenda)
		created, err := scanPhoto(row)
		if err != nil {
			return nil, fmt.Errorf("insert photo: %w", err)
		}
		out = append(out, *created)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("insert photos: %w", err)
	}
	return out, nil
}

func (r *PhotoRepository) Update(ctx context.Context, id string, patch domain.PhotoPatch) (*domain.Photo, error) {
	var set updateSet
	if patch.Legenda != nil {
		set.add("legenda", *patch.Legenda)
	}
	if patch.Ordem != nil {
		set.add("ordem", *patch.Ordem)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q, args := set.query(tablePhotos, id, photoColumns)
	p, err := scanPhoto(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update photo")
	}
	return p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tablePhotos, id)
}

func (r *PhotoRepository) DeleteByGallery(ctx context.Context, galleryID string) ([]domain.Photo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx,
		"DELETE FROM galeria_fotos WHERE galeria_id = $1 RETURNING "+photoColumns, galleryID)
	if err != nil {
		return nil, fmt.Errorf("delete gallery photos: %w", err)
	}
	defer rows.Close()

	out := []domain.Photo{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PhotoRepository) Reorder(ctx context.Context, ids []string) error {
	return r.db.reorder(ctx, tablePhotos, ids)
}

func (r *PhotoRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tablePhotos)
}
