package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tableGalleries = "galerias"
	galleryColumns = "id, titulo, slug, descricao, categoria_id, capa_url, video_url, principal, ativo, ordem, created_at, updated_at"
)

type GalleryRepository struct {
	db *DB
}

func NewGalleryRepository(db *DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func scanGallery(row rowScanner) (*domain.Gallery, error) {
	var (
		g   domain.Gallery
		cat sql.NullString
	)
	err := row.Scan(&g.ID, &g.Titulo, &g.Slug, &g.Descricao, &cat, &g.CapaURL, &g.VideoURL,
		&g.Principal, &g.Ativo, &g.Ordem, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cat.Valid {
		v := cat.String
		g.CategoriaID = &v
	}
	return &g, nil
}

// nullableID turns an empty identifier into SQL NULL.
func nullableID(id *string) sql.NullString {
	if id == nil || *id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *id, Valid: true}
}

func (r *GalleryRepository) List(ctx context.Context, filter domain.GalleryFilter) ([]domain.Gallery, error) {
	var (
		where []string
		args  []any
	)
	if filter.CategoriaID != "" {
		args = append(args, filter.CategoriaID)
		where = append(where, fmt.Sprintf("categoria_id = $%d", len(args)))
	}
	if filter.Principal != nil {
		args = append(args, *filter.Principal)
		where = append(where, fmt.Sprintf("principal = $%d", len(args)))
	}
	if filter.OnlyActive {
		where = append(where, "ativo = TRUE")
	}

	q := "SELECT " + galleryColumns + " FROM galerias"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY ordem ASC, created_at DESC"

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	defer rows.Close()

	out := []domain.Gallery{}
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery: %w", err)
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.Gallery, error) {
	return r.findOne(ctx, "id", id)
}

func (r *GalleryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Gallery, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *GalleryRepository) findOne(ctx context.Context, col, value string) (*domain.Gallery, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	g, err := scanGallery(r.db.sql.QueryRowContext(ctx,
		"SELECT "+galleryColumns+" FROM galerias WHERE "+col+" = $1", value))
	if err != nil {
		return nil, notFound(err, "find gallery")
	}
	return g, nil
}

func (r *GalleryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM galerias WHERE slug = $1 AND id <> $2)", slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("gallery slug exists: %w", err)
	}
	return exists, nil
}

func (r *GalleryRepository) CountPrincipal(ctx context.Context, excludeID string) (int, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM galerias WHERE principal = TRUE AND id <> $1", excludeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count principal galleries: %w", err)
	}
	return n, nil
}

func (r *GalleryRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM galerias WHERE categoria_id = $1", categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count galleries by category: %w", err)
	}
	return n, nil
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO galerias (id, titulo, slug, descricao, categoria_id, capa_url, video_url, principal, ativo, ordem)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, `+nextOrder(tableGalleries)+`)
		 RETURNING `+galleryColumns,
		uuid.NewString(), g.Titulo, g.Slug, g.Descricao, nullableID(g.CategoriaID),
		g.CapaURL, g.VideoURL, g.Principal, g.Ativo)
	created, err := scanGallery(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Invalid("Já existe uma galeria com este slug")
		}
		return nil, fmt.Errorf("insert gallery: %w", err)
	}
	return created, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, patch domain.GalleryPatch) (*domain.Gallery, error) {
	var set updateSet
	if patch.Titulo != nil {
		set.add("titulo", *patch.Titulo)
	}
	if patch.Slug != nil {
		set.add("slug", *patch.Slug)
	}
	if patch.Descricao != nil {
		set.add("descricao", *patch.Descricao)
	}
	if patch.CategoriaID != nil {
		set.add("categoria_id", nullableID(patch.CategoriaID))
	}
	if patch.CapaURL != nil {
		set.add("capa_url", *patch.CapaURL)
	}
	if patch.VideoURL != nil {
		set.add("video_url", *patch.VideoURL)
	}
	if patch.Principal != nil {
		set.add("principal", *patch.Principal)
	}
	if patch.Ativo != nil {
		set.add("ativo", *patch.Ativo)
	}
	if patch.Ordem != nil {
		set.add("ordem", *patch.Ordem)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}
	set.cols = append(set.cols, "updated_at = now()")

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q, args := set.query(tableGalleries, id, galleryColumns)
	g, err := scanGallery(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Invalid("Já existe uma galeria com este slug")
		}
		return nil, notFound(err, "update gallery")
	}
	return g, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableGalleries, id)
}

func (r *GalleryRepository) Reorder(ctx context.Context, ids []string) error {
	return r.db.reorder(ctx, tableGalleries, ids)
}

func (r *GalleryRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tableGalleries)
}
