package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tableCategories = "categorias"
	categoryColumns = "id, nome, slug, ordem, created_at"
)

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Nome, &c.Slug, &c.Ordem, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, "SELECT "+categoryColumns+" FROM categorias ORDER BY ordem ASC, nome ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	c, err := scanCategory(r.db.sql.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categorias WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "find category")
	}
	return c, nil
}

func (r *CategoryRepository) NameExists(ctx context.Context, nome, excludeID string) (bool, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM categorias WHERE lower(nome) = lower($1) AND id <> $2)",
		nome, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category name exists: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO categorias (id, nome, slug, ordem) VALUES ($1, $2, $3, "+nextOrder(tableCategories)+") RETURNING "+categoryColumns,
		uuid.NewString(), c.Nome, c.Slug)
	created, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	var set updateSet
	if patch.Nome != nil {
		set.add("nome", *patch.Nome)
	}
	if patch.Slug != nil {
		set.add("slug", *patch.Slug)
	}
	if patch.Ordem != nil {
		set.add("ordem", *patch.Ordem)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q, args := set.query(tableCategories, id, categoryColumns)
	c, err := scanCategory(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update category")
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableCategories, id)
}

func (r *CategoryRepository) Reorder(ctx context.Context, ids []string) error {
	return r.db.reorder(ctx, tableCategories, ids)
}
