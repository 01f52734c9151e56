package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tableTemplates  = "mensagens_whatsapp"
	templateColumns = "id, titulo, mensagem, categoria, ativo, ordem, created_at"
)

type TemplateRepository struct {
	db *DB
}

func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func scanTemplate(row rowScanner) (*domain.MessageTemplate, error) {
	var t domain.MessageTemplate
	if err := row.Scan(&t.ID, &t.Titulo, &t.Mensagem, &t.Categoria, &t.Ativo, &t.Ordem, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]domain.MessageTemplate, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+templateColumns+" FROM mensagens_whatsapp ORDER BY categoria ASC, ordem ASC, titulo ASC")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	out := []domain.MessageTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*domain.MessageTemplate, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	t, err := scanTemplate(r.db.sql.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM mensagens_whatsapp WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "find template")
	}
	return t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.MessageTemplate) (*domain.MessageTemplate, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO mensagens_whatsapp (id, titulo, mensagem, categoria, ativo, ordem)
		 VALUES ($1, $2, $3, $4, $5, `+nextOrder(tableTemplates)+`)
		 RETURNING `+templateColumns,
		uuid.NewString(), t.Titulo, t.Mensagem, t.Categoria, t.Ativo)
	created, err := scanTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	return created, nil
}

func (r *TemplateRepository) Update(ctx context.Context, id string, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error) {
	var set updateSet
	if patch.Titulo != nil {
		set.add("titulo", *patch.Titulo)
	}
	if patch.Mensagem != nil {
		set.add("mensagem", *patch.Mensagem)
	}
	if patch.Categoria != nil {
		set.add("categoria", *patch.Categoria)
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

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q, args := set.query(tableTemplates, id, templateColumns)
	t, err := scanTemplate(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update template")
	}
	return t, nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableTemplates, id)
}

func (r *TemplateRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tableTemplates)
}
