package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const (
	tableLeads  = "leads"
	leadColumns = "id, nome, email, telefone, empresa, tipo_projeto, orcamento, mensagem, origem, status, ordem, created_at, updated_at"
)

type LeadRepository struct {
	db *DB
}

func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.Nome, &l.Email, &l.Telefone, &l.Empresa, &l.TipoProjeto, &l.Orcamento,
		&l.Mensagem, &l.Origem, &l.Status, &l.Ordem, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// leadWhere builds the WHERE clause for a listing. Search is a
// case-insensitive substring match over nome, email and empresa.
func leadWhere(filter domain.LeadFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(nome ILIKE $%d OR email ILIKE $%d OR empresa ILIKE $%d)", n, n, n))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// leadListQuery keeps the kanban's manual order first, newest first within a column.
func leadListQuery(filter domain.LeadFilter) (string, []any) {
	where, args := leadWhere(filter)
	return "SELECT " + leadColumns + " FROM leads" + where + " ORDER BY ordem ASC, created_at DESC", args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *LeadRepository) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error) {
	query, args := leadListQuery(filter)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	out := []domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	l, err := scanLead(r.db.sql.QueryRowContext(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "find lead")
	}
	return l, nil
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO leads (id, nome, email, telefone, empresa, tipo_projeto, orcamento, mensagem, origem, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+leadColumns,
		uuid.NewString(), l.Nome, l.Email, l.Telefone, l.Empresa, l.TipoProjeto, l.Orcamento,
		l.Mensagem, l.Origem, string(l.Status))
	created, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	return created, nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, patch domain.LeadPatch) (*domain.Lead, error) {
	var set updateSet
	for col, v := range map[string]*string{
		"nome":         patch.Nome,
		"email":        patch.Email,
		"telefone":     patch.Telefone,
		"empresa":      patch.Empresa,
		"tipo_projeto": patch.TipoProjeto,
		"orcamento":    patch.Orcamento,
		"mensagem":     patch.Mensagem,
		"origem":       patch.Origem,
	} {
		if v != nil {
			set.add(col, *v)
		}
	}
	if patch.Status != nil {
		set.add("status", string(*patch.Status))
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

	q, args := set.query(tableLeads, id, leadColumns)
	l, err := scanLead(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update lead")
	}
	return l, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableLeads, id)
}

// Counts aggregates the whole table. An empty origem is reported as "site".
func (r *LeadRepository) Counts(ctx context.Context, since time.Time) (*ports.LeadCounts, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	out := &ports.LeadCounts{
		PorStatus: map[domain.LeadStatus]int{},
		PorOrigem: map[string]int{},
	}

	rows, err := r.db.sql.QueryContext(ctx, "SELECT status, COUNT(*) FROM leads GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("count leads by status: %w", err)
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		out.PorStatus[domain.LeadStatus(status)] = n
		out.Total += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.sql.QueryContext(ctx,
		"SELECT COALESCE(NULLIF(origem, ''), 'site'), COUNT(*) FROM leads GROUP BY 1")
	if err != nil {
		return nil, fmt.Errorf("count leads by origin: %w", err)
	}
	for rows.Next() {
		var (
			origem string
			n      int
		)
		if err := rows.Scan(&origem, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		out.PorOrigem[origem] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads WHERE created_at >= $1", since).Scan(&out.Since)
	if err != nil {
		return nil, fmt.Errorf("count recent leads: %w", err)
	}
	return out, nil
}
