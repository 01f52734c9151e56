package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to open the relational store.
type Config struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	Timeout      time.Duration
}

// DB wraps a *sql.DB shared by every repository in this package.
type DB struct {
	sql     *sql.DB
	timeout time.Duration
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	s, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 10
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 5
	}
	s.SetMaxOpenConns(cfg.MaxOpenConns)
	s.SetMaxIdleConns(cfg.MaxIdleConns)
	s.SetConnMaxLifetime(5 * time.Minute)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.PingContext(pingCtx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	d := &DB{sql: s, timeout: timeout}
	if err := d.migrate(pingCtx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Ping checks connectivity, for readiness checks.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			nome TEXT NOT NULL,
			senha_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'editor',
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			ultimo_acesso TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS categorias (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			slug TEXT NOT NULL,
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS galerias (
			id TEXT PRIMARY KEY,
			titulo TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			descricao TEXT NOT NULL DEFAULT '',
			categoria_id TEXT REFERENCES categorias(id) ON DELETE SET NULL,
			capa_url TEXT NOT NULL DEFAULT '',
			video_url TEXT NOT NULL DEFAULT '',
			principal BOOLEAN NOT NULL DEFAULT FALSE,
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS galeria_fotos (
			id TEXT PRIMARY KEY,
			galeria_id TEXT NOT NULL REFERENCES galerias(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			public_id TEXT NOT NULL DEFAULT '',
			legenda TEXT NOT NULL DEFAULT '',
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_galeria_fotos_galeria_id ON galeria_fotos(galeria_id);`,
		`CREATE TABLE IF NOT EXISTS equipe (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			cargo TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			foto_url TEXT NOT NULL DEFAULT '',
			instagram TEXT NOT NULL DEFAULT '',
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS parceiros (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			logo_url TEXT NOT NULL DEFAULT '',
			site_url TEXT NOT NULL DEFAULT '',
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			email TEXT NOT NULL,
			telefone TEXT NOT NULL DEFAULT '',
			empresa TEXT NOT NULL DEFAULT '',
			tipo_projeto TEXT NOT NULL DEFAULT '',
			orcamento TEXT NOT NULL DEFAULT '',
			mensagem TEXT NOT NULL DEFAULT '',
			origem TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'novo',
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);`,
		`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);`,
		`CREATE TABLE IF NOT EXISTS mensagens_whatsapp (
			id TEXT PRIMARY KEY,
			titulo TEXT NOT NULL,
			mensagem TEXT NOT NULL,
			categoria TEXT NOT NULL DEFAULT '',
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			ordem INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS configuracoes (
			chave TEXT PRIMARY KEY,
			valor TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// withTimeout bounds a single repository call.
func (d *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.timeout)
}

// reorder sets ordem to each id's position in ids, in one transaction.
// table is always a package constant.
func (d *DB) reorder(ctx context.Context, table string, ids []string) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reorder %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt := fmt.Sprintf("UPDATE %s SET ordem = $1 WHERE id = $2", table)
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, stmt, i, id); err != nil {
			return fmt.Errorf("reorder %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder %s: %w", table, err)
	}
	return nil
}

// deleteByID removes one row and maps "no rows" to domain.ErrNotFound.
func (d *DB) deleteByID(ctx context.Context, table, id string) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	res, err := d.sql.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (d *DB) count(ctx context.Context, table string) (int, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var n int
	if err := d.sql.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// nextOrder is a sub-select placing new rows after the current last one.
func nextOrder(table string) string {
	return fmt.Sprintf("(SELECT COALESCE(MAX(ordem), -1) + 1 FROM %s)", table)
}

// updateSet accumulates "col = $n" assignments for partial updates.
type updateSet struct {
	cols []string
	args []any
}

func (u *updateSet) add(col string, v any) {
	u.args = append(u.args, v)
	u.cols = append(u.cols, fmt.Sprintf("%s = $%d", col, len(u.args)))
}

func (u *updateSet) empty() bool { return len(u.cols) == 0 }

func (u *updateSet) query(table, id, returning string) (string, []any) {
	args := append(u.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(u.cols, ", "), len(args), returning)
	return q, args
}

// notFound maps sql.ErrNoRows to domain.ErrNotFound and wraps anything else.
func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
