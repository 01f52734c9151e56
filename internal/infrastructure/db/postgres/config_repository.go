package postgres

import (
	"context"
	"fmt"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

type ConfigRepository struct {
	db *DB
}

func NewConfigRepository(db *DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) All(ctx context.Context) (domain.SiteConfig, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, "SELECT chave, valor FROM configuracoes")
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()

	out := domain.SiteConfig{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Upsert writes every key in one transaction.
func (r *ConfigRepository) Upsert(ctx context.Context, values domain.SiteConfig) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert config: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO configuracoes (chave, valor, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (chave) DO UPDATE SET valor = EXCLUDED.valor, updated_at = now()`, k, v)
		if err != nil {
			return fmt.Errorf("upsert config %q: %w", k, err)
		}
	}
	return tx.Commit()
}
