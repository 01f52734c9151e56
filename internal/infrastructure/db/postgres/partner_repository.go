package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tablePartners  = "parceiros"
	partnerColumns = "id, nome, logo_url, site_url, ativo, ordem, created_at"
)

type PartnerRepository struct {
	db *DB
}

func NewPartnerRepository(db *DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func scanPartner(row rowScanner) (*domain.Partner, error) {
	var p domain.Partner
	if err := row.Scan(&p.ID, &p.Nome, &p.LogoURL, &p.SiteURL, &p.Ativo, &p.Ordem, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepository) List(ctx context.Context, onlyActive bool) ([]domain.Partner, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q := "SELECT " + partnerColumns + " FROM parceiros"
	if onlyActive {
		q += " WHERE ativo = TRUE"
	}
	q += " ORDER BY ordem ASC, nome ASC"

	rows, err := r.db.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	out := []domain.Partner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO parceiros (id, nome, logo_url, site_url, ativo, ordem)
		 VALUES ($1, $2, $3, $4, $5, `+nextOrder(tablePartners)+`)
		 RETURNING `+partnerColumns,
		uuid.NewString(), p.Nome, p.LogoURL, p.SiteURL, p.Ativo)
	created, err := scanPartner(row)
	if err != nil {
		return nil, fmt.Errorf("insert partner: %w", err)
	}
	return created, nil
}

func (r *PartnerRepository) Update(ctx context.Context, id string, patch domain.PartnerPatch) (*domain.Partner, error) {
	var set updateSet
	if patch.Nome != nil {
		set.add("nome", *patch.Nome)
	}
	if patch.LogoURL != nil {
		set.add("logo_url", *patch.LogoURL)
	}
	if patch.SiteURL != nil {
		set.add("site_url", *patch.SiteURL)
	}
	if patch.Ativo != nil {
		set.add("ativo", *patch.Ativo)
	}
	if patch.Ordem != nil {
		set.add("ordem", *patch.Ordem)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if set.empty() {
		p, err := scanPartner(r.db.sql.QueryRowContext(ctx, "SELECT "+partnerColumns+" FROM parceiros WHERE id = $1", id))
		if err != nil {
			return nil, notFound(err, "find partner")
		}
		return p, nil
	}

	q, args := set.query(tablePartners, id, partnerColumns)
	p, err := scanPartner(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update partner")
	}
	return p, nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tablePartners, id)
}

func (r *PartnerRepository) Reorder(ctx context.Context, ids []string) error {
	return r.db.reorder(ctx, tablePartners, ids)
}

func (r *PartnerRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tablePartners)
}
