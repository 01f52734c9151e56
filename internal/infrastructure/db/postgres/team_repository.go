package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	tableTeam   = "equipe"
	teamColumns = "id, nome, cargo, bio, foto_url, instagram, ativo, ordem, created_at"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func scanTeamMember(row rowScanner) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := row.Scan(&m.ID, &m.Nome, &m.Cargo, &m.Bio, &m.FotoURL, &m.Instagram, &m.Ativo, &m.Ordem, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamRepository) List(ctx context.Context, onlyActive bool) ([]domain.TeamMember, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q := "SELECT " + teamColumns + " FROM equipe"
	if onlyActive {
		q += " WHERE ativo = TRUE"
	}
	q += " ORDER BY ordem ASC, nome ASC"

	rows, err := r.db.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()

	out := []domain.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO equipe (id, nome, cargo, bio, foto_url, instagram, ativo, ordem)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, `+nextOrder(tableTeam)+`)
		 RETURNING `+teamColumns,
		uuid.NewString(), m.Nome, m.Cargo, m.Bio, m.FotoURL, m.Instagram, m.Ativo)
	created, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	var set updateSet
	if patch.Nome != nil {
		set.add("nome", *patch.Nome)
	}
	if patch.Cargo != nil {
		set.add("cargo", *patch.Cargo)
	}
	if patch.Bio != nil {
		set.add("bio", *patch.Bio)
	}
	if patch.FotoURL != nil {
		set.add("foto_url", *patch.FotoURL)
	}
	if patch.Instagram != nil {
		set.add("instagram", *patch.Instagram)
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
		m, err := scanTeamMember(r.db.sql.QueryRowContext(ctx, "SELECT "+teamColumns+" FROM equipe WHERE id = $1", id))
		if err != nil {
			return nil, notFound(err, "find team member")
		}
		return m, nil
	}

	q, args := set.query(tableTeam, id, teamColumns)
	m, err := scanTeamMember(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update team member")
	}
	return m, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableTeam, id)
}

func (r *TeamRepository) Reorder(ctx context.Context, ids []string) error {
	return r.db.reorder(ctx, tableTeam, ids)
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tableTeam)
}
