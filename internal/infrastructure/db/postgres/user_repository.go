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
	tableUsers  = "usuarios"
	userColumns = "id, email, nome, senha_hash, role, ativo, ultimo_acesso, created_at"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u    domain.User
		last sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Nome, &u.PasswordHash, &u.Role, &u.Ativo, &last, &u.CreatedAt); err != nil {
		return nil, err
	}
	if last.Valid {
		t := last.Time
		u.UltimoAcesso = &t
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, "SELECT "+userColumns+" FROM usuarios ORDER BY nome ASC")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// FindByEmail matches the address case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, "SELECT "+userColumns+" FROM usuarios WHERE lower(email) = $1",
		strings.ToLower(strings.TrimSpace(email)))
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "find user by email")
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.db.sql.QueryRowContext(ctx, "SELECT "+userColumns+" FROM usuarios WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "find user")
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO usuarios (id, email, nome, senha_hash, role, ativo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		uuid.NewString(), strings.ToLower(user.Email), user.Nome, user.PasswordHash, user.Role, user.Ativo)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Invalid("Já existe um usuário com este email")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var set updateSet
	if patch.Nome != nil {
		set.add("nome", *patch.Nome)
	}
	if patch.Role != nil {
		set.add("role", *patch.Role)
	}
	if patch.Ativo != nil {
		set.add("ativo", *patch.Ativo)
	}
	if patch.PasswordHash != nil {
		set.add("senha_hash", *patch.PasswordHash)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q, args := set.query(tableUsers, id, userColumns)
	u, err := scanUser(r.db.sql.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err, "update user")
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.deleteByID(ctx, tableUsers, id)
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.sql.ExecContext(ctx, "UPDATE usuarios SET ultimo_acesso = now() WHERE id = $1", id); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return r.db.count(ctx, tableUsers)
}
