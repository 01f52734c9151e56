package ports

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// AuthService authenticates panel users and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// CreateUserInput carries the fields of a new panel account.
type CreateUserInput struct {
	Email    string
	Nome     string
	Password string
	Role     string
}

// UpdateUserInput carries a partial account update. Nil means untouched.
type UpdateUserInput struct {
	Nome     *string
	Role     *string
	Ativo    *bool
	Password *string
}

// UserService manages panel accounts. Only admins reach it.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actorID, id string) error
}
