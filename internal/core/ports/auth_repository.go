package ports

import (
	"context"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// UserRepository defines persistence for panel accounts.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
