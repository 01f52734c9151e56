package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const (
	MinPasswordLen = 8
	// bcrypt rejects longer inputs.
	MaxPasswordLen = 72
)

// UserService manages panel accounts.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(domain.Clean(in.Email, domain.MaxLeadEmail))
	nome := domain.Clean(in.Nome, domain.MaxNomeLen)
	if email == "" || nome == "" || in.Password == "" {
		return nil, domain.Invalid("Email, nome e senha são obrigatórios")
	}
	if !domain.ValidEmail(email) {
		return nil, domain.Invalid("Email inválido")
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEditor
	}
	if !domain.ValidRole(role) {
		return nil, domain.Invalid("Role inválido")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Nome:         nome,
		PasswordHash: hash,
		Role:         role,
		Ativo:        true,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if id == "" {
		return nil, domain.Invalid("ID é obrigatório")
	}
	patch := domain.UserPatch{
		Nome:  domain.CleanPtr(in.Nome, domain.MaxNomeLen),
		Role:  in.Role,
		Ativo: in.Ativo,
	}
	if patch.Nome != nil && *patch.Nome == "" {
		return nil, domain.Invalid("Nome é obrigatório")
	}
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return nil, domain.Invalid("Role inválido")
	}
	if in.Password != nil && *in.Password != "" {
		if err := checkPassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes an account. Users cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	if id == "" {
		return domain.Invalid("ID é obrigatório")
	}
	if id == actorID {
		return domain.Invalid("Você não pode excluir seu próprio usuário")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("actor_id", actorID).Msg("user deleted")
	return nil
}

// HashPassword returns the bcrypt hash stored for panel accounts.
func checkPassword(pw string) error {
	switch {
	case len(pw) < MinPasswordLen:
		return domain.Invalid("A senha deve ter pelo menos 8 caracteres")
	case len(pw) > MaxPasswordLen:
		return domain.Invalid("A senha deve ter no máximo 72 bytes")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
