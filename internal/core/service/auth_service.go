package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("site-admin-timing-pad"), bcrypt.DefaultCost)

// AuthService implements login for panel users.
type AuthService struct {
	users  ports.UserRepository
	codec  ports.SessionCodec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec ports.SessionCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

// Login checks the credentials and returns a signed session token. Unknown
// email, wrong password and inactive account all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Ativo {
		s.logger.Info().Str("user_id", user.ID).Msg("login refused for inactive user")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.Session())
	if err != nil {
		return "", nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}
	return token, user, nil
}
