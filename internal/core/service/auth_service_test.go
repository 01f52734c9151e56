package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

type stubCodec struct {
	signed []domain.SessionUser
}

func (c *stubCodec) Sign(u domain.SessionUser) (string, error) {
	c.signed = append(c.signed, u)
	return "token-for-" + u.ID, nil
}

func (c *stubCodec) Verify(string) (*domain.SessionUser, bool) { return nil, false }
func (c *stubCodec) Peek(string) (time.Time, bool)             { return time.Time{}, false }
func (c *stubCodec) TTL() time.Duration                        { return time.Hour }

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, ativo bool) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Email: email, Nome: "Ana", PasswordHash: hash, Role: domain.RoleAdmin, Ativo: ativo,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	codec := &stubCodec{}
	u := seedUser(t, repo, "ana@lente.com", "s3cret-pass", true)
	svc := NewAuthService(repo, codec, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "  ANA@lente.com ", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token-for-"+u.ID {
		t.Fatalf("unexpected token %q", token)
	}
	if user == nil || user.ID != u.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(codec.signed) != 1 || codec.signed[0].Role != domain.RoleAdmin || codec.signed[0].Email != "ana@lente.com" {
		t.Fatalf("unexpected signed identity: %+v", codec.signed)
	}
	if len(repo.touched) != 1 || repo.touched[0] != u.ID {
		t.Fatalf("expected last login to be recorded, got %v", repo.touched)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@lente.com", "s3cret-pass", true)
	seedUser(t, repo, "off@lente.com", "s3cret-pass", false)
	svc := NewAuthService(repo, &stubCodec{}, zerolog.Nop())

	cases := []struct {
		name, email, password string
	}{
		{"unknown email", "bob@lente.com", "s3cret-pass"},
		{"wrong password", "ana@lente.com", "wrong-pass"},
		{"inactive user", "off@lente.com", "s3cret-pass"},
		{"empty email", "", "s3cret-pass"},
		{"empty password", "ana@lente.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
	if len(repo.touched) != 0 {
		t.Fatalf("failed logins must not touch last login, got %v", repo.touched)
	}
}
