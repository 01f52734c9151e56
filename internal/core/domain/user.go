package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRole reports whether role is one of the known panel roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// User models a panel account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Nome         string     `json:"nome"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Ativo        bool       `json:"ativo"`
	UltimoAcesso *time.Time `json:"ultimo_acesso,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserPatch lists the fields a partial update may touch. Nil means untouched.
type UserPatch struct {
	Nome         *string
	Role         *string
	Ativo        *bool
	PasswordHash *string
}

// SessionUser is the identity carried inside a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
}

// Session returns the token identity of u.
func (u *User) Session() SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Nome: u.Nome, Role: u.Role}
}
