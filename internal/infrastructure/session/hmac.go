// Package session implements the self-contained admin session credential.
//
// Two codecs satisfy ports.SessionCodec: HMACCodec, the compact
// base64(JSON).hex(HMAC-SHA256) format, and JWTCodec, an HS256 JWT carrying
// the same identity. Neither keeps server-side state, so a leaked token stays
// valid until it expires.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	// DefaultTTL is the lifetime of issued tokens and of the session cookie.
	DefaultTTL = 7 * 24 * time.Hour

	// DevSecret signs tokens when no secret is configured. Production startup
	// refuses it.
	DevSecret = "site-admin-dev-secret-change-me"

	separator = "."
)

// Option customises a codec.
type Option func(*options)

type options struct {
	ttl time.Duration
	now func() time.Time
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// payload is the canonical token body. Exp is in Unix milliseconds.
type payload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
	Exp   int64  `json:"exp"`
}

// HMACCodec signs base64 JSON payloads with HMAC-SHA256.
type HMACCodec struct {
	secret []byte
	opts   options
}

// NewHMACCodec returns a codec keyed by secret.
func NewHMACCodec(secret string, opts ...Option) *HMACCodec {
	return &HMACCodec{secret: []byte(secret), opts: buildOptions(opts)}
}

func (c *HMACCodec) TTL() time.Duration { return c.opts.ttl }

// Sign encodes user with an expiry of now+TTL.
func (c *HMACCodec) Sign(user domain.SessionUser) (string, error) {
	body, err := json.Marshal(payload{
		ID:    user.ID,
		Email: user.Email,
		Nome:  user.Nome,
		Role:  user.Role,
		Exp:   c.opts.now().Add(c.opts.ttl).UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(body)
	return encoded + separator + c.signature(encoded), nil
}

// Verify returns the embedded user when the signature matches and the token
// has not expired.
func (c *HMACCodec) Verify(token string) (*domain.SessionUser, bool) {
	encoded, sig, ok := split(token)
	if !ok {
		return nil, false
	}
	if !hmac.Equal([]byte(c.signature(encoded)), []byte(sig)) {
		return nil, false
	}

	p, ok := decode(encoded)
	if !ok || p.Exp <= c.opts.now().UnixMilli() {
		return nil, false
	}
	if p.ID == "" || !domain.ValidRole(p.Role) {
		return nil, false
	}

	return &domain.SessionUser{ID: p.ID, Email: p.Email, Nome: p.Nome, Role: p.Role}, true
}

// Peek decodes the expiry without checking the signature.
func (c *HMACCodec) Peek(token string) (time.Time, bool) {
	encoded, _, ok := split(token)
	if !ok {
		return time.Time{}, false
	}
	p, ok := decode(encoded)
	if !ok || p.Exp == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(p.Exp), true
}

func (c *HMACCodec) signature(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}

func split(token string) (string, string, bool) {
	parts := strings.Split(token, separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func decode(encoded string) (payload, bool) {
	var p payload
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return p, false
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, false
	}
	return p, true
}
