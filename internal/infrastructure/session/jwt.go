package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

type claims struct {
	domain.SessionUser
	jwt.RegisteredClaims
}

// JWTCodec carries the session identity in an HS256 JWT.
type JWTCodec struct {
	secret []byte
	opts   options
}

// NewJWTCodec returns a JWT codec keyed by secret.
func NewJWTCodec(secret string, opts ...Option) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), opts: buildOptions(opts)}
}

func (c *JWTCodec) TTL() time.Duration { return c.opts.ttl }

func (c *JWTCodec) Sign(user domain.SessionUser) (string, error) {
	now := c.opts.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionUser: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.opts.ttl)),
		},
	})
	return t.SignedString(c.secret)
}

func (c *JWTCodec) Verify(token string) (*domain.SessionUser, bool) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.opts.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	if cl.SessionUser.ID == "" || !domain.ValidRole(cl.Role) {
		return nil, false
	}
	user := cl.SessionUser
	return &user, true
}

func (c *JWTCodec) Peek(token string) (time.Time, bool) {
	var cl claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &cl); err != nil {
		return time.Time{}, false
	}
	if cl.ExpiresAt == nil {
		return time.Time{}, false
	}
	return cl.ExpiresAt.Time, true
}
