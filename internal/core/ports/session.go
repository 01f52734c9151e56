package ports

import (
	"time"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

// SessionCodec signs and verifies the self-contained session credential.
type SessionCodec interface {
	// Sign returns a token for user that expires after the codec's TTL.
	Sign(user domain.SessionUser) (string, error)
	// Verify checks signature, structure and expiry. Every failure reports
	// false; callers cannot tell why a token was rejected.
	Verify(token string) (*domain.SessionUser, bool)
	// Peek returns the expiry embedded in token without checking the
	// signature. It is only a coarse filter; never trust its result.
	Peek(token string) (time.Time, bool)
	// TTL is the lifetime of issued tokens.
	TTL() time.Duration
}
