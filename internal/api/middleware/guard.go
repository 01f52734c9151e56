package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// SessionCookie holds the signed session token.
const SessionCookie = "admin_session"

const msgUnauthorized = "Não autorizado"

// GuardConfig lists the protected prefixes and the paths reachable without
// a session.
type GuardConfig struct {
	PagePrefix string
	APIPrefix  string
	LoginPage  string
	// Exempt paths match exactly or as a "<path>/" prefix.
	Exempt []string
	Now    func() time.Time
}

// DefaultGuardConfig protects the admin pages and the admin API.
var DefaultGuardConfig = GuardConfig{
	PagePrefix: "/admin",
	APIPrefix:  "/api/admin",
	LoginPage:  "/admin/login",
	Exempt:     []string{"/admin/login", "/admin/assets", "/api/admin/auth/login", "/api/admin/auth/logout"},
}

type guardDecision int

const (
	guardAllow guardDecision = iota
	guardRedirect
	guardReject
)

// Guard is the coarse edge filter: it only checks that the cookie holds a
// structurally valid, unexpired token, using codec.Peek. It never checks the
// signature; Session performs the authoritative verification on every
// protected group.
func Guard(codec ports.SessionCodec) echo.MiddlewareFunc {
	return GuardWithConfig(codec, DefaultGuardConfig)
}

func GuardWithConfig(codec ports.SessionCodec, cfg GuardConfig) echo.MiddlewareFunc {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			token := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				token = ck.Value
			}

			switch cfg.decide(codec, path, token) {
			case guardRedirect:
				target := cfg.LoginPage + "?redirect=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			case guardReject:
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgUnauthorized})
			}
			return next(c)
		}
	}
}

func (cfg GuardConfig) decide(codec ports.SessionCodec, path, token string) guardDecision {
	api := hasPathPrefix(path, cfg.APIPrefix)
	page := !api && hasPathPrefix(path, cfg.PagePrefix)
	if !api && !page {
		return guardAllow
	}
	for _, ex := range cfg.Exempt {
		if hasPathPrefix(path, ex) {
			return guardAllow
		}
	}

	if token != "" {
		if exp, ok := codec.Peek(token); ok && cfg.Now().Before(exp) {
			return guardAllow
		}
	}
	if api {
		return guardReject
	}
	return guardRedirect
}

// hasPathPrefix matches prefix itself or prefix followed by a slash, so
// "/admin" does not cover "/administrator".
func hasPathPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
