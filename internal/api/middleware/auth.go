package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const userKey = "session_user"

// Session fully verifies the session cookie and injects the user into the
// context. API requests without a valid session get 401.
func Session(codec ports.SessionCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := verifyCookie(c, codec)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
			}
			c.Set(userKey, user)
			return next(c)
		}
	}
}

// SessionPage is Session for page routes: failures redirect to the login
// page. Paths exempted in cfg are served without a session.
func SessionPage(codec ports.SessionCodec, cfg GuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, ex := range cfg.Exempt {
				if hasPathPrefix(path, ex) {
					return next(c)
				}
			}
			user, ok := verifyCookie(c, codec)
			if !ok {
				return c.Redirect(http.StatusFound, cfg.LoginPage+"?redirect="+url.QueryEscape(c.Request().URL.RequestURI()))
			}
			c.Set(userKey, user)
			return next(c)
		}
	}
}

func verifyCookie(c echo.Context, codec ports.SessionCodec) (*domain.SessionUser, bool) {
	ck, err := c.Cookie(SessionCookie)
	if err != nil || ck.Value == "" {
		return nil, false
	}
	return codec.Verify(ck.Value)
}

// User returns the identity injected by Session.
func User(c echo.Context) (*domain.SessionUser, bool) {
	u, ok := c.Get(userKey).(*domain.SessionUser)
	return u, ok && u != nil
}

// SetUser injects u, for handler tests.
func SetUser(c echo.Context, u *domain.SessionUser) {
	c.Set(userKey, u)
}
