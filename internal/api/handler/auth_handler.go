package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/api/metrics"
	"github.com/lentefilmes/site-admin/internal/api/middleware"
	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const msgBadCredentials = "Email ou senha incorretos"

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	limiter     ports.RateLimiter
	cookie      CookieConfig
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, limiter ports.RateLimiter, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 7 * 24 * time.Hour
	}
	return &AuthHandler{authService: authService, limiter: limiter, cookie: cookie, log: log}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Usuario *domain.User `json:"usuario"`
}

type loginFailure struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining"`
}

type loginLimited struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
	Remaining  int    `json:"remaining"`
}

// Login authenticates a panel user and sets the session cookie.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  loginFailure
// @Failure      429   {object}  loginLimited
// @Router       /api/admin/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Payload inválido"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email e senha são obrigatórios"})
	}

	ctx := c.Request().Context()
	ip := middleware.ClientIP(c.Request())

	rl, err := h.limiter.Check(ctx, ip)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	if !rl.Allowed {
		metrics.LoginAttemptsTotal.WithLabelValues("limited").Inc()
		secs := int(math.Ceil(rl.RetryAfter.Seconds()))
		c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
		return c.JSON(http.StatusTooManyRequests, loginLimited{
			Error:      fmt.Sprintf("Muitas tentativas. Tente novamente em %d minutos.", int(math.Ceil(float64(secs)/60))),
			RetryAfter: secs,
			Remaining:  0,
		})
	}

	token, user, err := h.authService.Login(ctx, req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, loginFailure{Error: msgBadCredentials, Remaining: rl.Remaining})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	if err := h.limiter.Reset(ctx, ip); err != nil {
		h.log.Warn().Err(err).Str("ip", ip).Msg("reset login rate limit")
	}

	c.SetCookie(h.sessionCookie(token, int(h.cookie.MaxAge.Seconds())))
	return c.JSON(http.StatusOK, loginResponse{Success: true, Usuario: user})
}

// Logout clears the session cookie. Tokens are stateless, so a copied token
// stays valid until it expires.
//
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/admin/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return ok(c)
}

type meResponse struct {
	Usuario *domain.SessionUser `json:"usuario"`
}

// Me returns the identity carried by the session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Usuario: user})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
