package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const msgInternal = "Erro interno do servidor"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil && he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, he.Internal)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ie *domain.InputError
	switch {
	case errors.As(err, &ie):
		return http.StatusBadRequest, ie.Msg
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Dados inválidos"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Não autorizado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email ou senha incorretos"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Não encontrado"
	}

	// Unexpected error: log the real cause, return a generic message.
	logUnhandled(log, c, err)
	return http.StatusInternalServerError, msgInternal
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
