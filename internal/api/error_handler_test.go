package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"input error", domain.Invalid("Nome é obrigatório"), http.StatusBadRequest, "Nome é obrigatório"},
		{"wrapped input error", fmt.Errorf("create: %w", domain.Invalid("Limite atingido")), http.StatusBadRequest, "Limite atingido"},
		{"bare invalid sentinel", domain.ErrInvalidInput, http.StatusBadRequest, "Dados inválidos"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Não autorizado"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Email ou senha incorretos"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Acesso negado"},
		{"not found", fmt.Errorf("find gallery: %w", domain.ErrNotFound), http.StatusNotFound, "Não encontrado"},
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "Erro interno do servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/galleries", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected the committed status to stand, got %d", rec.Code)
	}
}
