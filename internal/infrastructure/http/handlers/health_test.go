package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ready(h *HealthDependenciesHandler) (*httptest.ResponseRecorder, readinessResponse) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	_ = h.Readiness(e.NewContext(req, rec))

	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func up(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("dial tcp: connection refused") }

func TestReadiness_AllUp(t *testing.T) {
	rec, resp := ready(NewHealthDependenciesHandler(
		DependencyCheck{Name: "postgres", Ping: up},
		DependencyCheck{Name: "mongodb", Ping: up},
	))
	if rec.Code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ok, got %d %+v", rec.Code, resp)
	}
}

func TestReadiness_RequiredDown(t *testing.T) {
	rec, resp := ready(NewHealthDependenciesHandler(
		DependencyCheck{Name: "postgres", Ping: down},
		DependencyCheck{Name: "mongodb", Ping: up},
	))
	if rec.Code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", rec.Code, resp)
	}
	if resp.Dependencies["postgres"].Error == "" {
		t.Fatalf("expected postgres error detail")
	}
}

func TestReadiness_OptionalDown(t *testing.T) {
	rec, resp := ready(NewHealthDependenciesHandler(
		DependencyCheck{Name: "postgres", Ping: up},
		DependencyCheck{Name: "redis", Ping: down, Optional: true},
	))
	if rec.Code != http.StatusOK {
		t.Fatalf("optional check must not fail readiness, got %d", rec.Code)
	}
	if resp.Dependencies["redis"].Status != "unhealthy" {
		t.Fatalf("expected redis reported unhealthy, got %+v", resp.Dependencies)
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
