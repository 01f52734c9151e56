package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves GET /health. It never touches a store.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}

// DependencyCheck pings one dependency. Optional checks report but never fail readiness.
type DependencyCheck struct {
	Name     string
	Ping     func(ctx context.Context) error
	Optional bool
}

// HealthDependenciesHandler serves GET /health/ready. Checks run in parallel
// under a shared deadline; any required failure answers 503.
type HealthDependenciesHandler struct {
	checks []DependencyCheck
}

func NewHealthDependenciesHandler(checks ...DependencyCheck) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{checks: checks}
}

type dependencyStatus struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Error    string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		deps    = make(map[string]dependencyStatus, len(h.checks))
		healthy = true
	)
	var g errgroup.Group
	for _, p := range h.checks {
		p := p
		g.Go(func() error {
			st := dependencyStatus{Status: "ok", Optional: p.Optional}
			if err := p.Ping(ctx); err != nil {
				st.Status = "unhealthy"
				st.Error = err.Error()
			}
			mu.Lock()
			defer mu.Unlock()
			deps[p.Name] = st
			if st.Error != "" && !p.Optional {
				healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "degraded", Dependencies: deps})
	}
	return c.JSON(http.StatusOK, readinessResponse{Status: "ok", Dependencies: deps})
}
