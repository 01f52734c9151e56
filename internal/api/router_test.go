package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/lentefilmes/site-admin/internal/api/handler"
	"github.com/lentefilmes/site-admin/internal/api/middleware"
	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/infrastructure/http/handlers"
	"github.com/lentefilmes/site-admin/internal/infrastructure/session"
)

const routerSecret = "router-test-secret"

// newTestRouter mounts handlers without services; every request below is
// answered by middleware or by input checks that run before a service call.
func newTestRouter(t *testing.T, leadsPerMinute float64) *echo.Echo {
	t.Helper()
	web := t.TempDir()
	if err := os.WriteFile(filepath.Join(web, "index.html"), []byte("<html>admin</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	return NewRouter(RouterConfig{
		Codec:          session.NewHMACCodec(routerSecret),
		Logger:         zerolog.Nop(),
		WebDir:         web,
		LeadsPerMinute: leadsPerMinute,
		Registry:       prometheus.NewRegistry(),
	}, Handlers{
		Auth:      handler.NewAuthHandler(nil, nil, handler.CookieConfig{}, zerolog.Nop()),
		Category:  handler.NewCategoryHandler(nil),
		Gallery:   handler.NewGalleryHandler(nil),
		Team:      handler.NewTeamHandler(nil),
		Partner:   handler.NewPartnerHandler(nil),
		Lead:      handler.NewLeadHandler(nil),
		Template:  handler.NewTemplateHandler(nil),
		Config:    handler.NewConfigHandler(nil),
		User:      handler.NewUserHandler(nil),
		Upload:    handler.NewUploadHandler(nil),
		Dashboard: handler.NewDashboardHandler(nil),
		Public:    handler.NewPublicHandler(nil, nil),
		Health:    handlers.NewHealthHandler(),
		Readiness: handlers.NewHealthDependenciesHandler(),
	})
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := session.NewHMACCodec(routerSecret).Sign(domain.SessionUser{ID: "u1", Email: "a@b.co", Nome: "Ana", Role: role})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func TestRouter_OpsRoutes(t *testing.T) {
	e := newTestRouter(t, 5)
	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestRouter_AdminAPIRequiresSession(t *testing.T) {
	e := newTestRouter(t, 5)
	for _, path := range []string{"/api/admin/categories", "/api/admin/leads/stats", "/api/admin/users", "/api/admin/auth/me"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s = %d, want 401", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Não autorizado") {
			t.Fatalf("GET %s body = %s", path, rec.Body.String())
		}
	}
}

func TestRouter_LoginIsReachableWithoutSession(t *testing.T) {
	e := newTestRouter(t, 5)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(e, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("login with empty body = %d, want 400 from the handler", rec.Code)
	}
}

func TestRouter_LogoutClearsCookieWithoutSession(t *testing.T) {
	e := newTestRouter(t, 5)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "expired-or-forged"})

	rec := serve(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout = %d, want 200", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not cleared: %v", rec.Header().Values(echo.HeaderSetCookie))
	}
}

func TestRouter_UsersRequireAdminRole(t *testing.T) {
	e := newTestRouter(t, 5)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.AddCookie(sessionCookie(t, domain.RoleEditor))

	rec := serve(e, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("editor on /users = %d, want 403", rec.Code)
	}
}

func TestRouter_AdminPages(t *testing.T) {
	e := newTestRouter(t, 5)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin/leads", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("anonymous page = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin/login?redirect="+url.QueryEscape("/admin/leads") {
		t.Fatalf("Location = %q", loc)
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "admin") {
		t.Fatalf("login page = %d %q", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	req.AddCookie(sessionCookie(t, domain.RoleEditor))
	rec = serve(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signed-in page = %d, want 200", rec.Code)
	}
}

func TestRouter_LeadCaptureIsThrottled(t *testing.T) {
	e := newTestRouter(t, 1)
	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		return serve(e, req).Code
	}

	if code := post(); code != http.StatusBadRequest {
		t.Fatalf("first post = %d, want 400 from the handler", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("second post = %d, want 429", code)
	}
}

func TestRouter_EveryAPIRouteIsDocumented(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}

	documented := 0
	for _, r := range newTestRouter(t, 5).Routes() {
		if !strings.HasPrefix(r.Path, "/api/") || strings.HasSuffix(r.Path, "*") || r.Method == echo.RouteNotFound {
			continue
		}
		segments := strings.Split(r.Path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path := strings.Join(segments, "/")
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Errorf("%s %s is not in the OpenAPI document", r.Method, path)
			continue
		}
		documented++
	}
	if documented == 0 {
		t.Fatal("no API routes found")
	}
}
