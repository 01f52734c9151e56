package api

import (
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/lentefilmes/site-admin/docs"
	"github.com/lentefilmes/site-admin/internal/api/handler"
	"github.com/lentefilmes/site-admin/internal/api/middleware"
	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
	"github.com/lentefilmes/site-admin/internal/infrastructure/http/handlers"
)

const (
	defaultBodyLimit = "1M"
	uploadBodyLimit  = "100M"
	uploadPath       = "/api/admin/upload"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Gallery   *handler.GalleryHandler
	Team      *handler.TeamHandler
	Partner   *handler.PartnerHandler
	Lead      *handler.LeadHandler
	Template  *handler.TemplateHandler
	Config    *handler.ConfigHandler
	User      *handler.UserHandler
	Upload    *handler.UploadHandler
	Dashboard *handler.DashboardHandler
	Public    *handler.PublicHandler
	Health    *handlers.HealthHandler
	Readiness *handlers.HealthDependenciesHandler
}

// RouterConfig carries the cross-cutting settings of the HTTP surface.
type RouterConfig struct {
	Codec  ports.SessionCodec
	Logger zerolog.Logger
	// WebDir holds the built admin bundle served under /admin. Empty disables it.
	WebDir string
	// LeadsPerMinute throttles public lead capture per client IP.
	LeadsPerMinute float64
	// Registry receives the HTTP metrics. Nil uses the process default.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "site",
		Registerer: registerer,
	}))
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit:   defaultBodyLimit,
		Skipper: func(c echo.Context) bool { return c.Request().URL.Path == uploadPath },
	}))
	e.Use(middleware.Guard(cfg.Codec))

	// --- Ops ---
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public site ---
	e.POST("/api/leads", h.Public.CaptureLead, leadThrottle(cfg.LeadsPerMinute))
	pub := e.Group("/api/public")
	pub.GET("/site", h.Public.Site)
	pub.GET("/galleries/:slug", h.Public.Gallery)
	pub.GET("/projects", h.Public.Projects)

	// --- Admin API ---
	e.POST("/api/admin/auth/login", h.Auth.Login)
	// Logout only clears the cookie, so an expired session can still leave.
	e.POST("/api/admin/auth/logout", h.Auth.Logout)

	adm := e.Group("/api/admin", middleware.Session(cfg.Codec))
	adm.GET("/auth/me", h.Auth.Me)
	adm.GET("/dashboard", h.Dashboard.Overview)
	adm.POST("/upload", h.Upload.Upload, echomiddleware.BodyLimit(uploadBodyLimit))

	adm.GET("/categories", h.Category.List)
	adm.POST("/categories", h.Category.Create)
	adm.PUT("/categories", h.Category.Update)
	adm.DELETE("/categories", h.Category.Delete)
	adm.PUT("/categories/reorder", h.Category.Reorder)

	adm.GET("/galleries", h.Gallery.List)
	adm.POST("/galleries", h.Gallery.Create)
	adm.PUT("/galleries", h.Gallery.Update)
	adm.DELETE("/galleries", h.Gallery.Delete)
	adm.PUT("/galleries/reorder", h.Gallery.Reorder)
	adm.GET("/galleries/photos", h.Gallery.Photos)
	adm.POST("/galleries/photos", h.Gallery.AddPhotos)
	adm.PUT("/galleries/photos", h.Gallery.UpdatePhoto)
	adm.DELETE("/galleries/photos", h.Gallery.DeletePhoto)
	adm.PUT("/galleries/photos/reorder", h.Gallery.ReorderPhotos)

	adm.GET("/team", h.Team.List)
	adm.POST("/team", h.Team.Create)
	adm.PUT("/team", h.Team.Update)
	adm.DELETE("/team", h.Team.Delete)
	adm.PUT("/team/reorder", h.Team.Reorder)

	adm.GET("/partners", h.Partner.List)
	adm.POST("/partners", h.Partner.Create)
	adm.PUT("/partners", h.Partner.Update)
	adm.DELETE("/partners", h.Partner.Delete)
	adm.PUT("/partners/reorder", h.Partner.Reorder)

	adm.GET("/leads", h.Lead.List)
	adm.POST("/leads", h.Lead.Create)
	adm.PUT("/leads", h.Lead.Update)
	adm.DELETE("/leads", h.Lead.Delete)
	adm.GET("/leads/stats", h.Lead.Stats)
	adm.GET("/leads/interactions", h.Lead.Interactions)
	adm.POST("/leads/interactions", h.Lead.AddInteraction)
	adm.DELETE("/leads/interactions", h.Lead.DeleteInteraction)

	adm.GET("/templates", h.Template.List)
	adm.POST("/templates", h.Template.Create)
	adm.PUT("/templates", h.Template.Update)
	adm.DELETE("/templates", h.Template.Delete)
	adm.GET("/templates/render", h.Template.Render)

	adm.GET("/config", h.Config.Get)
	adm.PUT("/config", h.Config.Update)

	users := adm.Group("/users", middleware.RBAC(domain.RoleAdmin))
	users.GET("", h.User.List)
	users.POST("", h.User.Create)
	users.PUT("", h.User.Update)
	users.DELETE("", h.User.Delete)

	// --- Admin pages ---
	if cfg.WebDir != "" {
		pages := e.Group("/admin", middleware.SessionPage(cfg.Codec, middleware.DefaultGuardConfig))
		pages.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  cfg.WebDir,
			HTML5: true,
		}))
	}

	return e
}

// leadThrottle bounds contact-form submissions per client IP.
func leadThrottle(perMinute float64) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 5
	}
	burst := int(math.Ceil(perMinute))
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perMinute / 60),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return middleware.ClientIP(c.Request()), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Não foi possível identificar o cliente")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Muitas mensagens enviadas. Tente novamente em instantes.")
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
