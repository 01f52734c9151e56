// Command server runs the public site API and the admin CMS.
package main

//go:generate swag init -g main.go -d ./,../../internal/api/handler,../../internal/core/domain,../../internal/core/ports -o ../../docs --outputTypes go

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/api"
	"github.com/lentefilmes/site-admin/internal/api/handler"
	"github.com/lentefilmes/site-admin/internal/api/metrics"
	"github.com/lentefilmes/site-admin/internal/core/ports"
	"github.com/lentefilmes/site-admin/internal/core/service"
	"github.com/lentefilmes/site-admin/internal/infrastructure/config"
	"github.com/lentefilmes/site-admin/internal/infrastructure/content"
	"github.com/lentefilmes/site-admin/internal/infrastructure/db/mongo"
	"github.com/lentefilmes/site-admin/internal/infrastructure/db/postgres"
	"github.com/lentefilmes/site-admin/internal/infrastructure/db/redis"
	"github.com/lentefilmes/site-admin/internal/infrastructure/http/handlers"
	"github.com/lentefilmes/site-admin/internal/infrastructure/media"
	"github.com/lentefilmes/site-admin/internal/infrastructure/queue"
	"github.com/lentefilmes/site-admin/internal/infrastructure/ratelimit"
	"github.com/lentefilmes/site-admin/internal/infrastructure/session"
	"github.com/lentefilmes/site-admin/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title        Site Admin API
// @version      1.0
// @description  Public site content, lead capture and the admin CMS.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.Production()})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	codec, err := sessionCodec(cfg, log)
	if err != nil {
		return err
	}

	// --- Stores ---
	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxOpenConns: cfg.Postgres.MaxOpenConns})
	if err != nil {
		return err
	}
	defer db.Close()

	mongoStore, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer mongoStore.Close()

	interactions := mongo.NewInteractionRepository(mongoStore.DB())
	if err := interactions.EnsureIndexes(ctx); err != nil {
		return err
	}

	rdb, err := connectRedis(ctx, cfg, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	users := postgres.NewUserRepository(db)
	categories := postgres.NewCategoryRepository(db)
	galleries := postgres.NewGalleryRepository(db)
	photos := postgres.NewPhotoRepository(db)
	team := postgres.NewTeamRepository(db)
	partners := postgres.NewPartnerRepository(db)
	templates := postgres.NewTemplateRepository(db)
	leads := postgres.NewLeadRepository(db)
	siteConfig := postgres.NewConfigRepository(db)

	// --- Redis-backed helpers, in-process fallbacks otherwise ---
	var (
		limiter  ports.RateLimiter
		cache    ports.ContentCache = service.NopCache{}
		leadOpts []service.LeadOption
	)
	if cfg.RateLimit.Store == "redis" {
		limiter = redis.NewRateLimiter(rdb, "login", cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	} else {
		limiter = ratelimit.NewMemory(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}
	if rdb != nil {
		cache = redis.NewContentCache(rdb)
		leadOpts = append(leadOpts, service.WithSubmissionDedup(redis.NewLeadDedup(rdb, 0)))
	}

	// --- Media host and background cleanup ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var (
		store   ports.MediaStore
		cleaner ports.MediaCleaner = skipCleaner{log: log}
	)
	cld, err := media.NewCloudinary(media.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	})
	switch {
	case errors.Is(err, media.ErrNotConfigured):
		log.Warn().Msg("cloudinary not configured, uploads disabled")
	case err != nil:
		return err
	default:
		store = cld
		dispatcher := queue.NewDispatcher(0, cld, logger.For("media_cleanup"), queue.WithDepthGauge(metrics.MediaCleanupQueueDepth.Add))
		dispatcher.Start(workerCtx)
		defer func() {
			dispatcher.Close()
			dispatcher.Wait()
		}()
		cleaner = dispatcher
	}

	var projects ports.ProjectSource
	if cfg.GallerySource == "sanity" {
		s, err := content.NewSanity(content.Config{
			ProjectID:  cfg.Sanity.ProjectID,
			Dataset:    cfg.Sanity.Dataset,
			APIVersion: cfg.Sanity.APIVersion,
			Token:      cfg.Sanity.Token,
		})
		if err != nil {
			return err
		}
		projects = s
	}

	// --- Services ---
	authSvc := service.NewAuthService(users, codec, logger.For("auth_service"))
	userSvc := service.NewUserService(users, logger.For("user_service"))
	categorySvc := service.NewCategoryService(categories, galleries, logger.For("category_service"))
	gallerySvc := service.NewGalleryService(galleries, photos, cleaner, logger.For("gallery_service"))
	teamSvc := service.NewTeamService(team)
	partnerSvc := service.NewPartnerService(partners)
	leadSvc := service.NewLeadService(leads, interactions, logger.For("lead_service"), leadOpts...)
	templateSvc := service.NewTemplateService(templates, leads, siteConfig)
	configSvc := service.NewConfigService(siteConfig, cache, logger.For("config_service"))
	contentSvc := service.NewContentService(service.ContentRepos{
		Config:     siteConfig,
		Galleries:  galleries,
		Photos:     photos,
		Categories: categories,
		Team:       team,
		Partners:   partners,
	}, projects, cache, logger.For("content_service"))
	dashboardSvc := service.NewDashboardService(leads, service.DashboardCounters{
		Galleries: galleries,
		Photos:    photos,
		Team:      team,
		Partners:  partners,
		Templates: templates,
		Users:     users,
	})

	checks := []handlers.DependencyCheck{
		{Name: "postgres", Ping: db.Ping},
		{Name: "mongodb", Ping: mongoStore.Ping},
	}
	if rdb != nil {
		checks = append(checks, handlers.DependencyCheck{
			Name:     "redis",
			Ping:     func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			Optional: cfg.RateLimit.Store != "redis",
		})
	}

	e := api.NewRouter(api.RouterConfig{
		Codec:          codec,
		Logger:         log,
		WebDir:         webDir(cfg.WebDir, log),
		LeadsPerMinute: cfg.RateLimit.LeadsPerMinute,
	}, api.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, limiter, handler.CookieConfig{Secure: cfg.Production(), MaxAge: codec.TTL()}, logger.For("auth_handler")),
		Category:  handler.NewCategoryHandler(categorySvc),
		Gallery:   handler.NewGalleryHandler(gallerySvc),
		Team:      handler.NewTeamHandler(teamSvc),
		Partner:   handler.NewPartnerHandler(partnerSvc),
		Lead:      handler.NewLeadHandler(leadSvc),
		Template:  handler.NewTemplateHandler(templateSvc),
		Config:    handler.NewConfigHandler(configSvc),
		User:      handler.NewUserHandler(userSvc),
		Upload:    handler.NewUploadHandler(store),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Public:    handler.NewPublicHandler(leadSvc, contentSvc),
		Health:    handlers.NewHealthHandler(),
		Readiness: handlers.NewHealthDependenciesHandler(checks...),
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// sessionCodec builds the configured codec. A missing secret falls back to
// session.DevSecret outside production.
func sessionCodec(cfg *config.Config, log zerolog.Logger) (ports.SessionCodec, error) {
	secret := cfg.Session.Secret
	if secret == "" {
		if cfg.Production() {
			return nil, errors.New("SESSION_SECRET is required in production")
		}
		log.Warn().Msg("SESSION_SECRET not set, using the development secret")
		secret = session.DevSecret
	}
	if cfg.Production() && secret == session.DevSecret {
		return nil, errors.New("SESSION_SECRET must not be the development secret in production")
	}

	if cfg.Session.Format == "jwt" {
		return session.NewJWTCodec(secret), nil
	}
	return session.NewHMACCodec(secret), nil
}

// connectRedis returns nil when Redis is neither required nor reachable.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*goredis.Client, error) {
	required := cfg.RateLimit.Store == "redis"
	if !required && cfg.Redis.URL == "" {
		return nil, nil
	}

	rdb, err := redis.Connect(ctx, redis.Config{URL: cfg.Redis.URL, Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		if required {
			return nil, err
		}
		log.Warn().Err(err).Msg("redis unavailable, using in-process cache")
		return nil, nil
	}
	return rdb, nil
}

func webDir(dir string, log zerolog.Logger) string {
	if dir == "" {
		return ""
	}
	if _, err := os.Stat(dir); err != nil {
		log.Warn().Str("dir", dir).Msg("admin bundle not found, /admin pages disabled")
		return ""
	}
	return dir
}

// skipCleaner stands in for the cleanup pool when no media host is configured.
type skipCleaner struct {
	log zerolog.Logger
}

func (s skipCleaner) Enqueue(publicID string) {
	if publicID != "" {
		s.log.Warn().Str("public_id", publicID).Msg("media host not configured, asset not deleted")
	}
}
