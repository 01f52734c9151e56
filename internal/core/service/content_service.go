package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

// PublicCacheTTL is how long public payloads are served from cache before
// being rebuilt.
const PublicCacheTTL = 60 * time.Second

const (
	CacheKeySite     = "public:site"
	CacheKeyProjects = "public:projects"
	cacheKeyGallery  = "public:gallery:"
)

// ContentRepos groups the read-side repositories used by the public site.
type ContentRepos struct {
	Config     ports.ConfigRepository
	Galleries  ports.GalleryRepository
	Photos     ports.PhotoRepository
	Categories ports.CategoryRepository
	Team       ports.TeamRepository
	Partners   ports.PartnerRepository
}

// ContentService assembles the public site payloads. When projects is nil the
// project catalog is derived from active galleries. Concurrent cache misses
// for the same key share one rebuild.
type ContentService struct {
	repos    ContentRepos
	projects ports.ProjectSource
	cache    ports.ContentCache
	logger   zerolog.Logger
	// flight coalesces concurrent misses. Loads run detached from the
	// caller's cancellation; repositories bound each query themselves.
	flight singleflight.Group
}

func NewContentService(repos ContentRepos, projects ports.ProjectSource, cache ports.ContentCache, logger zerolog.Logger) *ContentService {
	return &ContentService{repos: repos, projects: projects, cache: cache, logger: logger}
}

func (s *ContentService) Site(ctx context.Context) (*domain.PublicSite, error) {
	var site domain.PublicSite
	if s.cached(ctx, CacheKeySite, &site) {
		return &site, nil
	}
	v, err, _ := s.flight.Do(CacheKeySite, func() (any, error) { return s.buildSite(context.WithoutCancel(ctx)) })
	if err != nil {
		return nil, err
	}
	return v.(*domain.PublicSite), nil
}

func (s *ContentService) buildSite(ctx context.Context) (*domain.PublicSite, error) {
	var site domain.PublicSite
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		site.Config, err = s.repos.Config.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		principal := true
		site.Galerias, err = s.repos.Galleries.List(gctx, domain.GalleryFilter{Principal: &principal, OnlyActive: true})
		return err
	})
	g.Go(func() (err error) {
		site.Categorias, err = s.repos.Categories.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		site.Equipe, err = s.repos.Team.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		site.Parceiros, err = s.repos.Partners.List(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.store(ctx, CacheKeySite, &site)
	return &site, nil
}

// Gallery returns one active gallery with its photos. Inactive galleries are
// reported as not found.
func (s *ContentService) Gallery(ctx context.Context, slug string) (*domain.GalleryDetail, error) {
	slug = domain.Slugify(slug)
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	key := cacheKeyGallery + slug

	var detail domain.GalleryDetail
	if s.cached(ctx, key, &detail) {
		return &detail, nil
	}
	v, err, _ := s.flight.Do(key, func() (any, error) { return s.buildGallery(context.WithoutCancel(ctx), key, slug) })
	if err != nil {
		return nil, err
	}
	return v.(*domain.GalleryDetail), nil
}

func (s *ContentService) buildGallery(ctx context.Context, key, slug string) (*domain.GalleryDetail, error) {
	g, err := s.repos.Galleries.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !g.Ativo {
		return nil, domain.ErrNotFound
	}
	photos, err := s.repos.Photos.ListByGallery(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	detail := domain.GalleryDetail{Gallery: *g, Fotos: photos}

	s.store(ctx, key, &detail)
	return &detail, nil
}

func (s *ContentService) Projects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if s.cached(ctx, CacheKeyProjects, &out) {
		return out, nil
	}
	v, err, _ := s.flight.Do(CacheKeyProjects, func() (any, error) { return s.buildProjects(context.WithoutCancel(ctx)) })
	if err != nil {
		return nil, err
	}
	return v.([]domain.Project), nil
}

func (s *ContentService) buildProjects(ctx context.Context) ([]domain.Project, error) {
	var (
		out []domain.Project
		err error
	)
	if s.projects != nil {
		out, err = s.projects.Projects(ctx)
	} else {
		out, err = s.projectsFromGalleries(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.store(ctx, CacheKeyProjects, out)
	return out, nil
}

func (s *ContentService) projectsFromGalleries(ctx context.Context) ([]domain.Project, error) {
	galleries, err := s.repos.Galleries.List(ctx, domain.GalleryFilter{OnlyActive: true})
	if err != nil {
		return nil, err
	}
	cats, err := s.repos.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Nome
	}

	out := make([]domain.Project, 0, len(galleries))
	for _, g := range galleries {
		p := domain.Project{
			ID:        g.ID,
			Titulo:    g.Titulo,
			Slug:      g.Slug,
			Descricao: g.Descricao,
			CapaURL:   g.CapaURL,
			VideoURL:  g.VideoURL,
			Ordem:     g.Ordem,
		}
		if g.CategoriaID != nil {
			p.Categoria = names[*g.CategoriaID]
		}
		out = append(out, p)
	}
	return out, nil
}

// cached is best effort: a cache failure falls through to the database.
func (s *ContentService) cached(ctx context.Context, key string, dst any) bool {
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("content cache read failed")
		return false
	}
	return ok
}

func (s *ContentService) store(ctx context.Context, key string, v any) {
	if err := s.cache.Set(ctx, key, v, PublicCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("content cache write failed")
	}
}

// NopCache is the ContentCache used when Redis is not configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (NopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NopCache) Invalidate(context.Context, ...string) error           { return nil }
