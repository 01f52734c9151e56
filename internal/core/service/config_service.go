package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const maxConfigValueLen = 5000

// ConfigService reads and writes the key/value site configuration. Writes
// invalidate the cached public site payload.
type ConfigService struct {
	repo   ports.ConfigRepository
	cache  ports.ContentCache
	logger zerolog.Logger
}

func NewConfigService(repo ports.ConfigRepository, cache ports.ContentCache, logger zerolog.Logger) *ConfigService {
	return &ConfigService{repo: repo, cache: cache, logger: logger}
}

func (s *ConfigService) Get(ctx context.Context) (domain.SiteConfig, error) {
	return s.repo.All(ctx)
}

func (s *ConfigService) Update(ctx context.Context, values domain.SiteConfig) (domain.SiteConfig, error) {
	if len(values) == 0 {
		return nil, domain.Invalid("Nenhuma configuração enviada")
	}
	clean := make(domain.SiteConfig, len(values))
	for k, v := range values {
		key := domain.Clean(k, domain.MaxNomeLen)
		if key == "" {
			return nil, domain.Invalid("Chave de configuração vazia")
		}
		clean[key] = domain.Clean(v, maxConfigValueLen)
	}
	if err := s.repo.Upsert(ctx, clean); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, CacheKeySite); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate public site cache")
	}
	return s.repo.All(ctx)
}
