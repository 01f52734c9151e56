// Command seed-admin creates the first admin account from ADMIN_* variables.
// It is idempotent: an existing account with the same email is left as is.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/lentefilmes/site-admin/internal/core/domain"
	"github.com/lentefilmes/site-admin/internal/core/ports"
	"github.com/lentefilmes/site-admin/internal/core/service"
	"github.com/lentefilmes/site-admin/internal/infrastructure/config"
	"github.com/lentefilmes/site-admin/internal/infrastructure/db/postgres"
	"github.com/lentefilmes/site-admin/pkg/logger"
)

type seedConfig struct {
	Email    string `env:"ADMIN_EMAIL, required"`
	Password string `env:"ADMIN_PASSWORD, required"`
	Nome     string `env:"ADMIN_NAME, default=Administrador"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	var seed seedConfig
	if err := envconfig.Process(ctx, &seed); err != nil {
		log.Fatal().Err(err).Msg("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxOpenConns: 2})
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer db.Close()

	u, created, err := seedAdmin(ctx, postgres.NewUserRepository(db), seed, log)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	if !created {
		log.Info().Str("email", u.Email).Str("role", u.Role).Msg("account already exists, skipping")
		return
	}
	log.Info().Str("id", u.ID).Str("email", u.Email).Msg("admin account created")
}

// seedAdmin returns the existing account for seed.Email untouched, or creates
// it with the admin role. created reports which happened.
func seedAdmin(ctx context.Context, users ports.UserRepository, seed seedConfig, log zerolog.Logger) (*domain.User, bool, error) {
	existing, err := users.FindByEmail(ctx, seed.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("lookup account: %w", err)
	}

	u, err := service.NewUserService(users, log).Create(ctx, ports.CreateUserInput{
		Email:    seed.Email,
		Nome:     seed.Nome,
		Password: seed.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create admin: %w", err)
	}
	return u, true, nil
}
