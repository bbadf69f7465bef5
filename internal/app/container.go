package app

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/domain/career"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/logger"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies. The catalog is loaded once
// here and never reloaded.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Engine *career.Engine
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		db, err := dbpostgres.Connect(dbCtx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
	}

	catalog, err := LoadCatalog(ctx, cfg.Catalog.Source, c.DB)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Engine = career.NewEngine(catalog)
	log.Info("catalog loaded",
		zap.String("source", string(cfg.Catalog.Source)),
		zap.Int("roles", len(catalog.Roles())),
		zap.Int("synonyms", len(catalog.Synonyms())),
	)

	c.Cache = cache.NewRedis(cfg.Cache, log)
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
