package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/admincatalog-backend/internal/adapter/memory"
	"github.com/heartmarshall/admincatalog-backend/internal/adapter/postgres"
	pgcategory "github.com/heartmarshall/admincatalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/admincatalog-backend/internal/config"
	"github.com/heartmarshall/admincatalog-backend/internal/domain"
	"github.com/heartmarshall/admincatalog-backend/internal/transport/rest"
)

// Storage is the category store selected by configuration.
type Storage struct {
	Categories domain.CategoryRepository
	UnitOfWork domain.UnitOfWork
	// Deps are pinged by the readiness probes.
	Deps  map[string]rest.Pinger
	Close func()
}

// OpenStorage builds the configured store. With the postgres driver it
// opens a pool and, when enabled, applies pending migrations.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.NewCategoryStore()
		logger.Info("using in-memory storage")
		return &Storage{
			Categories: store,
			UnitOfWork: store,
			Close:      func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		if cfg.Storage.AutoMigrate {
			n, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Int("count", n))
		}

		return &Storage{
			Categories: pgcategory.New(pool),
			UnitOfWork: postgres.NewUnitOfWork(pool),
			Deps:       map[string]rest.Pinger{"database": pool},
			Close:      pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
