package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	"github.com/DjordjeVuckovic/html-validator/internal/storage/es"
	"github.com/DjordjeVuckovic/html-validator/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/html-validator/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/html-validator/pkg/server"
)

// NewRepository creates the run history backend selected by cfg together with
// a health checker for it.
func NewRepository(ctx context.Context, cfg StorageConfig) (storage.Repository, pkgserver.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("invalid config for PostgreSQL storage: missing pool config")
		}

		if cfg.MigrationURL != "" {
			if err := pg.RunMigrations(cfg.MigrationURL, cfg.Pg.ConnStr); err != nil {
				return nil, nil, err
			}
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return storer, pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("invalid config for Elasticsearch storage: missing client config")
		}

		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return storer, storer, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), pkgserver.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
