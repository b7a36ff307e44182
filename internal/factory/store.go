package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lucianoaf8/InnSight/internal/config"
	"github.com/lucianoaf8/InnSight/internal/store"
	"github.com/lucianoaf8/InnSight/internal/store/postgres"
	"github.com/lucianoaf8/InnSight/internal/store/sqlite"
)

// NewStore constructs the configured store driver and verifies it is
// reachable before handing it to the caller.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		st, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("sqlite store ready")
		return st, nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := postgres.Bootstrap(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap postgres schema: %w", err)
		}
		log.Info().Msg("postgres store ready")
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
