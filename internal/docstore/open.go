package docstore

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tuninghub/pkg/database"
	"tuninghub/pkg/utils"
)

// Open picks the backend from cfg: postgres when DatabaseURL is set,
// sqlite at DBPath otherwise. The schema is migrated before returning.
// The returned func releases the connection(s).
func Open(ctx context.Context, cfg utils.AppConfig) (Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		log.Info("[store] using postgres")
		return NewPostgres(pool), pool.Close, nil
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	log.WithField("path", cfg.DBPath).Info("[store] using sqlite")
	return NewSQLite(db), func() { _ = db.Close() }, nil
}
