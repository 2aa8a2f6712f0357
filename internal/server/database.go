package server

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blog/internal/server/config"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// connectDB is a seam for tests.
var connectDB = func(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return sqlx.ConnectContext(ctx, "pgx", dsn)
}

// OpenDatabase connects to PostgreSQL, applies pending migrations and
// returns the pool together with a repository manager bound to the
// configured statement timeout.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, repomanager.RepositoryManager, error) {
	db, err := connectDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect error: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	m := repomanager.NewPostgresRepositoryManager(cfg.StoreOperationTimeout)
	if err := m.RunMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	return db, m, nil
}
