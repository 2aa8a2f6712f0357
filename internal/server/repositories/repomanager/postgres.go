// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/migrations"
	"github.com/dmitrijs2005/blog/internal/server/repositories/auths"
	"github.com/dmitrijs2005/blog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blog/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/blog/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories. Every
// statement they run is bounded by timeout.
type PostgresRepositoryManager struct {
	timeout time.Duration
}

func (m *PostgresRepositoryManager) Auths(db dbx.DBTX) auths.Repository {
	return auths.NewPostgresRepository(db, m.timeout)
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db, m.timeout)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db, m.timeout)
}

func (m *PostgresRepositoryManager) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewPostgresRepository(db, m.timeout)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(timeout time.Duration) RepositoryManager {
	return &PostgresRepositoryManager{timeout: timeout}
}
