package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/repositories/auths"
	"github.com/dmitrijs2005/blog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blog/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/blog/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can compose several stores in one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Auths(db dbx.DBTX) auths.Repository
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Posts(db dbx.DBTX) posts.Repository
}
