// Package dbx provides the DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sqlx.DB and *sqlx.Tx,
// a helper to run functions inside a transaction, and driver error
// classification.
package dbx

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBTX is the subset of sqlx used by our repos.
// Both *sqlx.DB and *sqlx.Tx satisfy this interface.
type DBTX interface {
	sqlx.ExtContext
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, db *sqlx.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return Classify(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = Classify(cerr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

// WithTimeout bounds a single store operation. A zero or negative d leaves
// ctx untouched.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
