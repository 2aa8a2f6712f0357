package crud

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// Table runs single-row and multi-row statements against one table, bounding
// each call with Timeout and classifying driver errors with dbx.Classify.
type Table[T any] struct {
	DB      dbx.DBTX
	Name    string
	Columns string
	OrderBy string
	Timeout time.Duration
}

// Get scans exactly one row. No row yields common.ErrorNotFound.
func (t Table[T]) Get(ctx context.Context, query string, args ...any) (*T, error) {
	ctx, cancel := dbx.WithTimeout(ctx, t.Timeout)
	defer cancel()

	item := new(T)
	if err := sqlx.GetContext(ctx, t.DB, item, query, args...); err != nil {
		return nil, dbx.Classify(err)
	}
	return item, nil
}

// Select scans all rows; an empty result is an empty, non-nil slice.
func (t Table[T]) Select(ctx context.Context, query string, args ...any) ([]*T, error) {
	ctx, cancel := dbx.WithTimeout(ctx, t.Timeout)
	defer cancel()

	items := make([]*T, 0)
	if err := sqlx.SelectContext(ctx, t.DB, &items, query, args...); err != nil {
		return nil, dbx.Classify(err)
	}
	return items, nil
}

// Exec runs a statement and returns the number of affected rows.
func (t Table[T]) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := dbx.WithTimeout(ctx, t.Timeout)
	defer cancel()

	res, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbx.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbx.Classify(err)
	}
	return n, nil
}

func (t Table[T]) Read(ctx context.Context, id string) (*T, error) {
	return t.Get(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.Columns, t.Name), id)
}

func (t Table[T]) ReadAll(ctx context.Context) ([]*T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s`, t.Columns, t.Name)
	if t.OrderBy != "" {
		q += " ORDER BY " + t.OrderBy
	}
	return t.Select(ctx, q)
}

// Delete removes the row and returns it as it was.
func (t Table[T]) Delete(ctx context.Context, id string) (*T, error) {
	return t.Get(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING %s`, t.Name, t.Columns), id)
}
