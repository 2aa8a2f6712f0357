package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Classify wraps a driver error with the matching common error kind:
// sql.ErrNoRows is ErrorNotFound, unique violations are ErrorConflict,
// deadlines and broken connections are ErrorTransient, anything else is
// ErrorInternal. The cause stays reachable through errors.Is/As.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("db error: %w: %w", kindOf(err), err)
}

func kindOf(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorConflict
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) ||
		pgconn.SafeToRetry(err) {
		return common.ErrorTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return common.ErrorTransient
	}

	return common.ErrorInternal
}
