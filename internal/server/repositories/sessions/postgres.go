// Package sessions stores server-side login sessions keyed by bearer token.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

const columns = `id, auth_id, user_id, session_id, valid_until, created_at, updated_at`

type PostgresRepository struct {
	t crud.Table[models.Session]
}

func NewPostgresRepository(db dbx.DBTX, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{t: crud.Table[models.Session]{
		DB:      db,
		Name:    "sessions",
		Columns: columns,
		Timeout: timeout,
	}}
}

// Upsert is a single statement keyed on the unique auth_id, so concurrent
// sign-ins of one credential leave exactly one row behind.
func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Session) (*models.Session, error) {
	query := `INSERT INTO sessions (id, auth_id, user_id, session_id, valid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (auth_id) DO UPDATE
		SET id = EXCLUDED.id,
		    user_id = EXCLUDED.user_id,
		    session_id = EXCLUDED.session_id,
		    valid_until = EXCLUDED.valid_until,
		    created_at = EXCLUDED.created_at,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + columns

	return r.t.Get(ctx, query, s.ID, s.AuthID, s.UserID, s.SessionID, s.ValidUntil, s.CreatedAt, s.UpdatedAt)
}

func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	return r.t.Get(ctx, `SELECT `+columns+` FROM sessions WHERE session_id = $1`, token)
}

// Rotate returns common.ErrorNotFound when no live session holds oldToken.
func (r *PostgresRepository) Rotate(ctx context.Context, oldToken, newToken string, now time.Time) (*models.Session, error) {
	query := `UPDATE sessions
		SET session_id = $2, updated_at = $3
		WHERE session_id = $1 AND valid_until > $3
		RETURNING ` + columns

	return r.t.Get(ctx, query, oldToken, newToken, now)
}

// AttachProfile links the credential's session, if any, to its new profile.
func (r *PostgresRepository) AttachProfile(ctx context.Context, authID, userID string) error {
	_, err := r.t.Exec(ctx, `UPDATE sessions SET user_id = $2, updated_at = now() WHERE auth_id = $1`, authID, userID)
	return err
}

// DeleteByToken is idempotent: an unknown token is not an error.
func (r *PostgresRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.t.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, token)
	return err
}
