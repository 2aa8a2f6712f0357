// Package auths stores credentials (email and password hash).
package auths

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

const columns = `id, email, password_hash, created_at, updated_at`

type PostgresRepository struct {
	crud.Table[models.Auth]
}

func NewPostgresRepository(db dbx.DBTX, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{Table: crud.Table[models.Auth]{
		DB:      db,
		Name:    "auths",
		Columns: columns,
		OrderBy: "created_at",
		Timeout: timeout,
	}}
}

// Create inserts a credential. A duplicate email yields common.ErrorConflict.
func (r *PostgresRepository) Create(ctx context.Context, a *models.Auth) (*models.Auth, error) {
	query := `INSERT INTO auths (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + columns

	return r.Get(ctx, query, a.ID, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Auth, error) {
	return r.Get(ctx, `SELECT `+columns+` FROM auths WHERE email = $1`, email)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p models.AuthPatch) (*models.Auth, error) {
	query := `UPDATE auths
		SET email = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	return r.Get(ctx, query, id, p.Email, p.PasswordHash)
}
