// Package users stores profiles, at most one per credential.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

const columns = `id, auth_id, display_name, role, created_at, updated_at`

type PostgresRepository struct {
	crud.Table[models.User]
}

func NewPostgresRepository(db dbx.DBTX, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{Table: crud.Table[models.User]{
		DB:      db,
		Name:    "users",
		Columns: columns,
		OrderBy: "created_at",
		Timeout: timeout,
	}}
}

// Create inserts a profile. A second profile for the same auth_id yields
// common.ErrorConflict.
func (r *PostgresRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	query := `INSERT INTO users (id, auth_id, display_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	return r.Get(ctx, query, u.ID, u.AuthID, u.DisplayName, string(u.Role), u.CreatedAt, u.UpdatedAt)
}

func (r *PostgresRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	return r.Get(ctx, `SELECT `+columns+` FROM users WHERE auth_id = $1`, authID)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p models.UserPatch) (*models.User, error) {
	query := `UPDATE users
		SET display_name = COALESCE($2, display_name),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	return r.Get(ctx, query, id, p.DisplayName)
}

func (r *PostgresRepository) SetRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	query := `UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING ` + columns
	return r.Get(ctx, query, id, string(role))
}
