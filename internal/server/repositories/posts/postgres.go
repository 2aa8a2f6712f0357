// Package posts stores blog posts.
package posts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

const columns = `id, author_id, title, content, cover_key, created_at, updated_at`

type PostgresRepository struct {
	crud.Table[models.Post]
}

func NewPostgresRepository(db dbx.DBTX, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{Table: crud.Table[models.Post]{
		DB:      db,
		Name:    "posts",
		Columns: columns,
		OrderBy: "created_at DESC",
		Timeout: timeout,
	}}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	query := `INSERT INTO posts (id, author_id, title, content, cover_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	return r.Get(ctx, query, p.ID, p.AuthorID, p.Title, p.Content, p.CoverKey, p.CreatedAt, p.UpdatedAt)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p models.PostPatch) (*models.Post, error) {
	query := `UPDATE posts
		SET title = COALESCE($2, title),
		    content = COALESCE($3, content),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	return r.Get(ctx, query, id, p.Title, p.Content)
}

func (r *PostgresRepository) ReadOwned(ctx context.Context, id, authorID string) (*models.Post, error) {
	return r.Get(ctx, `SELECT `+columns+` FROM posts WHERE id = $1 AND author_id = $2`, id, authorID)
}

func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, authorID string, p models.PostPatch) (*models.Post, error) {
	query := `UPDATE posts
		SET title = COALESCE($3, title),
		    content = COALESCE($4, content),
		    updated_at = now()
		WHERE id = $1 AND author_id = $2
		RETURNING ` + columns

	return r.Get(ctx, query, id, authorID, p.Title, p.Content)
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, authorID string) (*models.Post, error) {
	return r.Get(ctx, `DELETE FROM posts WHERE id = $1 AND author_id = $2 RETURNING `+columns, id, authorID)
}

func (r *PostgresRepository) SetCover(ctx context.Context, id, authorID, key string) (*models.Post, error) {
	query := `UPDATE posts
		SET cover_key = $3, updated_at = now()
		WHERE id = $1 AND author_id = $2
		RETURNING ` + columns

	return r.Get(ctx, query, id, authorID, key)
}
