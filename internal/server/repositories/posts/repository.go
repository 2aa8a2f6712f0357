package posts

import (
	"context"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

// Repository adds author-scoped variants to the CRUD contract. Every Owned
// method filters on {id, author_id}, so a post owned by someone else is
// reported exactly like a missing one.
type Repository interface {
	crud.Repository[models.Post, models.PostPatch]
	ReadOwned(ctx context.Context, id, authorID string) (*models.Post, error)
	UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error)
	DeleteOwned(ctx context.Context, id, authorID string) (*models.Post, error)
	SetCover(ctx context.Context, id, authorID, key string) (*models.Post, error)
}
