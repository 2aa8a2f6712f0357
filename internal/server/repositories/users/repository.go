package users

import (
	"context"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

type Repository interface {
	crud.Repository[models.User, models.UserPatch]
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) (*models.User, error)
}
