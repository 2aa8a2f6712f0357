package auths

import (
	"context"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/crud"
)

type Repository interface {
	crud.Repository[models.Auth, models.AuthPatch]
	GetByEmail(ctx context.Context, email string) (*models.Auth, error)
}
