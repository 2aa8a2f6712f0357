package rest

import (
	"context"

	"github.com/dmitrijs2005/blog/internal/server/models"
)

// SessionManager is implemented by services.SessionService.
type SessionManager interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	Resolve(ctx context.Context, token string) (models.Identity, error)
	Rotate(ctx context.Context, token string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
}

// CredentialManager is implemented by services.CredentialService.
type CredentialManager interface {
	Create(ctx context.Context, email, password string) (*models.Auth, error)
	List(ctx context.Context, identity models.Identity) ([]*models.Auth, error)
	Get(ctx context.Context, identity models.Identity, id string) (*models.Auth, error)
	Update(ctx context.Context, identity models.Identity, id string, email, password *string) (*models.Auth, error)
	Delete(ctx context.Context, identity models.Identity, id string) (*models.Auth, error)
}

// ProfileManager is implemented by services.ProfileService.
type ProfileManager interface {
	Create(ctx context.Context, identity models.Identity, displayName string) (*models.User, error)
	List(ctx context.Context, identity models.Identity) ([]*models.User, error)
	Get(ctx context.Context, identity models.Identity, id string) (*models.User, error)
	Update(ctx context.Context, identity models.Identity, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, identity models.Identity, id string) (*models.User, error)
}

// PostManager is implemented by services.PostService.
type PostManager interface {
	Create(ctx context.Context, identity models.Identity, title, content string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, identity models.Identity, id string, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, identity models.Identity, id string) (*models.Post, error)
	CoverUploadURL(ctx context.Context, identity models.Identity, id string) (*models.PresignedURL, error)
	CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURL, error)
}
