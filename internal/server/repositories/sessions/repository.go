package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/server/models"
)

type Repository interface {
	// Upsert stores s as the only session of s.AuthID, replacing any previous one.
	Upsert(ctx context.Context, s *models.Session) (*models.Session, error)
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	// Rotate swaps oldToken for newToken if the session is live at now.
	Rotate(ctx context.Context, oldToken, newToken string, now time.Time) (*models.Session, error)
	AttachProfile(ctx context.Context, authID, userID string) error
	DeleteByToken(ctx context.Context, token string) error
}
