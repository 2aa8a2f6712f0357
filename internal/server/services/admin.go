package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// AdminService backs the operator CLI. It bypasses the policy: whoever can
// reach the database is trusted.
type AdminService struct {
	deps
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
}

func NewAdminService(db *sqlx.DB, m repomanager.RepositoryManager, sink audit.Sink, logger logging.Logger) *AdminService {
	return &AdminService{deps: newDeps(sink, logger), db: db, repomanager: m}
}

// CreateDeveloper creates a credential and its Developer profile atomically.
func (s *AdminService) CreateDeveloper(ctx context.Context, email, password, displayName string) (*models.Auth, *models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	var a *models.Auth
	var u *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		a, err = s.repomanager.Auths(tx).Create(ctx, &models.Auth{
			ID:           s.newID(),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}
		u, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			ID:          s.newID(),
			AuthID:      a.ID,
			DisplayName: displayName,
			Role:        models.RoleDeveloper,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error creating developer: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventAuthCreated, AuthID: a.ID, Email: a.Email})
	s.record(ctx, audit.Event{Type: audit.EventProfileCreated, AuthID: a.ID, UserID: u.ID, Detail: string(u.Role)})
	return a, u, nil
}

func (s *AdminService) SetRole(ctx context.Context, profileID string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	u, err := s.repomanager.Users(s.db).SetRole(ctx, profileID, role)
	if err != nil {
		return nil, fmt.Errorf("error setting role: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventRoleChanged, AuthID: u.AuthID, UserID: u.ID, Detail: string(role)})
	return u, nil
}
