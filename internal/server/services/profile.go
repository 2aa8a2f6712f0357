package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/policy"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// ProfileService manages User records. Each credential owns at most one
// profile, and only the owner may read or change it.
type ProfileService struct {
	deps
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sqlx.DB, m repomanager.RepositoryManager, sink audit.Sink, logger logging.Logger) *ProfileService {
	return &ProfileService{deps: newDeps(sink, logger), db: db, repomanager: m}
}

// Create adds the caller's profile with role User and links it to the
// caller's session in the same transaction. A second profile for the same
// credential yields common.ErrorForbidden.
func (s *ProfileService) Create(ctx context.Context, identity models.Identity, displayName string) (*models.User, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceProfile, Action: policy.ActionCreate}); err != nil {
		return nil, err
	}

	now := s.now()
	var created *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			ID:          s.newID(),
			AuthID:      identity.Auth.ID,
			DisplayName: displayName,
			Role:        models.RoleUser,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		if err := s.repomanager.Sessions(tx).AttachProfile(ctx, identity.Auth.ID, u.ID); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventProfileCreated, AuthID: created.AuthID, UserID: created.ID})
	return created, nil
}

func (s *ProfileService) List(ctx context.Context, identity models.Identity) ([]*models.User, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceProfile, Action: policy.ActionList}); err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).ReadAll(ctx)
}

func (s *ProfileService) Get(ctx context.Context, identity models.Identity, id string) (*models.User, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceProfile, Action: policy.ActionRead, TargetID: id}); err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).Read(ctx, id)
}

// Update changes the display name. The role is not editable here.
func (s *ProfileService) Update(ctx context.Context, identity models.Identity, id string, patch models.UserPatch) (*models.User, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceProfile, Action: policy.ActionUpdate, TargetID: id}); err != nil {
		return nil, err
	}
	u, err := s.repomanager.Users(s.db).Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return u, nil
}

func (s *ProfileService) Delete(ctx context.Context, identity models.Identity, id string) (*models.User, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceProfile, Action: policy.ActionDelete, TargetID: id}); err != nil {
		return nil, err
	}
	u, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting profile: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventProfileDeleted, AuthID: u.AuthID, UserID: u.ID})
	return u, nil
}
