package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/cryptox"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/policy"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// CredentialService manages Auth records. Reading and changing a credential
// is restricted to its owner holding the Developer role.
type CredentialService struct {
	deps
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
}

func NewCredentialService(db *sqlx.DB, m repomanager.RepositoryManager, sink audit.Sink, logger logging.Logger) *CredentialService {
	return &CredentialService{deps: newDeps(sink, logger), db: db, repomanager: m}
}

// Create registers a new credential. A taken email yields common.ErrorConflict.
func (s *CredentialService) Create(ctx context.Context, email, password string) (*models.Auth, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	a, err := s.repomanager.Auths(s.db).Create(ctx, &models.Auth{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventAuthCreated, AuthID: a.ID, Email: a.Email})
	return a, nil
}

func (s *CredentialService) List(ctx context.Context, identity models.Identity) ([]*models.Auth, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceCredential, Action: policy.ActionList}); err != nil {
		return nil, err
	}
	return s.repomanager.Auths(s.db).ReadAll(ctx)
}

func (s *CredentialService) Get(ctx context.Context, identity models.Identity, id string) (*models.Auth, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceCredential, Action: policy.ActionRead, TargetID: id}); err != nil {
		return nil, err
	}
	return s.repomanager.Auths(s.db).Read(ctx, id)
}

// Update changes email and/or password. A new password is re-hashed before it
// is stored.
func (s *CredentialService) Update(ctx context.Context, identity models.Identity, id string, email, password *string) (*models.Auth, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceCredential, Action: policy.ActionUpdate, TargetID: id}); err != nil {
		return nil, err
	}

	patch := models.AuthPatch{Email: email}
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	a, err := s.repomanager.Auths(s.db).Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating credential: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventAuthUpdated, AuthID: a.ID})
	return a, nil
}

// Delete removes the credential together with its profile, session and
// posts (foreign keys cascade).
func (s *CredentialService) Delete(ctx context.Context, identity models.Identity, id string) (*models.Auth, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourceCredential, Action: policy.ActionDelete, TargetID: id}); err != nil {
		return nil, err
	}

	a, err := s.repomanager.Auths(s.db).Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting credential: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventAuthDeleted, AuthID: a.ID})
	return a, nil
}

func hashPassword(password string) (string, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) || errors.Is(err, cryptox.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return hash, nil
}
