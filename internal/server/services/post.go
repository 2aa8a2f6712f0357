package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/policy"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// PostService manages blog posts. Reads are public; changes are limited to
// the author, and a post written by someone else looks like a missing one.
type PostService struct {
	deps
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	storage     Presigner
}

func NewPostService(db *sqlx.DB, m repomanager.RepositoryManager, storage Presigner, logger logging.Logger) *PostService {
	return &PostService{deps: newDeps(nil, logger), db: db, repomanager: m, storage: storage}
}

// Create stores a post authored by the caller's credential.
func (s *PostService) Create(ctx context.Context, identity models.Identity, title, content string) (*models.Post, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourcePost, Action: policy.ActionCreate}); err != nil {
		return nil, err
	}

	now := s.now()
	p, err := s.repomanager.Posts(s.db).Create(ctx, &models.Post{
		ID:        s.newID(),
		AuthorID:  identity.Auth.ID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).ReadAll(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).Read(ctx, id)
}

func (s *PostService) Update(ctx context.Context, identity models.Identity, id string, patch models.PostPatch) (*models.Post, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourcePost, Action: policy.ActionUpdate, TargetID: id}); err != nil {
		return nil, err
	}
	p, err := s.repomanager.Posts(s.db).UpdateOwned(ctx, id, identity.Auth.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, identity models.Identity, id string) (*models.Post, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourcePost, Action: policy.ActionDelete, TargetID: id}); err != nil {
		return nil, err
	}
	p, err := s.repomanager.Posts(s.db).DeleteOwned(ctx, id, identity.Auth.ID)
	if err != nil {
		return nil, fmt.Errorf("error deleting post: %w", err)
	}
	return p, nil
}

// CoverUploadURL assigns a new cover key to the caller's post and returns a
// presigned PUT for it.
func (s *PostService) CoverUploadURL(ctx context.Context, identity models.Identity, id string) (*models.PresignedURL, error) {
	if err := policy.Authorize(identity, policy.Request{Resource: policy.ResourcePost, Action: policy.ActionUploadCover, TargetID: id}); err != nil {
		return nil, err
	}

	repo := s.repomanager.Posts(s.db)
	if _, err := repo.ReadOwned(ctx, id, identity.Auth.ID); err != nil {
		return nil, err
	}

	key := CoverKey(id)
	u, err := s.storage.PresignPut(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: presign put: %w", common.ErrorInternal, err)
	}

	if _, err := repo.SetCover(ctx, id, identity.Auth.ID, key); err != nil {
		return nil, fmt.Errorf("error setting cover: %w", err)
	}
	return u, nil
}

// CoverDownloadURL returns a presigned GET for the post's cover. A post
// without a cover yields common.ErrorNotFound.
func (s *PostService) CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURL, error) {
	p, err := s.repomanager.Posts(s.db).Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CoverKey == nil {
		return nil, common.ErrorNotFound
	}

	u, err := s.storage.PresignGet(ctx, *p.CoverKey)
	if err != nil {
		return nil, fmt.Errorf("%w: presign get: %w", common.ErrorInternal, err)
	}
	return u, nil
}
