package rest

import (
	"context"

	"github.com/dmitrijs2005/blog/internal/server/models"
)

type fakeSessions struct {
	signIn  func(ctx context.Context, email, password string) (*models.Session, error)
	resolve func(ctx context.Context, token string) (models.Identity, error)
	rotate  func(ctx context.Context, token string) (*models.Session, error)
	signOut func(ctx context.Context, token string) error
}

func (f *fakeSessions) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	return f.signIn(ctx, email, password)
}

func (f *fakeSessions) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if f.resolve == nil {
		return models.Anonymous(), nil
	}
	return f.resolve(ctx, token)
}

func (f *fakeSessions) Rotate(ctx context.Context, token string) (*models.Session, error) {
	return f.rotate(ctx, token)
}

func (f *fakeSessions) SignOut(ctx context.Context, token string) error {
	if f.signOut == nil {
		return nil
	}
	return f.signOut(ctx, token)
}

type fakeCredentials struct {
	create func(ctx context.Context, email, password string) (*models.Auth, error)
	list   func(ctx context.Context, identity models.Identity) ([]*models.Auth, error)
	get    func(ctx context.Context, identity models.Identity, id string) (*models.Auth, error)
	update func(ctx context.Context, identity models.Identity, id string, email, password *string) (*models.Auth, error)
	delete func(ctx context.Context, identity models.Identity, id string) (*models.Auth, error)
}

func (f *fakeCredentials) Create(ctx context.Context, email, password string) (*models.Auth, error) {
	return f.create(ctx, email, password)
}

func (f *fakeCredentials) List(ctx context.Context, identity models.Identity) ([]*models.Auth, error) {
	return f.list(ctx, identity)
}

func (f *fakeCredentials) Get(ctx context.Context, identity models.Identity, id string) (*models.Auth, error) {
	return f.get(ctx, identity, id)
}

func (f *fakeCredentials) Update(ctx context.Context, identity models.Identity, id string, email, password *string) (*models.Auth, error) {
	return f.update(ctx, identity, id, email, password)
}

func (f *fakeCredentials) Delete(ctx context.Context, identity models.Identity, id string) (*models.Auth, error) {
	return f.delete(ctx, identity, id)
}

type fakeProfiles struct {
	create func(ctx context.Context, identity models.Identity, displayName string) (*models.User, error)
	list   func(ctx context.Context, identity models.Identity) ([]*models.User, error)
	get    func(ctx context.Context, identity models.Identity, id string) (*models.User, error)
	update func(ctx context.Context, identity models.Identity, id string, patch models.UserPatch) (*models.User, error)
	delete func(ctx context.Context, identity models.Identity, id string) (*models.User, error)
}

func (f *fakeProfiles) Create(ctx context.Context, identity models.Identity, displayName string) (*models.User, error) {
	return f.create(ctx, identity, displayName)
}

func (f *fakeProfiles) List(ctx context.Context, identity models.Identity) ([]*models.User, error) {
	return f.list(ctx, identity)
}

func (f *fakeProfiles) Get(ctx context.Context, identity models.Identity, id string) (*models.User, error) {
	return f.get(ctx, identity, id)
}

func (f *fakeProfiles) Update(ctx context.Context, identity models.Identity, id string, patch models.UserPatch) (*models.User, error) {
	return f.update(ctx, identity, id, patch)
}

func (f *fakeProfiles) Delete(ctx context.Context, identity models.Identity, id string) (*models.User, error) {
	return f.delete(ctx, identity, id)
}

type fakePosts struct {
	create      func(ctx context.Context, identity models.Identity, title, content string) (*models.Post, error)
	list        func(ctx context.Context) ([]*models.Post, error)
	get         func(ctx context.Context, id string) (*models.Post, error)
	update      func(ctx context.Context, identity models.Identity, id string, patch models.PostPatch) (*models.Post, error)
	delete      func(ctx context.Context, identity models.Identity, id string) (*models.Post, error)
	coverUpload func(ctx context.Context, identity models.Identity, id string) (*models.PresignedURL, error)
	coverGet    func(ctx context.Context, id string) (*models.PresignedURL, error)
}

func (f *fakePosts) Create(ctx context.Context, identity models.Identity, title, content string) (*models.Post, error) {
	return f.create(ctx, identity, title, content)
}

func (f *fakePosts) List(ctx context.Context) ([]*models.Post, error) { return f.list(ctx) }

func (f *fakePosts) Get(ctx context.Context, id string) (*models.Post, error) { return f.get(ctx, id) }

func (f *fakePosts) Update(ctx context.Context, identity models.Identity, id string, patch models.PostPatch) (*models.Post, error) {
	return f.update(ctx, identity, id, patch)
}

func (f *fakePosts) Delete(ctx context.Context, identity models.Identity, id string) (*models.Post, error) {
	return f.delete(ctx, identity, id)
}

func (f *fakePosts) CoverUploadURL(ctx context.Context, identity models.Identity, id string) (*models.PresignedURL, error) {
	return f.coverUpload(ctx, identity, id)
}

func (f *fakePosts) CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURL, error) {
	return f.coverGet(ctx, id)
}
