package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/dbx"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/auths"
	"github.com/dmitrijs2005/blog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blog/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/blog/internal/server/repositories/users"
	"github.com/jmoiron/sqlx"
)

// memStore mimics the PostgreSQL schema: unique email, one profile and one
// session per credential, unique tokens.
type memStore struct {
	mu       sync.Mutex
	auths    map[string]models.Auth
	users    map[string]models.User
	sessions map[string]models.Session // keyed by auth_id
	posts    map[string]models.Post

	// failWith, when set, is returned by every call.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		auths:    map[string]models.Auth{},
		users:    map[string]models.User{},
		sessions: map[string]models.Session{},
		posts:    map[string]models.Post{},
	}
}

func ptr[T any](v T) *T { return &v }

// --- auths ---

type memAuths struct{ s *memStore }

func (r memAuths) Create(_ context.Context, a *models.Auth) (*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, x := range r.s.auths {
		if x.Email == a.Email {
			return nil, common.ErrorConflict
		}
	}
	r.s.auths[a.ID] = *a
	return ptr(*a), nil
}

func (r memAuths) ReadAll(context.Context) ([]*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]*models.Auth, 0, len(r.s.auths))
	for _, a := range r.s.auths {
		out = append(out, ptr(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memAuths) Read(_ context.Context, id string) (*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	a, ok := r.s.auths[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return ptr(a), nil
}

func (r memAuths) GetByEmail(_ context.Context, email string) (*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, a := range r.s.auths {
		if a.Email == email {
			return ptr(a), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memAuths) Update(_ context.Context, id string, p models.AuthPatch) (*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	a, ok := r.s.auths[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.PasswordHash != nil {
		a.PasswordHash = *p.PasswordHash
	}
	r.s.auths[id] = a
	return ptr(a), nil
}

func (r memAuths) Delete(_ context.Context, id string) (*models.Auth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	a, ok := r.s.auths[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.s.auths, id)
	delete(r.s.sessions, id)
	for k, u := range r.s.users {
		if u.AuthID == id {
			delete(r.s.users, k)
		}
	}
	for k, p := range r.s.posts {
		if p.AuthorID == id {
			delete(r.s.posts, k)
		}
	}
	return ptr(a), nil
}

// --- users ---

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, x := range r.s.users {
		if x.AuthID == u.AuthID {
			return nil, common.ErrorConflict
		}
	}
	r.s.users[u.ID] = *u
	return ptr(*u), nil
}

func (r memUsers) ReadAll(context.Context) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, ptr(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memUsers) Read(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return ptr(u), nil
}

func (r memUsers) GetByAuthID(_ context.Context, authID string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, u := range r.s.users {
		if u.AuthID == authID {
			return ptr(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) Update(_ context.Context, id string, p models.UserPatch) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	r.s.users[id] = u
	return ptr(u), nil
}

func (r memUsers) SetRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Role = role
	r.s.users[id] = u
	return ptr(u), nil
}

func (r memUsers) Delete(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.s.users, id)
	for k, sess := range r.s.sessions {
		if sess.UserID != nil && *sess.UserID == id {
			sess.UserID = nil
			r.s.sessions[k] = sess
		}
	}
	return ptr(u), nil
}

// --- sessions ---

type memSessions struct{ s *memStore }

func (r memSessions) Upsert(_ context.Context, sess *models.Session) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	r.s.sessions[sess.AuthID] = *sess
	return ptr(*sess), nil
}

func (r memSessions) FindByToken(_ context.Context, token string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, sess := range r.s.sessions {
		if sess.SessionID == token {
			return ptr(sess), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memSessions) Rotate(_ context.Context, oldToken, newToken string, now time.Time) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for k, sess := range r.s.sessions {
		if sess.SessionID == oldToken && sess.ValidUntil.After(now) {
			sess.SessionID = newToken
			sess.UpdatedAt = now
			r.s.sessions[k] = sess
			return ptr(sess), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memSessions) AttachProfile(_ context.Context, authID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if sess, ok := r.s.sessions[authID]; ok {
		sess.UserID = ptr(userID)
		r.s.sessions[authID] = sess
	}
	return nil
}

func (r memSessions) DeleteByToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	for k, sess := range r.s.sessions {
		if sess.SessionID == token {
			delete(r.s.sessions, k)
		}
	}
	return nil
}

// --- posts ---

type memPosts struct{ s *memStore }

func (r memPosts) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	r.s.posts[p.ID] = *p
	return ptr(*p), nil
}

func (r memPosts) ReadAll(context.Context) ([]*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]*models.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		out = append(out, ptr(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memPosts) Read(_ context.Context, id string) (*models.Post, error) {
	return r.ReadOwned(context.Background(), id, "")
}

func (r memPosts) ReadOwned(_ context.Context, id, authorID string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.posts[id]
	if !ok || (authorID != "" && p.AuthorID != authorID) {
		return nil, common.ErrorNotFound
	}
	return ptr(p), nil
}

func (r memPosts) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	return r.UpdateOwned(ctx, id, "", patch)
}

func (r memPosts) UpdateOwned(_ context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.posts[id]
	if !ok || (authorID != "" && p.AuthorID != authorID) {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	r.s.posts[id] = p
	return ptr(p), nil
}

func (r memPosts) Delete(ctx context.Context, id string) (*models.Post, error) {
	return r.DeleteOwned(ctx, id, "")
}

func (r memPosts) DeleteOwned(_ context.Context, id, authorID string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.posts[id]
	if !ok || (authorID != "" && p.AuthorID != authorID) {
		return nil, common.ErrorNotFound
	}
	delete(r.s.posts, id)
	return ptr(p), nil
}

func (r memPosts) SetCover(_ context.Context, id, authorID, key string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, common.ErrorNotFound
	}
	p.CoverKey = ptr(key)
	r.s.posts[id] = p
	return ptr(p), nil
}

// --- manager ---

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Auths(dbx.DBTX) auths.Repository              { return memAuths{m.s} }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return memUsers{m.s} }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return memSessions{m.s} }
func (m *fakeRepoManager) Posts(dbx.DBTX) posts.Repository              { return memPosts{m.s} }

// --- audit ---

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
	err    error
}

func (r *recordingSink) Record(_ context.Context, e audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingSink) types() []audit.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// newTxDB returns a sqlx handle whose transactions are expected by mock.
func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

// clock is a controllable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newClock() *clock                   { return &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)} }
