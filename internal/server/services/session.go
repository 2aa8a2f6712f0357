package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/cryptox"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/config"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/dmitrijs2005/blog/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// dummyHash is compared against when the email is unknown, so a miss costs
// the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("blog-dummy-password")
	if err != nil {
		panic(err)
	}
	return h
})

// SessionService issues, resolves, rotates and revokes server-side sessions.
type SessionService struct {
	deps
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	validity    time.Duration
	newToken    func() (string, error)
}

func NewSessionService(db *sqlx.DB, m repomanager.RepositoryManager, cfg *config.Config, sink audit.Sink, logger logging.Logger) *SessionService {
	return &SessionService{
		deps:        newDeps(sink, logger),
		db:          db,
		repomanager: m,
		validity:    cfg.SessionValidityDuration,
		newToken:    func() (string, error) { return cryptox.RandomToken(common.SessionTokenLength) },
	}
}

// SignIn verifies the password and stores a fresh session for the credential,
// replacing any previous one. Unknown email and wrong password both yield
// common.ErrorUnauthorized; on failure no session row is touched.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	a, err := s.repomanager.Auths(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.CheckPassword(dummyHash(), password)
			s.record(ctx, audit.Event{Type: audit.EventSignInFailed, Email: email})
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up credential: %w", err)
	}

	if !cryptox.CheckPassword(a.PasswordHash, password) {
		s.record(ctx, audit.Event{Type: audit.EventSignInFailed, AuthID: a.ID, Email: email})
		return nil, common.ErrorUnauthorized
	}

	var userID *string
	u, err := s.repomanager.Users(s.db).GetByAuthID(ctx, a.ID)
	switch {
	case err == nil:
		userID = &u.ID
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up profile: %w", err)
	}

	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	now := s.now()
	sess, err := s.repomanager.Sessions(s.db).Upsert(ctx, &models.Session{
		ID:         s.newID(),
		AuthID:     a.ID,
		UserID:     userID,
		SessionID:  token,
		ValidUntil: now.Add(s.validity),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("error storing session: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventSignIn, AuthID: a.ID, Email: a.Email})
	return sess, nil
}

// Resolve maps a token to the caller's identity. Missing, unknown or expired
// tokens resolve to the anonymous identity; only store failures are errors.
func (s *SessionService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Anonymous(), nil
	}

	sess, err := s.repomanager.Sessions(s.db).FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Anonymous(), nil
		}
		return models.Anonymous(), fmt.Errorf("error looking up session: %w", err)
	}
	if !sess.IsValid(s.now()) {
		return models.Anonymous(), nil
	}

	a, err := s.repomanager.Auths(s.db).Read(ctx, sess.AuthID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Anonymous(), nil
		}
		return models.Anonymous(), fmt.Errorf("error loading credential: %w", err)
	}

	identity := models.Identity{Auth: a}
	if sess.UserID != nil {
		u, err := s.repomanager.Users(s.db).Read(ctx, *sess.UserID)
		switch {
		case err == nil:
			identity.User = u
		case !errors.Is(err, common.ErrorNotFound):
			return models.Anonymous(), fmt.Errorf("error loading profile: %w", err)
		}
	}

	return identity, nil
}

// Rotate replaces the token of a live session. Expiry and identity are kept.
// An empty, unknown or expired token yields common.ErrorUnauthorized.
func (s *SessionService) Rotate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	newToken, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	sess, err := s.repomanager.Sessions(s.db).Rotate(ctx, token, newToken, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error rotating session: %w", err)
	}

	s.record(ctx, audit.Event{Type: audit.EventRotate, AuthID: sess.AuthID})
	return sess, nil
}

// SignOut deletes the session holding token. Unknown tokens are ignored.
func (s *SessionService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repomanager.Sessions(s.db).DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	s.record(ctx, audit.Event{Type: audit.EventSignOut})
	return nil
}
