// Package rest exposes the blog services over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blog/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address      string
	cookieSecure bool
	logger       logging.Logger
	validator    *Validator
	now          func() time.Time

	sessions    SessionManager
	credentials CredentialManager
	profiles    ProfileManager
	posts       PostManager
}

// Services groups the collaborators the handlers call into.
type Services struct {
	Sessions    SessionManager
	Credentials CredentialManager
	Profiles    ProfileManager
	Posts       PostManager
}

func NewServer(address string, cookieSecure bool, l logging.Logger, svc Services) *Server {
	return &Server{
		address:      address,
		cookieSecure: cookieSecure,
		logger:       l.With("module", "rest_server"),
		validator:    NewValidator(),
		now:          func() time.Time { return time.Now().UTC() },
		sessions:     svc.Sessions,
		credentials:  svc.Credentials,
		profiles:     svc.Profiles,
		posts:        svc.Posts,
	}
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping REST server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "REST server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting REST server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
