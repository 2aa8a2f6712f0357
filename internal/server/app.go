// Package server wires configuration, storage and services together and
// runs the REST API alongside the gRPC health endpoint until a shutdown
// signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/dmitrijs2005/blog/internal/server/config"
	"github.com/dmitrijs2005/blog/internal/server/rest"
	"github.com/dmitrijs2005/blog/internal/server/services"
	"github.com/jmoiron/sqlx"

	gs "github.com/dmitrijs2005/blog/internal/server/grpc"
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sqlx.DB
	sink    audit.Sink
	servers map[string]runner
}

// NewAuditSink returns the Mongo-backed auth event log, or a no-op sink
// when no URI is configured.
func NewAuditSink(ctx context.Context, cfg *config.Config) (audit.Sink, error) {
	if cfg.AuditMongoURI == "" {
		return audit.Nop(), nil
	}
	return audit.NewMongoSink(ctx, cfg.AuditMongoURI, cfg.AuditMongoDatabase)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	db, m, err := OpenDatabase(ctx, c)
	if err != nil {
		return nil, err
	}

	sink, err := NewAuditSink(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit sink init error: %w", err)
	}

	svc := rest.Services{
		Sessions:    services.NewSessionService(db, m, c, sink, logger),
		Credentials: services.NewCredentialService(db, m, sink, logger),
		Profiles:    services.NewProfileService(db, m, sink, logger),
		Posts:       services.NewPostService(db, m, services.NewS3Presigner(c), logger),
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		sink:   sink,
		servers: map[string]runner{
			"rest": rest.NewServer(c.EndpointAddrHTTP, c.CookieSecure, logger, svc),
			"grpc": gs.NewGRPCServer(c.EndpointAddrGRPC, logger),
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// startServer runs one server; a failure brings the whole app down.
func (app *App) startServer(ctx context.Context, cancelFunc context.CancelFunc, name string, s runner) {
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	for name, s := range app.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startServer(ctx, cancelFunc, name, s)
		}()
	}

	wg.Wait()

	app.close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) close() {
	ctx := context.Background()

	if closer, ok := app.sink.(interface{ Close(context.Context) error }); ok {
		if err := closer.Close(ctx); err != nil {
			app.logger.Error(ctx, "audit sink close", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close", "error", err)
		}
	}
}
