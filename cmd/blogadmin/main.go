// Command blogadmin performs privileged account operations directly
// against the database: creating Developer accounts and changing roles.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/blog/internal/admin"
	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server"
	"github.com/dmitrijs2005/blog/internal/server/config"
	"github.com/dmitrijs2005/blog/internal/server/services"
)

func main() {

	cmd, args, err := admin.SplitCommand(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr, slog.LevelWarn)

	db, m, err := server.OpenDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sink, err := server.NewAuditSink(ctx, cfg)
	if err != nil {
		db.Close()
		log.Fatalf("audit sink init error: %v", err)
	}

	ops := services.NewAdminService(db, m, sink, logger)
	err = admin.NewApp(ops, os.Stdout).Run(ctx, cmd, args)

	if closer, ok := sink.(interface{ Close(context.Context) error }); ok {
		_ = closer.Close(ctx)
	}
	db.Close()

	if err != nil {
		log.Fatalf("%v", err)
	}

}
