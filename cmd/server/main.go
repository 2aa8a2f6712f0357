// Command server runs the blog API: REST on EndpointAddrHTTP and the gRPC
// health service on EndpointAddrGRPC.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/blog/internal/server"
	"github.com/dmitrijs2005/blog/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	app.Run(ctx)

}
