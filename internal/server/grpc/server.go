// Package grpc runs the gRPC health endpoint of the blog server.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/blog/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	address string
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(a string, l logging.Logger) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		health:  health.NewServer(),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve reports SERVING on lis until ctx is cancelled, then flips to
// NOT_SERVING and stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
