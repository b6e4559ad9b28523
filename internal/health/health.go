package health

import (
	"context"
	"net"
	"time"

	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall status.
const ServiceName = "pokedex"

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server exposes grpc.health.v1.Health for the API process.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	db     Pinger
}

// NewServer creates a health server. Every service starts as NOT_SERVING.
func NewServer(db Pinger, opts ...grpc.ServerOption) *Server {
	s := &Server{
		grpc:   grpc.NewServer(opts...),
		health: health.NewServer(),
		db:     db,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Refresh pings the database and updates the reported status.
func (s *Server) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	s.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Serve accepts gRPC connections on lis until Shutdown is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Log.Infow("gRPC health server started", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

// Shutdown flips every service to NOT_SERVING and stops the server gracefully.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
