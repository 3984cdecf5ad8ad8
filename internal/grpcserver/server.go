// Package grpcserver exposes service readiness over the standard gRPC
// health protocol so orchestrators can probe the API's backing store.
package grpcserver

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside "".
const ServiceName = "tuninghub.Store"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	Health   *health.Server
	Store    Pinger
	Interval time.Duration
	Timeout  time.Duration
}

func NewServer(store Pinger) *Server {
	return &Server{
		Health:   health.NewServer(),
		Store:    store,
		Interval: 10 * time.Second,
		Timeout:  2 * time.Second,
	}
}

// Register adds the health service to gs.
func (s *Server) Register(gs *grpc.Server) {
	healthpb.RegisterHealthServer(gs, s.Health)
}

// Check pings the store once and publishes the result.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := s.Store.Ping(ctx); err != nil {
		log.WithError(err).Warn("[grpc] store ping failed")
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.Health.SetServingStatus("", st)
	s.Health.SetServingStatus(ServiceName, st)
	return st
}

// Run checks immediately and then every Interval until ctx ends, when all
// services are marked NOT_SERVING.
func (s *Server) Run(ctx context.Context) {
	s.Check(ctx)
	t := time.NewTicker(s.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Health.Shutdown()
			return
		case <-t.C:
			s.Check(ctx)
		}
	}
}
