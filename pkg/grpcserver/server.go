package grpcserver

import (
	"net"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	defaultAddr            = ":50051"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	Server          *grpc.Server
	Health          *health.Server
	addr            string
	listener        net.Listener
	notify          chan error
	shutdownTimeout time.Duration
}

// New listens on the configured port and serves the grpc.health.v1 service
// next to whatever register adds. Every service starts as NOT_SERVING.
func New(register func(*grpc.Server), opts ...Option) (*Server, error) {
	s := &Server{
		Server:          grpc.NewServer(),
		Health:          health.NewServer(),
		addr:            defaultAddr,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	s.listener = listener

	s.Health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s.Server, s.Health)
	if register != nil {
		register(s.Server)
	}

	s.start()

	return s, nil
}

func (s *Server) start() {
	go func() {
		s.notify <- s.Server.Serve(s.listener)
		close(s.notify)
	}()
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.Health.SetServingStatus("", status)
}

func (s *Server) Shutdown() {
	s.Health.Shutdown()

	done := make(chan any)
	go func() {
		s.Server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.Server.Stop()
	}
}
