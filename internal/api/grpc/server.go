package grpc

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"kafkaBridge/internal/api/grpc/interceptors"
	"kafkaBridge/internal/ports"
)

// ServiceName — имя сервиса в grpc.health.v1 (пустое имя "" тоже отвечает, это статус сервера целиком).
const ServiceName = "kafkabridge.Bridge"

// Config — настройки gRPC-сервера. Переменные: BRIDGE_GRPC_HOST, BRIDGE_GRPC_PORT, BRIDGE_GRPC_PROBE_INTERVAL.
type Config struct {
	Enabled       bool          `envconfig:"ENABLED" default:"true"`
	Host          string        `envconfig:"HOST" default:"0.0.0.0"`
	Port          string        `envconfig:"PORT" default:"9090"`
	ProbeInterval time.Duration `envconfig:"PROBE_INTERVAL" default:"10s"`
	StopTimeout   time.Duration `envconfig:"STOP_TIMEOUT" default:"10s"`
}

// Addr возвращает адрес "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер со стандартным health-сервисом. Статус обновляется пингом брокера.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	broker ports.IPinger
	cfg    Config
	log    *slog.Logger
}

// NewServer создаёт gRPC-сервер и регистрирует grpc.health.v1.Health. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
func NewServer(cfg Config, broker ports.IPinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &Server{grpc: s, health: hs, broker: broker, cfg: cfg, log: log}
}

// Start слушает адрес из конфига и обслуживает запросы до отмены ctx.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve обслуживает lis до отмены ctx, затем делает graceful stop (не дольше StopTimeout).
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.probe(ctx)

	probeCtx, stopProbe := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.probeLoop(probeCtx)
	}()

	go func() {
		<-ctx.Done()
		timeout := s.cfg.StopTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.Stop(stopCtx); err != nil {
			s.log.Warn("grpc graceful stop timed out", "error", err)
		}
	}()

	s.log.Info("grpc server started", "addr", lis.Addr().String())
	err := s.grpc.Serve(lis)
	stopProbe()
	wg.Wait()
	return err
}

// Stop переводит health в NOT_SERVING и останавливает сервер (graceful, с откатом на Stop по ctx).
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}

func (s *Server) probeLoop(ctx context.Context) {
	interval := s.cfg.ProbeInterval
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.probe(ctx)
		}
	}
}

// probe пингует брокер и выставляет статус для "" и ServiceName.
func (s *Server) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.broker.Ping(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Warn("broker probe failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
