package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	apigrpc "kafkaBridge/internal/api/grpc"
	apihttp "kafkaBridge/internal/api/http"
	"kafkaBridge/internal/api/http/controllers/receiver"
	"kafkaBridge/internal/api/http/controllers/sender"
	"kafkaBridge/internal/api/http/controllers/system"
	"kafkaBridge/internal/pkg/logger"
	receiverUsecase "kafkaBridge/internal/usecase/receiver"
	senderUsecase "kafkaBridge/internal/usecase/sender"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (брокер подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run поднимает логгер, ждёт SIGINT/SIGTERM и запускает мост (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx, log)
}

// run подключает брокер, собирает юзкейсы и контроллеры и держит HTTP, gRPC и консьюмер до отмены ctx.
// Падение любого из них останавливает остальные.
func (a *App) run(ctx context.Context, log *slog.Logger) error {
	b, err := openBroker(ctx, a.cfg, log)
	if err != nil {
		return fmt.Errorf("broker: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn("broker close", "error", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	serverCfg := a.cfg.Server
	serverCfg.Role = a.cfg.Role
	srv := apihttp.NewServer(serverCfg)
	srv.AddController(system.New(b.pinger, log))

	if a.cfg.sends() {
		uc := senderUsecase.New(b.publisher, senderUsecase.Config{
			Topic:          a.cfg.Broker.Topic,
			PublishTimeout: a.cfg.Broker.PublishTimeout,
		}, log)
		srv.AddController(sender.New(uc, log))
	}

	if a.cfg.receives() {
		uc := receiverUsecase.New(log)
		srv.AddController(receiver.New(uc, log))

		consumer, err := b.consumer()
		if err != nil {
			return fmt.Errorf("consumer: %w", err)
		}
		g.Go(func() error {
			err := consumer.Run(gctx, uc.HandleMessage)
			if err == nil || (gctx.Err() != nil && errors.Is(err, context.Canceled)) {
				return nil
			}
			return fmt.Errorf("consumer: %w", err)
		})
	}

	if a.cfg.Grpc.Enabled {
		grpcSrv := apigrpc.NewServer(a.cfg.Grpc, b.pinger, log)
		g.Go(func() error {
			if err := grpcSrv.Start(gctx); err != nil {
				return fmt.Errorf("grpc: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		if err := srv.Start(gctx); err != nil {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})

	log.Info("application started",
		"role", a.cfg.Role,
		"driver", a.cfg.Broker.Driver,
		"topic", a.cfg.Broker.Topic,
		"group", a.cfg.Broker.GroupID,
		"http", a.cfg.Server.Addr(),
		"grpc_enabled", a.cfg.Grpc.Enabled,
	)

	err = g.Wait()
	log.Info("application stopped", "error", err)
	return err
}
