package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/artshop/pkg/app"
	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/discovery"
	"github.com/example/artshop/pkg/grpc"
	"github.com/example/artshop/pkg/logger"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/repository"
	"go.uber.org/zap"
)

func main() {
	configPath := "config/order-config.yaml"
	if p := os.Getenv("ARTSHOP_CONFIG"); p != "" {
		configPath = p
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	err = run(cfg, log, sigCh)
	_ = log.Sync()
	if err != nil {
		log.Error("Order service failed", zap.Error(err))
		os.Exit(1)
	}
}

// run serves until stop fires or the server fails. Every error path returns
// through the deferred cleanup so queued actor messages are drained.
func run(cfg *config.Config, log *zap.Logger, stop <-chan os.Signal) error {
	log.Info("Starting order service",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	m := metrics.New()
	stack, err := app.NewOrderStack(cfg, db, m, log)
	if err != nil {
		return fmt.Errorf("failed to build order service: %w", err)
	}
	defer stack.Close()

	var audit grpc.AuditReader
	if stack.AuditEnabled {
		audit = stack.Actors
	}
	srv := grpc.NewServer(grpc.NewOrderServer(stack.Service, audit, log.Named("grpc")))

	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", zap.Error(err))
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(ctx)
	}()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := grpc.Serve(srv, cfg.Server.Addr(), log); err != nil {
			serverErr <- err
		}
	}()
	defer srv.GracefulStop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Etcd.Enabled {
		sd, err := discovery.NewServiceDiscovery(&cfg.Etcd, log.Named("discovery"))
		if err != nil {
			return err
		}
		defer sd.Close()

		instance := &discovery.ServiceInstance{
			Name: cfg.Server.Name,
			Host: cfg.Server.Host,
			Port: cfg.Server.Port,
		}
		if err := sd.Register(ctx, instance); err != nil {
			return fmt.Errorf("failed to register service: %w", err)
		}
		defer func() {
			deregCtx, deregCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer deregCancel()
			if err := sd.Deregister(deregCtx, instance); err != nil {
				log.Error("Failed to deregister service", zap.Error(err))
			}
		}()
	}

	select {
	case <-stop:
		log.Info("Received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("Service stopped")
	return nil
}
