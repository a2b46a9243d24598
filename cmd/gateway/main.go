package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/artshop/gateway"
	"github.com/example/artshop/pkg/app"
	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/discovery"
	"github.com/example/artshop/pkg/grpc"
	"github.com/example/artshop/pkg/logger"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/security"
	"github.com/example/artshop/pkg/service"
	"go.uber.org/zap"
)

func main() {
	configPath := "config/config.yaml"
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
		log.Error("Gateway failed", zap.Error(err))
		os.Exit(1)
	}
}

// run serves until stop fires or the gateway fails. Every error path returns
// through the deferred cleanup.
func run(cfg *config.Config, log *zap.Logger, stop <-chan os.Signal) error {
	log.Info("Starting API Gateway",
		zap.Int("port", cfg.Gateway.Port),
		zap.String("host", cfg.Gateway.Host),
		zap.String("order_backend", cfg.Gateway.OrderBackend))

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	tokens, err := security.NewTokenProvider(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	if err != nil {
		return fmt.Errorf("failed to configure tokens: %w", err)
	}

	admins := service.NewAdminService(repository.NewAdminRepository(db), tokens, log.Named("admin-service"))
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := admins.EnsureDefaultAdmin(seedCtx, cfg.Auth.DefaultAdmin); err != nil {
		log.Error("Failed to seed default admin", zap.Error(err))
	}
	seedCancel()

	services := gateway.Services{
		Auth:         service.NewAuthService(repository.NewUserRepository(db), tokens, log.Named("auth-service")),
		Admins:       admins,
		Artworks:     service.NewArtworkService(repository.NewArtworkRepository(db), log.Named("artwork-service")),
		Testimonials: service.NewTestimonialService(repository.NewTestimonialRepository(db), log.Named("testimonial-service")),
	}

	m := metrics.New()
	switch cfg.Gateway.OrderBackend {
	case "grpc":
		// Setup service discovery
		var resolver grpc.Resolver
		if cfg.Etcd.Enabled {
			sd, err := discovery.NewServiceDiscovery(&cfg.Etcd, log.Named("discovery"))
			if err != nil {
				log.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
			} else {
				defer sd.Close()
				resolver = sd
			}
		}

		clients := grpc.NewClientManager(cfg.Gateway.OrderAddr, resolver, log)
		if err := clients.Connect(context.Background()); err != nil {
			return fmt.Errorf("failed to connect to order service: %w", err)
		}
		defer clients.Close()
		services.Orders = clients.Orders()
		services.Audit = clients.Orders()

	case "local", "":
		stack, err := app.NewOrderStack(cfg, db, m, log)
		if err != nil {
			return fmt.Errorf("failed to build order service: %w", err)
		}
		defer stack.Close()
		services.Orders = stack.Service
		if stack.AuditEnabled {
			services.Audit = stack.Actors
		}

	default:
		return fmt.Errorf("unknown order backend %q", cfg.Gateway.OrderBackend)
	}

	// Create gateway
	gw := gateway.NewGateway(cfg, services, m, log)
	gw.SetupRoutes()

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	select {
	case <-stop:
		log.Info("Received shutdown signal")
	case err := <-gwErr:
		return fmt.Errorf("gateway error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := gw.Shutdown(ctx); err != nil {
		log.Error("Gateway shutdown failed", zap.Error(err))
	}

	log.Info("Gateway stopped")
	return nil
}
