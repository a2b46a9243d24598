package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/artshop/pkg/actors"
	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/notification"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pingTimeout = 3 * time.Second

// OrderStack is the order service with its storage, cache, audit log and
// side-effect actors wired together.
type OrderStack struct {
	Service      *service.OrderService
	Actors       *actors.System
	AuditEnabled bool

	redis  *repository.RedisRepository
	mongo  *repository.MongoRepository
	logger *zap.Logger
}

// NewOrderStack builds the order service on db. Redis and MongoDB are
// optional: an unreachable redis disables the cache, an unreachable mongo is
// an error since the audit log was explicitly enabled.
func NewOrderStack(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) (*OrderStack, error) {
	stack := &OrderStack{logger: logger}

	var repo service.OrderRepository = repository.NewOrderRepository(db)
	if cfg.Redis.Enabled {
		redisRepo := repository.NewRedisRepository(&cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := redisRepo.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("Redis connection failed, order cache disabled", zap.Error(err))
			_ = redisRepo.Close()
		} else {
			logger.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr))
			stack.redis = redisRepo
			repo = repository.NewCachedOrderRepository(repository.NewOrderRepository(db), redisRepo, logger.Named("order-cache"))
		}
	}

	var auditStore actors.AuditStore
	if cfg.MongoDB.Enabled {
		mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
		if err != nil {
			stack.Close()
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = mongoRepo.Ping(ctx)
		if err == nil {
			if idxErr := mongoRepo.EnsureIndexes(ctx); idxErr != nil {
				logger.Warn("Audit index not created", zap.Error(idxErr))
			}
		}
		cancel()
		if err != nil {
			_ = mongoRepo.Close(context.Background())
			stack.Close()
			return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		stack.mongo = mongoRepo
		stack.AuditEnabled = true
		auditStore = mongoRepo
	}

	system, err := actors.Start(actors.Options{
		Sender:  notification.NewSender(cfg.SMTP, logger.Named("mail")),
		Audit:   auditStore,
		Timeout: cfg.SMTP.Timeout,
		Metrics: m,
	}, logger)
	if err != nil {
		stack.Close()
		return nil, err
	}
	stack.Actors = system

	stack.Service = service.NewOrderService(repo, logger.Named("order-service"),
		service.WithNotifier(system),
		service.WithAuditor(system),
		service.WithMetrics(m),
	)
	return stack, nil
}

// Close stops the actors after they drain and releases connections.
func (s *OrderStack) Close() {
	if s.Actors != nil {
		s.Actors.Stop()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.mongo.Close(ctx); err != nil {
			s.logger.Warn("Failed to close MongoDB", zap.Error(err))
		}
	}
}
