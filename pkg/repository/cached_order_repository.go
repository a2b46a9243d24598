package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/artshop/pkg/models"
	"go.uber.org/zap"
)

// DefaultReinvalidateDelay is how long after a write the cached copy is
// dropped a second time. A reader that missed the cache before the write may
// still be repopulating it with the old row within that window.
const DefaultReinvalidateDelay = 500 * time.Millisecond

// CachedOrderRepository serves FindByID from redis and drops the cached copy
// on every write, once right away and once after reinvalidateAfter. Cache
// failures degrade to the underlying store.
type CachedOrderRepository struct {
	OrderStore
	cache             *RedisRepository
	reinvalidateAfter time.Duration
	logger            *zap.Logger
}

func NewCachedOrderRepository(store OrderStore, cache *RedisRepository, logger *zap.Logger) *CachedOrderRepository {
	return &CachedOrderRepository{
		OrderStore:        store,
		cache:             cache,
		reinvalidateAfter: DefaultReinvalidateDelay,
		logger:            logger,
	}
}

func (r *CachedOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	cached, err := r.cache.GetOrderCache(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("Order cache read failed", zap.String("order_id", id), zap.Error(err))
	}

	order, err := r.OrderStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.CacheOrder(ctx, order); err != nil {
		r.logger.Warn("Order cache write failed", zap.String("order_id", id), zap.Error(err))
	}
	return order, nil
}

func (r *CachedOrderRepository) Save(ctx context.Context, order *models.Order) error {
	isNew := order.ID == ""
	if err := r.OrderStore.Save(ctx, order); err != nil {
		return err
	}
	if !isNew {
		r.invalidate(ctx, order.ID)
	}
	return nil
}

func (r *CachedOrderRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.OrderStore.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedOrderRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.InvalidateOrder(ctx, id); err != nil {
		r.logger.Warn("Order cache invalidation failed", zap.String("order_id", id), zap.Error(err))
	}
	if r.reinvalidateAfter <= 0 {
		return
	}
	time.AfterFunc(r.reinvalidateAfter, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.cache.InvalidateOrder(ctx, id); err != nil {
			r.logger.Warn("Delayed order cache invalidation failed", zap.String("order_id", id), zap.Error(err))
		}
	})
}
