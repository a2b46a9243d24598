package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewOrderStack_WithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Redis: config.RedisConfig{Enabled: true, Addr: mr.Addr(), CacheTTL: time.Minute},
	}
	m := metrics.New()

	stack, err := NewOrderStack(cfg, testutil.NewTestDB(t), m, zap.NewNop())
	require.NoError(t, err)
	defer stack.Close()
	assert.False(t, stack.AuditEnabled)

	ctx := context.Background()
	order, err := stack.Service.CreateOrder(ctx, &models.Order{
		CustomerEmail: "ana@example.com",
		Items:         []models.OrderItem{testutil.Item("4.25", 2)},
	})
	require.NoError(t, err)

	_, err = stack.Service.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists("order:"+order.ID), "order is cached after a read")

	_, err = stack.Service.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists("order:"+order.ID), "cancel invalidates the cache")

	assert.Equal(t, float64(1), promtest.ToFloat64(m.OrdersCreated))
	assert.Eventually(t, func() bool {
		return promtest.ToFloat64(m.Notifications.WithLabelValues("ok")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestNewOrderStack_RedisDownDisablesCache(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"},
	}

	stack, err := NewOrderStack(cfg, testutil.NewTestDB(t), nil, zap.NewNop())
	require.NoError(t, err)
	defer stack.Close()

	order, err := stack.Service.CreateOrder(context.Background(), &models.Order{Items: []models.OrderItem{testutil.Item("1", 1)}})
	require.NoError(t, err)
	_, err = stack.Service.GetOrderByID(context.Background(), order.ID)
	assert.NoError(t, err)
}
