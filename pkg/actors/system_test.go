package actors

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	mu     sync.Mutex
	orders []string
	err    error
}

func (f *fakeSender) SendOrderConfirmation(_ context.Context, order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order.ID)
	return f.err
}

func (f *fakeSender) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.orders...)
}

type memoryAuditStore struct {
	mu   sync.Mutex
	logs []*repository.AuditLog
	err  error
}

func (m *memoryAuditStore) CreateAuditLog(_ context.Context, log *repository.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, log)
	return nil
}

func (m *memoryAuditStore) GetAuditLogs(_ context.Context, entityID string, limit int64) ([]*repository.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*repository.AuditLog
	for i := len(m.logs) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if m.logs[i].EntityID == entityID {
			out = append(out, m.logs[i])
		}
	}
	return out, nil
}

func TestSystem_NotifiesOrders(t *testing.T) {
	sender := &fakeSender{}
	m := metrics.New()
	sys, err := Start(Options{Sender: sender, Metrics: m}, zap.NewNop())
	require.NoError(t, err)
	defer sys.Stop()

	sys.NotifyOrderCreated(models.Order{ID: "o-1"})
	sys.NotifyOrderCreated(models.Order{ID: "o-2"})

	assert.Eventually(t, func() bool { return len(sender.sent()) == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"o-1", "o-2"}, sender.sent())
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Notifications.WithLabelValues("ok")))
}

func TestSystem_NotificationFailureIsContained(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	m := metrics.New()
	sys, err := Start(Options{Sender: sender, Metrics: m}, zap.NewNop())
	require.NoError(t, err)
	defer sys.Stop()

	sys.NotifyOrderCreated(models.Order{ID: "o-1"})
	sys.NotifyOrderCreated(models.Order{ID: "o-2"})

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.Notifications.WithLabelValues("failed")) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestSystem_AuditTrail(t *testing.T) {
	store := &memoryAuditStore{}
	sys, err := Start(Options{Sender: &fakeSender{}, Audit: store}, zap.NewNop())
	require.NoError(t, err)
	defer sys.Stop()

	sys.RecordOrderEvent("create_order", "o-1", map[string]interface{}{"status": "PENDING"})
	sys.RecordOrderEvent("create_order", "o-2", nil)
	sys.RecordOrderEvent("cancel_order", "o-1", nil)

	// queued behind the writes above
	logs, err := sys.AuditTrail(context.Background(), "o-1", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "cancel_order", logs[0].Action)
	assert.Equal(t, "create_order", logs[1].Action)
	assert.Equal(t, serviceName, logs[1].Service)
	assert.Equal(t, "PENDING", logs[1].Data["status"])
}

func TestSystem_AuditWriteFailureIsContained(t *testing.T) {
	store := &memoryAuditStore{err: errors.New("mongo down")}
	m := metrics.New()
	sys, err := Start(Options{Sender: &fakeSender{}, Audit: store, Metrics: m}, zap.NewNop())
	require.NoError(t, err)
	defer sys.Stop()

	sys.RecordOrderEvent("delete_order", "o-1", nil)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.AuditWrites.WithLabelValues("failed")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSystem_AuditDisabled(t *testing.T) {
	sys, err := Start(Options{Sender: &fakeSender{}}, zap.NewNop())
	require.NoError(t, err)
	defer sys.Stop()

	sys.RecordOrderEvent("create_order", "o-1", nil)
	_, err = sys.AuditTrail(context.Background(), "o-1", 10)
	assert.ErrorIs(t, err, ErrAuditDisabled)
}

func TestStart_RequiresSender(t *testing.T) {
	_, err := Start(Options{}, zap.NewNop())
	assert.Error(t, err)
}
