package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

// Notifier accepts an order for confirmation delivery. It has no error
// result: delivery happens off the request path and its outcome is reported
// by the notifier itself.
type Notifier interface {
	NotifyOrderCreated(order models.Order)
}

// Auditor records order lifecycle events, also off the request path.
type Auditor interface {
	RecordOrderEvent(action string, orderID string, data map[string]interface{})
}

type OrderService struct {
	repo     OrderRepository
	notifier Notifier
	auditor  Auditor
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

type OrderServiceOption func(*OrderService)

func WithNotifier(n Notifier) OrderServiceOption {
	return func(s *OrderService) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithAuditor(a Auditor) OrderServiceOption {
	return func(s *OrderService) {
		if a != nil {
			s.auditor = a
		}
	}
}

func WithMetrics(m *metrics.Metrics) OrderServiceOption {
	return func(s *OrderService) {
		s.metrics = m
	}
}

func NewOrderService(repo OrderRepository, logger *zap.Logger, opts ...OrderServiceOption) *OrderService {
	svc := &OrderService{
		repo:     repo,
		notifier: nopNotifier{},
		auditor:  nopAuditor{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateOrder validates the items, derives every subtotal and the order
// total, persists the order with its items and then hands it to the notifier.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range order.Items {
		if item.Price == nil || item.Quantity == nil {
			return nil, ErrItemIncomplete
		}
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	} else {
		status, err := models.ParseOrderStatus(string(order.Status))
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		order.Status = status
	}

	// ids are always assigned by storage
	order.ID = ""
	total := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		item.ID = 0
		item.OrderID = ""
		item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(*item.Quantity)))
		total = total.Add(item.Subtotal)
	}
	order.TotalAmount = total

	if err := s.repo.Save(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.String("customer_email", order.CustomerEmail), zap.Error(err))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail),
		zap.Int("item_count", len(order.Items)),
		zap.String("total_amount", order.TotalAmount.String()))

	s.metrics.OrderCreated()
	snapshot := *order
	snapshot.Items = append([]models.OrderItem(nil), order.Items...)
	s.notifier.NotifyOrderCreated(snapshot)
	s.auditor.RecordOrderEvent("create_order", order.ID, map[string]interface{}{
		"customer_email": order.CustomerEmail,
		"total_amount":   order.TotalAmount.String(),
		"status":         string(order.Status),
	})

	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, orderNotFound(id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.repo.FindByCustomerEmail(ctx, email)
}

// UpdateOrderStatus overwrites the status without checking the transition.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	status, err := models.ParseOrderStatus(string(status))
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = status
	if err := s.repo.Save(ctx, order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, orderNotFound(id)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))

	s.metrics.StatusUpdated(string(status))
	s.auditor.RecordOrderEvent("update_order_status", id, map[string]interface{}{
		"from": string(previous),
		"to":   string(status),
	})
	return order, nil
}

func (s *OrderService) GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	status, err := models.ParseOrderStatus(string(status))
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return s.repo.FindByStatus(ctx, status)
}

// GetPendingOrders returns every order that is neither delivered nor
// cancelled. It filters a full scan in memory since "pending" spans four
// stored statuses.
func (s *OrderService) GetPendingOrders(ctx context.Context) ([]models.Order, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.Status.IsOpen() {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

func (s *OrderService) GetCompletedOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.FindByStatus(ctx, models.OrderStatusDelivered)
}

func (s *OrderService) GetCancelledOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.FindByStatus(ctx, models.OrderStatusCancelled)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return orderNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("Order deleted", zap.String("order_id", id))
	s.auditor.RecordOrderEvent("delete_order", id, nil)
	return nil
}

// CancelOrder moves any non-delivered order to CANCELLED. Cancelling an
// already cancelled order succeeds again.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusDelivered {
		return nil, ErrCancelDelivered
	}

	previous := order.Status
	order.Status = models.OrderStatusCancelled
	if err := s.repo.Save(ctx, order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, orderNotFound(id)
		}
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.logger.Info("Order cancelled", zap.String("order_id", id), zap.String("from", string(previous)))
	s.metrics.OrderCancelled()
	s.auditor.RecordOrderEvent("cancel_order", id, map[string]interface{}{
		"from": string(previous),
	})
	return order, nil
}

// GetOrderStatistics aggregates over a single scan of all orders. Revenue
// counts DELIVERED orders only.
func (s *OrderService) GetOrderStatistics(ctx context.Context) (*models.OrderStatistics, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStatistics{
		TotalOrders:  int64(len(all)),
		TotalRevenue: decimal.Zero,
	}
	for _, o := range all {
		switch {
		case o.Status.IsOpen():
			stats.PendingOrders++
		case o.Status == models.OrderStatusDelivered:
			stats.CompletedOrders++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		case o.Status == models.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats, nil
}

func orderNotFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Order not found with id: %s", id)}
}

type nopNotifier struct{}

func (nopNotifier) NotifyOrderCreated(models.Order) {}

type nopAuditor struct{}

func (nopAuditor) RecordOrderEvent(string, string, map[string]interface{}) {}
