package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/artshop/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStore is the persistence contract for orders and their items.
type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts a new order together with its items when the order has no id
// yet. For an existing order only the status is written; items and amounts are
// never rewritten after creation. An order deleted in the meantime stays
// deleted and Save returns ErrNotFound.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
			order.ID = ""
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	}

	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{"status": order.Status, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// mysql reports unchanged rows as unaffected
		exists, err := r.ExistsByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	order.UpdatedAt = now
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.withItems(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(r.withItems(ctx))
}

func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.find(r.withItems(ctx).Where("customer_email = ?", email))
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return r.find(r.withItems(ctx).Where("status = ?", status))
}

func (r *OrderRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order %s: %w", id, err)
	}
	return count > 0, nil
}

// DeleteByID removes the order and its items in one transaction.
func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of order %s: %w", id, err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete order %s: %w", id, err)
		}
		return nil
	})
}

func (r *OrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (r *OrderRepository) find(query *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := query.Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
