package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	up := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range orderStatuses {
		if st == up {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// IsOpen reports whether the order still counts as pending work:
// anything placed but neither delivered nor cancelled.
func (s OrderStatus) IsOpen() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped:
		return true
	}
	return false
}

type Order struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CustomerName    string          `gorm:"type:varchar(100)" json:"customer_name"`
	CustomerEmail   string          `gorm:"type:varchar(100);index" json:"customer_email"`
	CustomerPhone   string          `gorm:"type:varchar(20)" json:"customer_phone"`
	ShippingAddress string          `gorm:"type:text" json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:varchar(64);not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:varchar(20);index;not null" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one priced line of an order. Price and Quantity are pointers so
// that a missing value can be told apart from zero. Money is stored as the
// decimal's exact text so no driver converts it through float64.
type OrderItem struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      string           `gorm:"type:varchar(36);index;not null" json:"order_id"`
	ArtworkID    string           `gorm:"type:varchar(36)" json:"artwork_id"`
	ArtworkTitle string           `gorm:"type:varchar(200)" json:"artwork_title"`
	Price        *decimal.Decimal `gorm:"type:varchar(64);not null" json:"price"`
	Quantity     *int             `gorm:"not null" json:"quantity"`
	Subtotal     decimal.Decimal  `gorm:"type:varchar(64);not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type OrderStatistics struct {
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	CancelledOrders int64           `json:"cancelled_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}
