package grpc

import (
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
)

type Empty struct{}

type OrderIDRequest struct {
	ID string `json:"id"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type StatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type UpdateStatusRequest struct {
	ID     string             `json:"id"`
	Status models.OrderStatus `json:"status"`
}

type CreateOrderRequest struct {
	Order *models.Order `json:"order"`
}

type AuditTrailRequest struct {
	ID    string `json:"id"`
	Limit int64  `json:"limit"`
}

type OrderResponse struct {
	Order *models.Order `json:"order"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
}

type StatisticsResponse struct {
	Statistics *models.OrderStatistics `json:"statistics"`
}

type AuditTrailResponse struct {
	Logs []*repository.AuditLog `json:"logs"`
}
