package gateway

import (
	"net/http"
	"strconv"

	"github.com/example/artshop/pkg/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// createOrder godoc
// @Summary      Create an order
// @Description  Computes item subtotals and the order total, stores the order and queues a confirmation email.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      models.Order  true  "Order with items"
// @Success      201    {object}  models.Order
// @Failure      400    {object}  errorResponse
// @Router       /orders [post]
func (g *Gateway) createOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := g.services.Orders.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getAllOrders godoc
// @Summary  List all orders
// @Tags     orders
// @Produce  json
// @Success  200  {array}  models.Order
// @Router   /orders [get]
func (g *Gateway) getAllOrders(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetAllOrders(c.Request.Context())
	})
}

// getOrder godoc
// @Summary  Get an order by id
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  models.Order
// @Failure  404  {object}  errorResponse
// @Router   /orders/{id} [get]
func (g *Gateway) getOrder(c *gin.Context) {
	order, err := g.services.Orders.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// getOrdersByEmail godoc
// @Summary  List orders of a customer
// @Tags     orders
// @Produce  json
// @Param    email  path   string  true  "Customer email"
// @Success  200    {array}  models.Order
// @Router   /orders/customer/{email} [get]
func (g *Gateway) getOrdersByEmail(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetOrdersByEmail(c.Request.Context(), c.Param("email"))
	})
}

// updateOrderStatus godoc
// @Summary  Set the status of an order
// @Tags     orders
// @Produce  json
// @Param    id      path      string  true  "Order id"
// @Param    status  query     string  true  "New status"  Enums(PENDING, CONFIRMED, PROCESSING, SHIPPED, DELIVERED, CANCELLED)
// @Success  200     {object}  models.Order
// @Failure  400     {object}  errorResponse
// @Failure  404     {object}  errorResponse
// @Router   /orders/{id}/status [put]
func (g *Gateway) updateOrderStatus(c *gin.Context) {
	status, ok := c.GetQuery("status")
	if !ok || status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter is required"})
		return
	}

	order, err := g.services.Orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(status))
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// getOrdersByStatus godoc
// @Summary  List orders with a status
// @Tags     orders
// @Produce  json
// @Param    status  path     string  true  "Status"
// @Success  200     {array}  models.Order
// @Failure  400     {object}  errorResponse
// @Router   /orders/status/{status} [get]
func (g *Gateway) getOrdersByStatus(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetOrdersByStatus(c.Request.Context(), models.OrderStatus(c.Param("status")))
	})
}

// getPendingOrders godoc
// @Summary  List orders that are neither delivered nor cancelled
// @Tags     orders
// @Produce  json
// @Success  200  {array}  models.Order
// @Router   /orders/pending [get]
func (g *Gateway) getPendingOrders(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetPendingOrders(c.Request.Context())
	})
}

// @Summary  List delivered orders
// @Tags     orders
// @Produce  json
// @Success  200  {array}  models.Order
// @Router   /orders/completed [get]
func (g *Gateway) getCompletedOrders(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetCompletedOrders(c.Request.Context())
	})
}

// @Summary  List cancelled orders
// @Tags     orders
// @Produce  json
// @Success  200  {array}  models.Order
// @Router   /orders/cancelled [get]
func (g *Gateway) getCancelledOrders(c *gin.Context) {
	g.respondList(c, func() ([]models.Order, error) {
		return g.services.Orders.GetCancelledOrders(c.Request.Context())
	})
}

// deleteOrder godoc
// @Summary  Delete an order and its items
// @Tags     orders
// @Param    id  path  string  true  "Order id"
// @Success  200
// @Failure  404  {object}  errorResponse
// @Router   /orders/{id} [delete]
func (g *Gateway) deleteOrder(c *gin.Context) {
	if err := g.services.Orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		g.abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// cancelOrder godoc
// @Summary  Cancel an order
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  models.Order
// @Failure  400  {object}  errorResponse  "Order already delivered"
// @Failure  404  {object}  errorResponse
// @Router   /orders/{id}/cancel [put]
func (g *Gateway) cancelOrder(c *gin.Context) {
	order, err := g.services.Orders.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// getOrderStatistics godoc
// @Summary  Order counts and delivered revenue
// @Tags     orders
// @Produce  json
// @Success  200  {object}  models.OrderStatistics
// @Router   /orders/statistics [get]
func (g *Gateway) getOrderStatistics(c *gin.Context) {
	stats, err := g.services.Orders.GetOrderStatistics(c.Request.Context())
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getOrderAudit godoc
// @Summary  Audit trail of an order, newest first
// @Tags     orders
// @Produce  json
// @Param    id     path     string  true   "Order id"
// @Param    limit  query    int     false  "Max entries"
// @Success  200    {array}  repository.AuditLog
// @Failure  503    {object}  errorResponse
// @Router   /orders/{id}/audit [get]
func (g *Gateway) getOrderAudit(c *gin.Context) {
	if g.services.Audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit log is not enabled"})
		return
	}

	limit := int64(defaultAuditLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxAuditLimit)
	}

	logs, err := g.services.Audit.AuditTrail(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (g *Gateway) respondList(c *gin.Context, fetch func() ([]models.Order, error)) {
	orders, err := fetch()
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
