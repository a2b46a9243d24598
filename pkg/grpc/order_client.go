package grpc

import (
	"context"

	"github.com/example/artshop/pkg/actors"
	"github.com/example/artshop/pkg/logger"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// OrderClient calls a remote order service and returns the same typed errors
// as the in-process service.
type OrderClient struct {
	conn grpc.ClientConnInterface
}

func NewOrderClient(conn grpc.ClientConnInterface) *OrderClient {
	return &OrderClient{conn: conn}
}

func (c *OrderClient) invoke(ctx context.Context, method string, in, out interface{}) error {
	if id := logger.RequestID(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDKey, id)
	}
	return fromStatus(c.conn.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(codecName)))
}

func (c *OrderClient) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	out := new(OrderResponse)
	if err := c.invoke(ctx, "CreateOrder", &CreateOrderRequest{Order: order}, out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *OrderClient) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return c.list(ctx, "GetAllOrders", &Empty{})
}

func (c *OrderClient) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	out := new(OrderResponse)
	if err := c.invoke(ctx, "GetOrder", &OrderIDRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *OrderClient) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return c.list(ctx, "GetOrdersByEmail", &EmailRequest{Email: email})
}

func (c *OrderClient) UpdateOrderStatus(ctx context.Context, id string, st models.OrderStatus) (*models.Order, error) {
	out := new(OrderResponse)
	if err := c.invoke(ctx, "UpdateOrderStatus", &UpdateStatusRequest{ID: id, Status: st}, out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *OrderClient) GetOrdersByStatus(ctx context.Context, st models.OrderStatus) ([]models.Order, error) {
	return c.list(ctx, "GetOrdersByStatus", &StatusRequest{Status: st})
}

func (c *OrderClient) GetPendingOrders(ctx context.Context) ([]models.Order, error) {
	return c.list(ctx, "GetPendingOrders", &Empty{})
}

func (c *OrderClient) GetCompletedOrders(ctx context.Context) ([]models.Order, error) {
	return c.list(ctx, "GetCompletedOrders", &Empty{})
}

func (c *OrderClient) GetCancelledOrders(ctx context.Context) ([]models.Order, error) {
	return c.list(ctx, "GetCancelledOrders", &Empty{})
}

func (c *OrderClient) DeleteOrder(ctx context.Context, id string) error {
	return c.invoke(ctx, "DeleteOrder", &OrderIDRequest{ID: id}, new(Empty))
}

func (c *OrderClient) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	out := new(OrderResponse)
	if err := c.invoke(ctx, "CancelOrder", &OrderIDRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *OrderClient) GetOrderStatistics(ctx context.Context) (*models.OrderStatistics, error) {
	out := new(StatisticsResponse)
	if err := c.invoke(ctx, "GetOrderStatistics", &Empty{}, out); err != nil {
		return nil, err
	}
	return out.Statistics, nil
}

func (c *OrderClient) AuditTrail(ctx context.Context, orderID string, limit int64) ([]*repository.AuditLog, error) {
	out := new(AuditTrailResponse)
	if err := c.invoke(ctx, "GetAuditTrail", &AuditTrailRequest{ID: orderID, Limit: limit}, out); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

func (c *OrderClient) list(ctx context.Context, method string, in interface{}) ([]models.Order, error) {
	out := new(OrderListResponse)
	if err := c.invoke(ctx, method, in, out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return &service.NotFoundError{Message: st.Message()}
	case codes.InvalidArgument:
		return &service.ValidationError{Message: st.Message()}
	case codes.FailedPrecondition:
		return &service.InvalidStateError{Message: st.Message()}
	case codes.Unauthenticated:
		return &service.UnauthorizedError{Message: st.Message()}
	case codes.Unimplemented:
		if st.Message() == actors.ErrAuditDisabled.Error() {
			return actors.ErrAuditDisabled
		}
		return err
	default:
		return err
	}
}
