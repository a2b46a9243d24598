package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// OrderServiceServer is the server API of artshop.order.v1.OrderService.
type OrderServiceServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*OrderResponse, error)
	GetAllOrders(context.Context, *Empty) (*OrderListResponse, error)
	GetOrder(context.Context, *OrderIDRequest) (*OrderResponse, error)
	GetOrdersByEmail(context.Context, *EmailRequest) (*OrderListResponse, error)
	UpdateOrderStatus(context.Context, *UpdateStatusRequest) (*OrderResponse, error)
	GetOrdersByStatus(context.Context, *StatusRequest) (*OrderListResponse, error)
	GetPendingOrders(context.Context, *Empty) (*OrderListResponse, error)
	GetCompletedOrders(context.Context, *Empty) (*OrderListResponse, error)
	GetCancelledOrders(context.Context, *Empty) (*OrderListResponse, error)
	DeleteOrder(context.Context, *OrderIDRequest) (*Empty, error)
	CancelOrder(context.Context, *OrderIDRequest) (*OrderResponse, error)
	GetOrderStatistics(context.Context, *Empty) (*StatisticsResponse, error)
	GetAuditTrail(context.Context, *AuditTrailRequest) (*AuditTrailResponse, error)
}

var orderServiceDesc = grpc.ServiceDesc{
	ServiceName: orderServiceName,
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateOrder", OrderServiceServer.CreateOrder),
		unary("GetAllOrders", OrderServiceServer.GetAllOrders),
		unary("GetOrder", OrderServiceServer.GetOrder),
		unary("GetOrdersByEmail", OrderServiceServer.GetOrdersByEmail),
		unary("UpdateOrderStatus", OrderServiceServer.UpdateOrderStatus),
		unary("GetOrdersByStatus", OrderServiceServer.GetOrdersByStatus),
		unary("GetPendingOrders", OrderServiceServer.GetPendingOrders),
		unary("GetCompletedOrders", OrderServiceServer.GetCompletedOrders),
		unary("GetCancelledOrders", OrderServiceServer.GetCancelledOrders),
		unary("DeleteOrder", OrderServiceServer.DeleteOrder),
		unary("CancelOrder", OrderServiceServer.CancelOrder),
		unary("GetOrderStatistics", OrderServiceServer.GetOrderStatistics),
		unary("GetAuditTrail", OrderServiceServer.GetAuditTrail),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "artshop/order/v1/order.json",
}

func unary[Req, Resp any](name string, call func(OrderServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(OrderServiceServer), ctx, req.(*Req))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + orderServiceName + "/" + name
}
