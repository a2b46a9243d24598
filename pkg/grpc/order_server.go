package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/example/artshop/pkg/actors"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const (
	orderServiceName = "artshop.order.v1.OrderService"
	requestIDKey     = "x-request-id"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetPendingOrders(ctx context.Context) ([]models.Order, error)
	GetCompletedOrders(ctx context.Context) ([]models.Order, error)
	GetCancelledOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	CancelOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrderStatistics(ctx context.Context) (*models.OrderStatistics, error)
}

type AuditReader interface {
	AuditTrail(ctx context.Context, orderID string, limit int64) ([]*repository.AuditLog, error)
}

// OrderServer exposes the order service over gRPC.
type OrderServer struct {
	svc    OrderService
	audit  AuditReader
	logger *zap.Logger
}

func NewOrderServer(svc OrderService, audit AuditReader, logger *zap.Logger) *OrderServer {
	return &OrderServer{svc: svc, audit: audit, logger: logger}
}

// NewServer builds a grpc server with the order service and reflection
// registered.
func NewServer(s *OrderServer) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		recoveryInterceptor(s.logger),
		loggingInterceptor(s.logger),
	))
	srv.RegisterService(&orderServiceDesc, s)
	reflection.Register(srv)
	return srv
}

func Serve(srv *grpc.Server, addr string, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	logger.Info("Order service started", zap.String("address", addr))
	return srv.Serve(lis)
}

func (s *OrderServer) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	order, err := s.svc.CreateOrder(ctx, req.Order)
	if err != nil {
		return nil, toStatus(err)
	}
	return &OrderResponse{Order: order}, nil
}

func (s *OrderServer) GetAllOrders(ctx context.Context, _ *Empty) (*OrderListResponse, error) {
	return listResponse(s.svc.GetAllOrders(ctx))
}

func (s *OrderServer) GetOrder(ctx context.Context, req *OrderIDRequest) (*OrderResponse, error) {
	order, err := s.svc.GetOrderByID(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &OrderResponse{Order: order}, nil
}

func (s *OrderServer) GetOrdersByEmail(ctx context.Context, req *EmailRequest) (*OrderListResponse, error) {
	return listResponse(s.svc.GetOrdersByEmail(ctx, req.Email))
}

func (s *OrderServer) UpdateOrderStatus(ctx context.Context, req *UpdateStatusRequest) (*OrderResponse, error) {
	order, err := s.svc.UpdateOrderStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, toStatus(err)
	}
	return &OrderResponse{Order: order}, nil
}

func (s *OrderServer) GetOrdersByStatus(ctx context.Context, req *StatusRequest) (*OrderListResponse, error) {
	return listResponse(s.svc.GetOrdersByStatus(ctx, req.Status))
}

func (s *OrderServer) GetPendingOrders(ctx context.Context, _ *Empty) (*OrderListResponse, error) {
	return listResponse(s.svc.GetPendingOrders(ctx))
}

func (s *OrderServer) GetCompletedOrders(ctx context.Context, _ *Empty) (*OrderListResponse, error) {
	return listResponse(s.svc.GetCompletedOrders(ctx))
}

func (s *OrderServer) GetCancelledOrders(ctx context.Context, _ *Empty) (*OrderListResponse, error) {
	return listResponse(s.svc.GetCancelledOrders(ctx))
}

func (s *OrderServer) DeleteOrder(ctx context.Context, req *OrderIDRequest) (*Empty, error) {
	if err := s.svc.DeleteOrder(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &Empty{}, nil
}

func (s *OrderServer) CancelOrder(ctx context.Context, req *OrderIDRequest) (*OrderResponse, error) {
	order, err := s.svc.CancelOrder(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &OrderResponse{Order: order}, nil
}

func (s *OrderServer) GetOrderStatistics(ctx context.Context, _ *Empty) (*StatisticsResponse, error) {
	stats, err := s.svc.GetOrderStatistics(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &StatisticsResponse{Statistics: stats}, nil
}

func (s *OrderServer) GetAuditTrail(ctx context.Context, req *AuditTrailRequest) (*AuditTrailResponse, error) {
	if s.audit == nil {
		return nil, toStatus(actors.ErrAuditDisabled)
	}
	logs, err := s.audit.AuditTrail(ctx, req.ID, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	return &AuditTrailResponse{Logs: logs}, nil
}

func listResponse(orders []models.Order, err error) (*OrderListResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &OrderListResponse{Orders: orders}, nil
}

// toStatus maps service errors onto grpc codes. The client maps them back.
func toStatus(err error) error {
	switch {
	case service.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case service.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case service.IsInvalidState(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case service.IsUnauthorized(err):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, actors.ErrAuditDisabled):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		requestID := "unknown"
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(requestIDKey); len(ids) > 0 {
				requestID = ids[0]
			}
		}

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		}
		if status.Code(err) == codes.Internal {
			logger.Error("gRPC request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("gRPC request", fields...)
		}
		return resp, err
	}
}

func recoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in gRPC handler", zap.String("method", info.FullMethod), zap.Any("panic", r))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
