package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/example/artshop/pkg/discovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const OrderServiceName = "order-service"

type Resolver interface {
	Discover(ctx context.Context, serviceName string) ([]*discovery.ServiceInstance, error)
}

// ClientManager manages the gRPC connection to the order service
type ClientManager struct {
	fallback  string
	discovery Resolver
	logger    *zap.Logger

	conn   *grpc.ClientConn
	orders *OrderClient
}

// NewClientManager creates a client manager. disc may be nil, in which case
// fallback is always used.
func NewClientManager(fallback string, disc Resolver, logger *zap.Logger) *ClientManager {
	return &ClientManager{
		fallback:  fallback,
		discovery: disc,
		logger:    logger,
	}
}

func (m *ClientManager) Connect(ctx context.Context, opts ...grpc.DialOption) error {
	target := m.resolve(ctx)
	m.logger.Info("Connecting to order service", zap.String("target", target))

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to order service: %w", err)
	}

	m.conn = conn
	m.orders = NewOrderClient(conn)
	return nil
}

func (m *ClientManager) resolve(ctx context.Context) string {
	if m.discovery == nil {
		return m.fallback
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	instances, err := m.discovery.Discover(ctx, OrderServiceName)
	if err != nil || len(instances) == 0 {
		m.logger.Info("Using default address for order service",
			zap.String("address", m.fallback),
			zap.Error(err))
		return m.fallback
	}

	target := instances[0].Addr()
	m.logger.Info("Discovered order service", zap.String("address", target))
	return target
}

// Orders returns the order client. It is nil before Connect succeeds.
func (m *ClientManager) Orders() *OrderClient {
	return m.orders
}

func (m *ClientManager) Close() error {
	if m.conn == nil {
		return nil
	}
	if err := m.conn.Close(); err != nil {
		return fmt.Errorf("order connection close error: %w", err)
	}
	return nil
}
