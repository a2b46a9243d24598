package actors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/notification"
	"github.com/example/artshop/pkg/repository"
	"go.uber.org/zap"
)

const (
	serviceName    = "order-service"
	defaultTimeout = 10 * time.Second
)

var ErrAuditDisabled = errors.New("audit log is not enabled")

// System owns the actors that run order side effects off the request path.
// It satisfies the order service's Notifier and Auditor.
type System struct {
	system       *actor.ActorSystem
	notification *actor.PID
	audit        *actor.PID
	timeout      time.Duration
	logger       *zap.Logger
}

type Options struct {
	Sender  notification.Sender
	Audit   AuditStore
	Timeout time.Duration
	Metrics *metrics.Metrics
}

// Start spawns the notification actor and, when an audit store is given,
// the audit actor.
func Start(opts Options, logger *zap.Logger) (*System, error) {
	if opts.Sender == nil {
		return nil, fmt.Errorf("notification sender is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	s := &System{
		system:  actor.NewActorSystem(),
		timeout: opts.Timeout,
		logger:  logger,
	}

	notificationProps := actor.PropsFromProducer(func() actor.Actor {
		return &NotificationActor{
			sender:  opts.Sender,
			timeout: opts.Timeout,
			metrics: opts.Metrics,
			logger:  logger.Named("notification-actor"),
		}
	})
	pid, err := s.system.Root.SpawnNamed(notificationProps, "notification-actor")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn notification actor: %w", err)
	}
	s.notification = pid

	if opts.Audit != nil {
		auditProps := actor.PropsFromProducer(func() actor.Actor {
			return &AuditActor{
				store:   opts.Audit,
				timeout: opts.Timeout,
				metrics: opts.Metrics,
				logger:  logger.Named("audit-actor"),
			}
		})
		pid, err := s.system.Root.SpawnNamed(auditProps, "audit-actor")
		if err != nil {
			return nil, fmt.Errorf("failed to spawn audit actor: %w", err)
		}
		s.audit = pid
	}

	logger.Info("Actors started",
		zap.String("notification_actor", s.notification.Id),
		zap.Bool("audit", s.audit != nil))
	return s, nil
}

func (s *System) NotifyOrderCreated(order models.Order) {
	s.system.Root.Send(s.notification, &SendOrderConfirmation{Order: order})
}

func (s *System) RecordOrderEvent(action, orderID string, data map[string]interface{}) {
	if s.audit == nil {
		return
	}
	s.system.Root.Send(s.audit, &RecordAudit{Log: repository.AuditLog{
		Service:   serviceName,
		Action:    action,
		EntityID:  orderID,
		Data:      data,
		CreatedAt: time.Now(),
	}})
}

// AuditTrail returns the newest audit entries for an order.
func (s *System) AuditTrail(ctx context.Context, orderID string, limit int64) ([]*repository.AuditLog, error) {
	if s.audit == nil {
		return nil, ErrAuditDisabled
	}

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	result, err := s.system.Root.RequestFuture(s.audit, &GetAuditTrail{EntityID: orderID, Limit: limit}, timeout).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trail: %w", err)
	}
	trail, ok := result.(*AuditTrail)
	if !ok {
		return nil, fmt.Errorf("unexpected audit reply %T", result)
	}
	return trail.Logs, trail.Err
}

// Stop drains queued messages and stops the actors.
func (s *System) Stop() {
	for _, pid := range []*actor.PID{s.notification, s.audit} {
		if pid == nil {
			continue
		}
		if err := s.system.Root.PoisonFuture(pid).Wait(); err != nil {
			s.logger.Warn("Actor did not stop cleanly", zap.String("actor", pid.Id), zap.Error(err))
		}
	}
	s.logger.Info("Actors stopped")
}
