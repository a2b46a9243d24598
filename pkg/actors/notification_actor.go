package actors

import (
	"context"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/notification"
	"go.uber.org/zap"
)

// NotificationActor delivers order confirmations one at a time. Delivery
// errors are logged and counted, never propagated.
type NotificationActor struct {
	sender  notification.Sender
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func (a *NotificationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *SendOrderConfirmation:
		sendCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		err := a.sender.SendOrderConfirmation(sendCtx, msg.Order)
		cancel()

		a.metrics.NotificationResult(err)
		if err != nil {
			a.logger.Error("Failed to send order confirmation",
				zap.String("order_id", msg.Order.ID),
				zap.String("customer_email", msg.Order.CustomerEmail),
				zap.Error(err))
			return
		}
		a.logger.Info("Order confirmation sent", zap.String("order_id", msg.Order.ID))

	case *actor.Started:
		a.logger.Info("Notification actor started")

	case *actor.Stopping:
		a.logger.Info("Notification actor stopping")

	case *actor.Stopped:
		a.logger.Info("Notification actor stopped")
	}
}
