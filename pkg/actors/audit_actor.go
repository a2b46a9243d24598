package actors

import (
	"context"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/repository"
	"go.uber.org/zap"
)

type AuditStore interface {
	CreateAuditLog(ctx context.Context, log *repository.AuditLog) error
	GetAuditLogs(ctx context.Context, entityID string, limit int64) ([]*repository.AuditLog, error)
}

// AuditActor serializes audit writes and reads against the audit store.
type AuditActor struct {
	store   AuditStore
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func (a *AuditActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *RecordAudit:
		writeCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		entry := msg.Log
		err := a.store.CreateAuditLog(writeCtx, &entry)
		cancel()

		a.metrics.AuditResult(err)
		if err != nil {
			a.logger.Error("Failed to write audit log",
				zap.String("action", entry.Action),
				zap.String("entity_id", entry.EntityID),
				zap.Error(err))
		}

	case *GetAuditTrail:
		readCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		logs, err := a.store.GetAuditLogs(readCtx, msg.EntityID, msg.Limit)
		cancel()
		ctx.Respond(&AuditTrail{Logs: logs, Err: err})

	case *actor.Started:
		a.logger.Info("Audit actor started")

	case *actor.Stopped:
		a.logger.Info("Audit actor stopped")
	}
}
