package actors

import (
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
)

// SendOrderConfirmation asks the notification actor to deliver a
// confirmation for a freshly created order. No reply is sent.
type SendOrderConfirmation struct {
	Order models.Order
}

// RecordAudit asks the audit actor to persist an entry. No reply is sent.
type RecordAudit struct {
	Log repository.AuditLog
}

// GetAuditTrail is answered with *AuditTrail. It is queued behind every
// RecordAudit sent before it.
type GetAuditTrail struct {
	EntityID string
	Limit    int64
}

type AuditTrail struct {
	Logs []*repository.AuditLog
	Err  error
}
