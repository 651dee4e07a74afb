package services

import (
	"strings"

	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// BenefitAuditLogger records every benefit engine event in the structured
// log. The engine only computes amounts; ledger and notification
// collaborators consume the same events, so the audit trail doubles as a
// record of what they were told.
type BenefitAuditLogger struct {
	logger logger.Interface
}

// NewBenefitAuditLogger creates a new audit logging event handler
func NewBenefitAuditLogger(log logger.Interface) *BenefitAuditLogger {
	return &BenefitAuditLogger{
		logger: log.Named("audit"),
	}
}

func (l *BenefitAuditLogger) Handle(event events.DomainEvent) error {
	l.logger.Infow("domain event",
		"event_type", event.GetEventType(),
		"aggregate_id", event.GetAggregateID(),
		"occurred_at", event.GetOccurredAt(),
	)
	return nil
}

func (l *BenefitAuditLogger) CanHandle(eventType string) bool {
	return strings.HasPrefix(eventType, "benefit.") || strings.HasPrefix(eventType, "order.")
}
