package benefit

import (
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
)

// Event types emitted by the engine. Collaborators (budget ledger,
// notifications) subscribe; the engine itself only computes amounts and
// never applies their side effects.
const (
	EventBenefitCreated   = "benefit.created"
	EventBenefitCancelled = "benefit.cancelled"
	EventBenefitPaused    = "benefit.paused"
	EventBenefitResumed   = "benefit.resumed"
	EventBenefitUpdated   = "benefit.updated"
	EventBenefitCompleted = "benefit.completed"
	EventBenefitRenewed   = "benefit.renewed"
	EventOrderFrozen      = "order.frozen"
	EventOrderUnfrozen    = "order.unfrozen"
)

// BenefitCreatedEvent is emitted after a benefit and its initial order set
// are persisted.
type BenefitCreatedEvent struct {
	events.BaseEvent
	BenefitID       uint   `json:"benefit_id"`
	EmployeeID      uint   `json:"employee_id"`
	Kind            string `json:"kind"`
	TotalPriceCents int64  `json:"total_price_cents"`
	OrderCount      int    `json:"order_count"`
}

func NewBenefitCreatedEvent(b *Benefit) *BenefitCreatedEvent {
	return &BenefitCreatedEvent{
		BaseEvent:       baseEvent(b, EventBenefitCreated),
		BenefitID:       b.ID(),
		EmployeeID:      b.EmployeeID(),
		Kind:            b.Kind().String(),
		TotalPriceCents: b.TotalPrice().AmountInCents(),
		OrderCount:      len(b.Orders()),
	}
}

// BenefitCancelledEvent carries the refund amount the ledger collaborator
// must apply.
type BenefitCancelledEvent struct {
	events.BaseEvent
	BenefitID   uint   `json:"benefit_id"`
	EmployeeID  uint   `json:"employee_id"`
	RefundCents int64  `json:"refund_cents"`
	Currency    string `json:"currency"`
}

func NewBenefitCancelledEvent(b *Benefit, refundCents int64, currency string) *BenefitCancelledEvent {
	return &BenefitCancelledEvent{
		BaseEvent:   baseEvent(b, EventBenefitCancelled),
		BenefitID:   b.ID(),
		EmployeeID:  b.EmployeeID(),
		RefundCents: refundCents,
		Currency:    currency,
	}
}

type BenefitPausedEvent struct {
	events.BaseEvent
	BenefitID  uint `json:"benefit_id"`
	EmployeeID uint `json:"employee_id"`
}

func NewBenefitPausedEvent(b *Benefit) *BenefitPausedEvent {
	return &BenefitPausedEvent{
		BaseEvent:  baseEvent(b, EventBenefitPaused),
		BenefitID:  b.ID(),
		EmployeeID: b.EmployeeID(),
	}
}

type BenefitResumedEvent struct {
	events.BaseEvent
	BenefitID  uint   `json:"benefit_id"`
	EmployeeID uint   `json:"employee_id"`
	NewEndDate string `json:"new_end_date"`
}

func NewBenefitResumedEvent(b *Benefit) *BenefitResumedEvent {
	return &BenefitResumedEvent{
		BaseEvent:  baseEvent(b, EventBenefitResumed),
		BenefitID:  b.ID(),
		EmployeeID: b.EmployeeID(),
		NewEndDate: b.EndDate().String(),
	}
}

// BenefitUpdatedEvent carries the signed price delta of a schedule edit.
type BenefitUpdatedEvent struct {
	events.BaseEvent
	BenefitID       uint  `json:"benefit_id"`
	EmployeeID      uint  `json:"employee_id"`
	PriceDeltaCents int64 `json:"price_delta_cents"`
}

func NewBenefitUpdatedEvent(b *Benefit, priceDeltaCents int64) *BenefitUpdatedEvent {
	return &BenefitUpdatedEvent{
		BaseEvent:       baseEvent(b, EventBenefitUpdated),
		BenefitID:       b.ID(),
		EmployeeID:      b.EmployeeID(),
		PriceDeltaCents: priceDeltaCents,
	}
}

type BenefitCompletedEvent struct {
	events.BaseEvent
	BenefitID  uint `json:"benefit_id"`
	EmployeeID uint `json:"employee_id"`
}

func NewBenefitCompletedEvent(b *Benefit) *BenefitCompletedEvent {
	return &BenefitCompletedEvent{
		BaseEvent:  baseEvent(b, EventBenefitCompleted),
		BenefitID:  b.ID(),
		EmployeeID: b.EmployeeID(),
	}
}

// BenefitRenewedEvent links an auto-renewed follow-on period to the
// completed one it extends.
type BenefitRenewedEvent struct {
	events.BaseEvent
	BenefitID         uint `json:"benefit_id"`
	PreviousBenefitID uint `json:"previous_benefit_id"`
	EmployeeID        uint `json:"employee_id"`
}

func NewBenefitRenewedEvent(renewed *Benefit, previousID uint) *BenefitRenewedEvent {
	return &BenefitRenewedEvent{
		BaseEvent:         baseEvent(renewed, EventBenefitRenewed),
		BenefitID:         renewed.ID(),
		PreviousBenefitID: previousID,
		EmployeeID:        renewed.EmployeeID(),
	}
}

type OrderFrozenEvent struct {
	events.BaseEvent
	BenefitID  uint   `json:"benefit_id"`
	OrderID    uint   `json:"order_id"`
	Date       string `json:"date"`
	NewEndDate string `json:"new_end_date"`
}

func NewOrderFrozenEvent(b *Benefit, o *Order) *OrderFrozenEvent {
	return &OrderFrozenEvent{
		BaseEvent:  baseEvent(b, EventOrderFrozen),
		BenefitID:  b.ID(),
		OrderID:    o.ID(),
		Date:       o.Date().String(),
		NewEndDate: b.EndDate().String(),
	}
}

type OrderUnfrozenEvent struct {
	events.BaseEvent
	BenefitID  uint   `json:"benefit_id"`
	OrderID    uint   `json:"order_id"`
	Date       string `json:"date"`
	NewEndDate string `json:"new_end_date"`
}

func NewOrderUnfrozenEvent(b *Benefit, o *Order) *OrderUnfrozenEvent {
	return &OrderUnfrozenEvent{
		BaseEvent:  baseEvent(b, EventOrderUnfrozen),
		BenefitID:  b.ID(),
		OrderID:    o.ID(),
		Date:       o.Date().String(),
		NewEndDate: b.EndDate().String(),
	}
}

func baseEvent(b *Benefit, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: b.BID(),
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
		Version:     1,
	}
}
