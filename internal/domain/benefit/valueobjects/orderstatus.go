package valueobjects

// OrderStatus is the state of a single billable day. Frozen has no entry in
// the transition table; reversing a freeze is the single sanctioned exit and
// is handled by the aggregate, which also drops the extension day the freeze
// appended.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusFrozen    OrderStatus = "frozen"
	OrderStatusPaused    OrderStatus = "paused"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return ValidOrderStatuses[s]
}

// IsBillable reports whether the order still counts toward the remaining
// contracted value (refunds, proration, regeneration on edit).
func (s OrderStatus) IsBillable() bool {
	return s == OrderStatusActive || s == OrderStatusPaused
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFrozen || s == OrderStatusCancelled || s == OrderStatusCompleted
}

// CanTransitionTo reports whether the order lifecycle allows moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusActive:    {OrderStatusFrozen, OrderStatusPaused, OrderStatusCancelled, OrderStatusCompleted},
		OrderStatusPaused:    {OrderStatusActive, OrderStatusCancelled},
		OrderStatusFrozen:    {},
		OrderStatusCancelled: {},
		OrderStatusCompleted: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidOrderStatuses = map[OrderStatus]bool{
	OrderStatusActive:    true,
	OrderStatusFrozen:    true,
	OrderStatusPaused:    true,
	OrderStatusCancelled: true,
	OrderStatusCompleted: true,
}
