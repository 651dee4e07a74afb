// Package benefit implements the scheduling and settlement engine for the
// meal-benefit program: eligibility rules, pricing, and the benefit
// aggregate with its per-day orders. All operations take explicit now and
// BusinessConfig values; nothing reads ambient state, so every caller path
// enforces the same rules and tests inject arbitrary conditions.
package benefit

import (
	"fmt"
	"time"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

// Benefit is the aggregate root: one employee's lunch subscription or
// compensation budget over a date range, owning the order rows it
// materialized. The working-day calendar is snapshotted at creation so
// later employee profile edits do not silently re-shape an existing period.
type Benefit struct {
	id           uint
	bid          string
	employeeID   uint
	kind         vo.BenefitKind
	status       vo.BenefitStatus
	startDate    biztime.Date
	endDate      biztime.Date
	recurrence   schedule.Recurrence
	workingDays  schedule.WeekdaySet
	comboType    vo.ComboType
	dailyRate    vo.Money
	totalPrice   vo.Money
	carryOver    bool
	autoRenew    bool
	cancelledAt  *time.Time
	cancelReason *string
	orders       []*Order
	// removedOrderIDs collects persisted orders the next Update must delete
	// (dropped freeze extensions, regenerated future days).
	removedOrderIDs []uint
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBenefit validates the request shape and returns a draft benefit with
// no orders. Materialize expands the schedule and activates it; the two
// steps are separate so validation failures never touch order state.
func NewBenefit(
	employeeID uint,
	kind vo.BenefitKind,
	startDate, endDate biztime.Date,
	recurrence schedule.Recurrence,
	workingDays schedule.WeekdaySet,
	comboType vo.ComboType,
	dailyRate vo.Money,
	carryOver, autoRenew bool,
	now time.Time,
) (*Benefit, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid benefit kind: %s", kind)
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}
	if startDate.Before(biztime.DateOf(now)) {
		return nil, fmt.Errorf("start date must not be in the past")
	}
	if workingDays.IsEmpty() {
		return nil, fmt.Errorf("working-day calendar cannot be empty")
	}
	if !dailyRate.IsPositive() {
		return nil, fmt.Errorf("daily rate must be positive")
	}
	if kind.IsLunch() {
		if recurrence.IsZero() {
			return nil, fmt.Errorf("recurrence is required for lunch benefits")
		}
		if !comboType.IsValid() {
			return nil, fmt.Errorf("invalid combo type: %s", comboType)
		}
	} else {
		// Compensation is always daily over working days.
		recurrence = schedule.NewEveryDayRecurrence()
		comboType = ""
	}

	return &Benefit{
		employeeID:  employeeID,
		kind:        kind,
		status:      vo.BenefitStatusDraft,
		startDate:   startDate,
		endDate:     endDate,
		recurrence:  recurrence,
		workingDays: workingDays,
		comboType:   comboType,
		dailyRate:   dailyRate,
		totalPrice:  vo.Zero(dailyRate.Currency()),
		carryOver:   carryOver,
		autoRenew:   autoRenew,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructBenefit rebuilds the aggregate from persistence.
func ReconstructBenefit(
	id uint,
	bid string,
	employeeID uint,
	kind vo.BenefitKind,
	status vo.BenefitStatus,
	startDate, endDate biztime.Date,
	recurrence schedule.Recurrence,
	workingDays schedule.WeekdaySet,
	comboType vo.ComboType,
	dailyRate, totalPrice vo.Money,
	carryOver, autoRenew bool,
	cancelledAt *time.Time,
	cancelReason *string,
	orders []*Order,
	version int,
	createdAt, updatedAt time.Time,
) (*Benefit, error) {
	if id == 0 {
		return nil, fmt.Errorf("benefit ID cannot be zero")
	}
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !vo.ValidBenefitStatuses[status] {
		return nil, fmt.Errorf("invalid benefit status: %s", status)
	}
	if !vo.ValidKinds[kind] {
		return nil, fmt.Errorf("invalid benefit kind: %s", kind)
	}

	return &Benefit{
		id:           id,
		bid:          bid,
		employeeID:   employeeID,
		kind:         kind,
		status:       status,
		startDate:    startDate,
		endDate:      endDate,
		recurrence:   recurrence,
		workingDays:  workingDays,
		comboType:    comboType,
		dailyRate:    dailyRate,
		totalPrice:   totalPrice,
		carryOver:    carryOver,
		autoRenew:    autoRenew,
		cancelledAt:  cancelledAt,
		cancelReason: cancelReason,
		orders:       orders,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (b *Benefit) ID() uint                        { return b.id }
func (b *Benefit) BID() string                     { return b.bid }
func (b *Benefit) EmployeeID() uint                { return b.employeeID }
func (b *Benefit) Kind() vo.BenefitKind            { return b.kind }
func (b *Benefit) Status() vo.BenefitStatus        { return b.status }
func (b *Benefit) StartDate() biztime.Date         { return b.startDate }
func (b *Benefit) EndDate() biztime.Date           { return b.endDate }
func (b *Benefit) Recurrence() schedule.Recurrence { return b.recurrence }
func (b *Benefit) WorkingDays() schedule.WeekdaySet {
	return b.workingDays
}
func (b *Benefit) ComboType() vo.ComboType { return b.comboType }
func (b *Benefit) DailyRate() vo.Money     { return b.dailyRate }
func (b *Benefit) TotalPrice() vo.Money    { return b.totalPrice }
func (b *Benefit) CarryOver() bool         { return b.carryOver }
func (b *Benefit) AutoRenew() bool         { return b.autoRenew }
func (b *Benefit) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Benefit) CancelReason() *string   { return b.cancelReason }
func (b *Benefit) Version() int            { return b.version }
func (b *Benefit) CreatedAt() time.Time    { return b.createdAt }
func (b *Benefit) UpdatedAt() time.Time    { return b.updatedAt }

// Orders returns the owned order set. Callers must not mutate entries.
func (b *Benefit) Orders() []*Order {
	return b.orders
}

// RemovedOrderIDs returns persisted order IDs the next Update must delete.
func (b *Benefit) RemovedOrderIDs() []uint {
	return b.removedOrderIDs
}

// ClearRemovedOrderIDs resets the deletion list after the repository has
// applied it.
func (b *Benefit) ClearRemovedOrderIDs() {
	b.removedOrderIDs = nil
}

// SetID assigns the database-generated ID and links the owned orders.
func (b *Benefit) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("benefit ID already set")
	}
	if id == 0 {
		return fmt.Errorf("benefit ID cannot be zero")
	}
	b.id = id
	for _, o := range b.orders {
		o.attachBenefit(id)
	}
	return nil
}

// SetBID assigns the prefixed short ID after creation.
func (b *Benefit) SetBID(bid string) error {
	if b.bid != "" {
		return fmt.Errorf("benefit BID already set")
	}
	if bid == "" {
		return fmt.Errorf("benefit BID cannot be empty")
	}
	b.bid = bid
	return nil
}

// Materialize expands the schedule into the full initial order set, sets
// the total price and activates the benefit. For compensation an explicit
// total budget may override the auto-computed days x limit amount. The
// minimum-day threshold is enforced here as the last line of defense; use
// cases reject short requests during validation, before any aggregate is
// built.
func (b *Benefit) Materialize(cfg BusinessConfig, explicitTotal *vo.Money, now time.Time) error {
	if b.status != vo.BenefitStatusDraft {
		return fmt.Errorf("benefit already materialized")
	}

	dates := schedule.Expand(b.recurrence, b.workingDays, b.startDate, b.endDate)
	if len(dates) < cfg.MinSubscriptionDays {
		return errors.NewValidationError(
			fmt.Sprintf("period yields %d billable days, minimum is %d", len(dates), cfg.MinSubscriptionDays),
		).WithContext("qualifying_days", len(dates)).WithContext("min_days", cfg.MinSubscriptionDays)
	}

	orders := make([]*Order, 0, len(dates))
	for _, date := range dates {
		o, err := NewOrder(b.employeeID, b.kind, date, b.dailyRate, b.comboType, now)
		if err != nil {
			return fmt.Errorf("failed to build order for %s: %w", date, err)
		}
		if b.id != 0 {
			o.attachBenefit(b.id)
		}
		orders = append(orders, o)
	}

	total := b.dailyRate.Multiply(len(dates))
	if b.kind.IsCompensation() && explicitTotal != nil {
		if !explicitTotal.IsPositive() {
			return errors.NewValidationError("total budget must be positive")
		}
		total = *explicitTotal
	}

	b.orders = orders
	b.totalPrice = total
	b.status = vo.BenefitStatusActive
	b.updatedAt = now
	b.version++
	return nil
}

// orderByID finds an owned order.
func (b *Benefit) orderByID(orderID uint) *Order {
	for _, o := range b.orders {
		if o.ID() == orderID {
			return o
		}
	}
	return nil
}

// orderOn finds the owned order for a date, if any.
func (b *Benefit) orderOn(date biztime.Date) *Order {
	for _, o := range b.orders {
		if o.Date().Equal(date) {
			return o
		}
	}
	return nil
}

// FreezeOrder skips billing for one day without losing a contracted day:
// the order becomes frozen and the period gains the next qualifying day
// after the current end date, at the frozen order's own price. Same-day
// freezes past the cutoff and freezes beyond the weekly quota are rejected
// with no state change.
func (b *Benefit) FreezeOrder(orderID uint, reason string, now time.Time, cfg BusinessConfig, shift employee.ShiftType, usedFreezesThisWeek int) (*Order, error) {
	if !b.status.IsCurrent() {
		return nil, errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("cannot freeze an order of a %s benefit", b.status))
	}

	order := b.orderByID(orderID)
	if order == nil {
		return nil, errors.NewNotFoundError("order not found in benefit")
	}
	if order.Status() != vo.OrderStatusActive {
		return nil, errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("order is %s, only active orders can be frozen", order.Status()))
	}

	if isConsumed(order.Date(), now, cfg, shift) {
		cutoff := biztime.CutoffUTC(order.Date(), cfg.CutoffOffsetFor(shift))
		return nil, errors.NewStateConflictError(ReasonCutoffPassed, "the cutoff for this delivery day has passed").
			WithContext("cutoff", cutoff.Format(time.RFC3339)).
			WithContext("date", order.Date().String())
	}

	if usedFreezesThisWeek >= cfg.MaxFreezesPerWeek {
		return nil, errors.NewStateConflictError(ReasonFreezeQuotaExceeded, "weekly freeze quota exhausted").
			WithContext("max_per_week", cfg.MaxFreezesPerWeek).
			WithContext("remaining", 0)
	}

	extensionDate := schedule.NextQualifyingDay(b.recurrence, b.workingDays, b.endDate)
	if extensionDate.IsZero() {
		return nil, fmt.Errorf("no qualifying day available to extend the period")
	}

	extension, err := NewOrder(b.employeeID, b.kind, extensionDate, order.Price(), order.ComboType(), now)
	if err != nil {
		return nil, fmt.Errorf("failed to build extension order: %w", err)
	}
	if b.id != 0 {
		extension.attachBenefit(b.id)
	}

	if err := order.freeze(reason, now); err != nil {
		return nil, err
	}

	b.orders = append(b.orders, extension)
	b.endDate = extensionDate
	b.updatedAt = now
	b.version++
	return extension, nil
}

// UnfreezeOrder reverses a freeze before the frozen day is consumed: the
// day becomes billable again, the appended extension order is dropped and
// the end date shortens back.
func (b *Benefit) UnfreezeOrder(orderID uint, now time.Time) error {
	if !b.status.IsCurrent() {
		return errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("cannot unfreeze an order of a %s benefit", b.status))
	}

	order := b.orderByID(orderID)
	if order == nil {
		return errors.NewNotFoundError("order not found in benefit")
	}
	if order.Status() != vo.OrderStatusFrozen {
		return errors.NewStateConflictError(ReasonNotFrozen, "order is not frozen")
	}
	if order.Date().Before(biztime.DateOf(now)) {
		return errors.NewStateConflictError(ReasonDayConsumed, "the frozen day has already passed")
	}

	extension := b.orderOn(b.endDate)
	if extension == nil || extension.Status() != vo.OrderStatusActive {
		return errors.NewStateConflictError(ReasonNotFrozen, "no extension day available to drop")
	}

	if err := order.unfreeze(now); err != nil {
		return err
	}

	b.dropOrder(extension)
	b.endDate = b.lastOrderDate()
	b.updatedAt = now
	b.version++
	return nil
}

// Pause suspends the benefit: every not-yet-consumed active order becomes
// paused. The days are re-dated on resume so no contracted day is lost.
func (b *Benefit) Pause(now time.Time, cfg BusinessConfig, shift employee.ShiftType) error {
	if !b.status.CanTransitionTo(vo.BenefitStatusPaused) {
		return errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("cannot pause a %s benefit", b.status))
	}

	for _, o := range b.orders {
		if o.Status() != vo.OrderStatusActive {
			continue
		}
		if isConsumed(o.Date(), now, cfg, shift) {
			continue
		}
		if err := o.pause(now); err != nil {
			return err
		}
	}

	b.status = vo.BenefitStatusPaused
	b.updatedAt = now
	b.version++
	return nil
}

// Resume reactivates a paused benefit, re-dating the paused orders onto
// the next qualifying days after the resume date. The contracted day count
// and the individual order prices are preserved; the end date extends to
// the last re-dated day.
func (b *Benefit) Resume(now time.Time) error {
	if !b.status.CanTransitionTo(vo.BenefitStatusActive) {
		return errors.NewStateConflictError(ReasonNotPaused,
			fmt.Sprintf("cannot resume a %s benefit", b.status))
	}

	paused := make([]*Order, 0)
	for _, o := range b.orders {
		if o.Status() == vo.OrderStatusPaused {
			paused = append(paused, o)
		}
	}

	from := biztime.DateOf(now)
	if last := b.lastConsumedOrFrozenDate(); last.After(from) {
		from = last
	}
	dates := schedule.QualifyingDaysFrom(b.recurrence, b.workingDays, from, len(paused))
	if len(dates) < len(paused) {
		return fmt.Errorf("not enough qualifying days to re-date %d paused orders", len(paused))
	}

	for i, o := range paused {
		if err := o.resumeOn(dates[i], now); err != nil {
			return err
		}
	}

	b.status = vo.BenefitStatusActive
	if len(dates) > 0 {
		b.endDate = dates[len(dates)-1]
	}
	b.updatedAt = now
	b.version++
	return nil
}

// Cancel terminates the benefit. The refund is the sum of the persisted
// prices of the not-yet-consumed billable orders, which are cancelled with
// it. A second cancel is rejected explicitly, never a silent success.
func (b *Benefit) Cancel(reason string, now time.Time, cfg BusinessConfig, shift employee.ShiftType) (vo.Money, error) {
	if b.status == vo.BenefitStatusCancelled {
		return vo.Money{}, errors.NewStateConflictError(ReasonAlreadyCancelled, "benefit is already cancelled")
	}
	if b.status == vo.BenefitStatusCompleted {
		return vo.Money{}, errors.NewStateConflictError(ReasonAlreadyCompleted, "benefit is already completed")
	}
	if !b.status.CanTransitionTo(vo.BenefitStatusCancelled) {
		return vo.Money{}, errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("cannot cancel a %s benefit", b.status))
	}

	refund := RefundableTotal(b.orders, now, cfg, shift)

	for _, o := range b.orders {
		if !o.Status().IsBillable() {
			continue
		}
		if isConsumed(o.Date(), now, cfg, shift) {
			continue
		}
		if err := o.cancel(now); err != nil {
			return vo.Money{}, err
		}
	}

	b.status = vo.BenefitStatusCancelled
	b.cancelledAt = &now
	if reason != "" {
		b.cancelReason = &reason
	}
	b.updatedAt = now
	b.version++
	return refund, nil
}

// SchedulePatch carries the editable fields of an active benefit. Nil
// fields are left unchanged.
type SchedulePatch struct {
	Recurrence *schedule.Recurrence
	EndDate    *biztime.Date
	ComboType  *vo.ComboType
	DailyRate  *vo.Money
	AutoRenew  *bool
}

// UpdateSchedule applies an edit to the not-yet-consumed tail of the
// period. Consumed history and frozen days are immutable: a schedule change
// drops the future billable orders and regenerates them under the new
// recurrence and end date, while a rate or combo change reprices them in
// place. The signed difference from the old total is returned.
func (b *Benefit) UpdateSchedule(patch SchedulePatch, now time.Time, cfg BusinessConfig, shift employee.ShiftType) (int64, error) {
	if b.status != vo.BenefitStatusActive {
		return 0, errors.NewStateConflictError(ReasonNotActive,
			fmt.Sprintf("cannot edit a %s benefit", b.status))
	}

	if patch.Recurrence != nil {
		if b.kind.IsCompensation() {
			return 0, errors.NewValidationError("compensation benefits have no recurrence to edit")
		}
		b.recurrence = *patch.Recurrence
	}
	if patch.EndDate != nil {
		if patch.EndDate.Before(biztime.DateOf(now)) {
			return 0, errors.NewValidationError("new end date must not be in the past")
		}
		b.endDate = *patch.EndDate
	}
	if patch.ComboType != nil {
		if !b.kind.IsLunch() {
			return 0, errors.NewValidationError("combo type applies to lunch benefits only")
		}
		if !patch.ComboType.IsValid() {
			return 0, errors.NewValidationError(fmt.Sprintf("invalid combo type: %s", *patch.ComboType))
		}
		b.comboType = *patch.ComboType
	}
	if patch.DailyRate != nil {
		if !patch.DailyRate.IsPositive() {
			return 0, errors.NewValidationError("daily rate must be positive")
		}
		b.dailyRate = *patch.DailyRate
	}
	if patch.AutoRenew != nil {
		b.autoRenew = *patch.AutoRenew
	}

	oldTotal := b.totalPrice.AmountInCents()

	// Rate and combo edits keep the existing rows: future billable orders
	// are repriced in place, nothing is dropped or regenerated.
	if patch.Recurrence == nil && patch.EndDate == nil {
		for _, o := range b.orders {
			if !o.Status().IsBillable() || isConsumed(o.Date(), now, cfg, shift) {
				continue
			}
			if err := o.reprice(b.dailyRate, b.comboType, now); err != nil {
				return 0, err
			}
		}
		newTotal := contractedValue(b.orders)
		b.totalPrice = vo.NewMoney(newTotal, b.totalPrice.Currency())
		b.updatedAt = now
		b.version++
		return newTotal - oldTotal, nil
	}

	// Drop the regenerable tail: future billable orders. Everything else
	// (consumed, frozen, cancelled) stays untouched and keeps its dates.
	kept := make([]*Order, 0, len(b.orders))
	keptDates := make(map[string]struct{}, len(b.orders))
	for _, o := range b.orders {
		if o.Status().IsBillable() && !isConsumed(o.Date(), now, cfg, shift) {
			if o.ID() != 0 {
				b.removedOrderIDs = append(b.removedOrderIDs, o.ID())
			}
			continue
		}
		kept = append(kept, o)
		keptDates[o.Date().String()] = struct{}{}
	}

	// The tail begins today (or tomorrow once today's cutoff has passed),
	// never before the period start. Kept days are skipped by date, not by
	// starting after the latest of them: a frozen day in the future must
	// not swallow the billable days that precede it.
	tailStart := biztime.DateOf(now)
	if isConsumed(tailStart, now, cfg, shift) {
		tailStart = tailStart.AddDays(1)
	}
	if b.startDate.After(tailStart) {
		tailStart = b.startDate
	}
	tailDates := schedule.Expand(b.recurrence, b.workingDays, tailStart, b.endDate)
	regenerated := make([]*Order, 0, len(tailDates))
	for _, date := range tailDates {
		if _, taken := keptDates[date.String()]; taken {
			continue
		}
		o, err := NewOrder(b.employeeID, b.kind, date, b.dailyRate, b.comboType, now)
		if err != nil {
			return 0, fmt.Errorf("failed to regenerate order for %s: %w", date, err)
		}
		if b.id != 0 {
			o.attachBenefit(b.id)
		}
		regenerated = append(regenerated, o)
	}

	b.orders = append(kept, regenerated...)
	newTotal := contractedValue(b.orders)
	b.totalPrice = vo.NewMoney(newTotal, b.totalPrice.Currency())
	b.updatedAt = now
	b.version++
	return newTotal - oldTotal, nil
}

// contractedValue sums the prices of the orders that carry the period's
// value. Frozen orders are excluded: the extension day appended at freeze
// time carries their contracted day, so counting both would double it.
func contractedValue(orders []*Order) int64 {
	total := int64(0)
	for _, o := range orders {
		if o.Status() == vo.OrderStatusCancelled || o.Status() == vo.OrderStatusFrozen {
			continue
		}
		total += o.Price().AmountInCents()
	}
	return total
}

// CompleteIfPast marks the benefit completed once its end date has passed,
// completing the billable orders with it. Returns true when a transition
// happened.
func (b *Benefit) CompleteIfPast(today biztime.Date, now time.Time) (bool, error) {
	if !b.status.IsCurrent() {
		return false, nil
	}
	if !b.endDate.Before(today) {
		return false, nil
	}

	for _, o := range b.orders {
		if !o.Status().IsBillable() {
			continue
		}
		if o.Status() == vo.OrderStatusPaused {
			// A paused benefit that ran out its period: the unserved days
			// lapse when carry-over is off, otherwise they stay paused for
			// the ledger collaborator to settle.
			if b.carryOver {
				continue
			}
		}
		if err := o.complete(now); err != nil {
			return false, err
		}
	}

	if b.status == vo.BenefitStatusPaused {
		// paused -> completed is not in the transition table; go through
		// active, mirroring how the period would have ended unsuspended.
		b.status = vo.BenefitStatusActive
	}
	b.status = vo.BenefitStatusCompleted
	b.updatedAt = now
	b.version++
	return true, nil
}

// RemainingBillableCount counts not-yet-consumed billable orders.
func (b *Benefit) RemainingBillableCount(now time.Time, cfg BusinessConfig, shift employee.ShiftType) int {
	n := 0
	for _, o := range b.orders {
		if o.Status().IsBillable() && !isConsumed(o.Date(), now, cfg, shift) {
			n++
		}
	}
	return n
}

func (b *Benefit) dropOrder(target *Order) {
	kept := make([]*Order, 0, len(b.orders))
	for _, o := range b.orders {
		if o == target {
			if o.ID() != 0 {
				b.removedOrderIDs = append(b.removedOrderIDs, o.ID())
			}
			continue
		}
		kept = append(kept, o)
	}
	b.orders = kept
}

func (b *Benefit) lastOrderDate() biztime.Date {
	return lastDateOf(b.orders)
}

func (b *Benefit) lastConsumedOrFrozenDate() biztime.Date {
	var last biztime.Date
	for _, o := range b.orders {
		if o.Status().IsBillable() {
			continue
		}
		if o.Date().After(last) {
			last = o.Date()
		}
	}
	return last
}

func lastDateOf(orders []*Order) biztime.Date {
	var last biztime.Date
	for _, o := range orders {
		if o.Status() == vo.OrderStatusCancelled {
			continue
		}
		if o.Date().After(last) {
			last = o.Date()
		}
	}
	return last
}
