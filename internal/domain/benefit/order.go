package benefit

import (
	"fmt"
	"time"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// Order is one billable day owned by a benefit. Guest orders are the one
// exception: they have no benefit and exist as standalone rows.
type Order struct {
	id           uint
	oid          string
	benefitID    *uint
	employeeID   uint
	guestName    string
	kind         vo.BenefitKind
	date         biztime.Date
	status       vo.OrderStatus
	price        vo.Money
	comboType    vo.ComboType
	frozenAt     *time.Time
	freezeReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrder creates a billable day for a benefit being materialized.
func NewOrder(employeeID uint, kind vo.BenefitKind, date biztime.Date, price vo.Money, comboType vo.ComboType, now time.Time) (*Order, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid benefit kind: %s", kind)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("order date is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("order price must be positive")
	}
	if kind.IsLunch() && !comboType.IsValid() {
		return nil, fmt.Errorf("invalid combo type: %s", comboType)
	}

	return &Order{
		employeeID: employeeID,
		kind:       kind,
		date:       date,
		status:     vo.OrderStatusActive,
		price:      price,
		comboType:  comboType,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewGuestOrder creates a standalone lunch order with no backing benefit.
func NewGuestOrder(guestName string, date biztime.Date, price vo.Money, comboType vo.ComboType, now time.Time) (*Order, error) {
	if guestName == "" {
		return nil, fmt.Errorf("guest name is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("order date is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("order price must be positive")
	}
	if !comboType.IsValid() {
		return nil, fmt.Errorf("invalid combo type: %s", comboType)
	}

	return &Order{
		guestName: guestName,
		kind:      vo.KindLunch,
		date:      date,
		status:    vo.OrderStatusActive,
		price:     price,
		comboType: comboType,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOrder rebuilds an order from persistence.
func ReconstructOrder(
	id uint,
	oid string,
	benefitID *uint,
	employeeID uint,
	guestName string,
	kind vo.BenefitKind,
	date biztime.Date,
	status vo.OrderStatus,
	price vo.Money,
	comboType vo.ComboType,
	frozenAt *time.Time,
	freezeReason *string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !vo.ValidOrderStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid benefit kind: %s", kind)
	}

	return &Order{
		id:           id,
		oid:          oid,
		benefitID:    benefitID,
		employeeID:   employeeID,
		guestName:    guestName,
		kind:         kind,
		date:         date,
		status:       status,
		price:        price,
		comboType:    comboType,
		frozenAt:     frozenAt,
		freezeReason: freezeReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (o *Order) ID() uint                { return o.id }
func (o *Order) OID() string             { return o.oid }
func (o *Order) BenefitID() *uint        { return o.benefitID }
func (o *Order) EmployeeID() uint        { return o.employeeID }
func (o *Order) GuestName() string       { return o.guestName }
func (o *Order) Kind() vo.BenefitKind    { return o.kind }
func (o *Order) Date() biztime.Date      { return o.date }
func (o *Order) Status() vo.OrderStatus  { return o.status }
func (o *Order) Price() vo.Money         { return o.price }
func (o *Order) ComboType() vo.ComboType { return o.comboType }
func (o *Order) FrozenAt() *time.Time    { return o.frozenAt }
func (o *Order) FreezeReason() *string   { return o.freezeReason }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }

// IsGuest reports whether the order has no backing benefit.
func (o *Order) IsGuest() bool {
	return o.benefitID == nil && o.guestName != ""
}

// SetID assigns the database-generated ID after creation.
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// SetOID assigns the prefixed short ID after creation.
func (o *Order) SetOID(oid string) error {
	if o.oid != "" {
		return fmt.Errorf("order OID already set")
	}
	if oid == "" {
		return fmt.Errorf("order OID cannot be empty")
	}
	o.oid = oid
	return nil
}

// attachBenefit links the order to its owning benefit.
func (o *Order) attachBenefit(benefitID uint) {
	o.benefitID = &benefitID
}

func (o *Order) transitionTo(target vo.OrderStatus, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("order cannot transition from %s to %s", o.status, target)
	}
	o.status = target
	o.updatedAt = now
	return nil
}

func (o *Order) freeze(reason string, now time.Time) error {
	if err := o.transitionTo(vo.OrderStatusFrozen, now); err != nil {
		return err
	}
	o.frozenAt = &now
	o.freezeReason = &reason
	return nil
}

// unfreeze reactivates a frozen day. This is the single sanctioned exit
// from the frozen state and only makes sense while the day has not been
// consumed; the aggregate enforces that.
func (o *Order) unfreeze(now time.Time) error {
	if o.status != vo.OrderStatusFrozen {
		return fmt.Errorf("order is not frozen")
	}
	o.status = vo.OrderStatusActive
	o.frozenAt = nil
	o.freezeReason = nil
	o.updatedAt = now
	return nil
}

func (o *Order) pause(now time.Time) error {
	return o.transitionTo(vo.OrderStatusPaused, now)
}

func (o *Order) resumeOn(date biztime.Date, now time.Time) error {
	if err := o.transitionTo(vo.OrderStatusActive, now); err != nil {
		return err
	}
	o.date = date
	return nil
}

func (o *Order) cancel(now time.Time) error {
	return o.transitionTo(vo.OrderStatusCancelled, now)
}

func (o *Order) complete(now time.Time) error {
	return o.transitionTo(vo.OrderStatusCompleted, now)
}

// reprice adjusts the price and combo of a future order during an edit.
func (o *Order) reprice(price vo.Money, comboType vo.ComboType, now time.Time) error {
	if !o.status.IsBillable() {
		return fmt.Errorf("cannot reprice order with status %s", o.status)
	}
	if !price.IsPositive() {
		return fmt.Errorf("order price must be positive")
	}
	o.price = price
	o.comboType = comboType
	o.updatedAt = now
	return nil
}
