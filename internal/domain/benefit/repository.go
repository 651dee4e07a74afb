package benefit

import (
	"context"
	"time"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/query"
)

// Filter narrows benefit list queries.
type Filter struct {
	EmployeeID *uint
	CompanyID  *uint
	Kind       *vo.BenefitKind
	Status     *vo.BenefitStatus
	query.PageFilter
	query.SortFilter
}

// OrderFilter narrows order list queries.
type OrderFilter struct {
	BenefitID  *uint
	EmployeeID *uint
	Status     *vo.OrderStatus
	DateFrom   *biztime.Date
	DateTo     *biztime.Date
	GuestOnly  bool
	query.PageFilter
	query.SortFilter
}

// Repository persists benefit aggregates with their order sets. Create and
// Update are transactional over the whole aggregate: a partially written
// order set must never be observable, and the at-most-one-active constraint
// per (employee, kind) is enforced by a uniqueness guard at this layer.
type Repository interface {
	// Create persists the benefit and its full initial order set in one
	// transaction. Returns a conflict error when the employee already
	// holds an active benefit of the kind.
	Create(ctx context.Context, b *Benefit) error
	// Update persists aggregate state, order mutations and the removed
	// order deletions in one transaction, guarded by the version field.
	Update(ctx context.Context, b *Benefit) error
	GetByID(ctx context.Context, id uint) (*Benefit, error)
	GetByBID(ctx context.Context, bid string) (*Benefit, error)
	// GetByOrderID loads the aggregate owning the given order.
	GetByOrderID(ctx context.Context, orderID uint) (*Benefit, error)
	GetActiveByEmployee(ctx context.Context, employeeID uint, kind vo.BenefitKind) (*Benefit, error)
	List(ctx context.Context, filter Filter) ([]*Benefit, int64, error)
	// ListEnded returns current benefits whose end date is before the
	// given day, for the completion sweep.
	ListEnded(ctx context.Context, before biztime.Date) ([]*Benefit, error)
	// CountFrozenInWeek counts orders of the employee frozen within
	// [from, to), for the weekly freeze quota.
	CountFrozenInWeek(ctx context.Context, employeeID uint, from, to time.Time) (int, error)
}

// OrderRepository reads and writes order rows outside aggregate flows:
// listings and guest orders.
type OrderRepository interface {
	CreateGuest(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByOID(ctx context.Context, oid string) (*Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)
}
