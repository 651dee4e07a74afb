package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type mockBenefitRepository struct {
	CreateFunc              func(ctx context.Context, b *benefit.Benefit) error
	UpdateFunc              func(ctx context.Context, b *benefit.Benefit) error
	GetByIDFunc             func(ctx context.Context, id uint) (*benefit.Benefit, error)
	GetByBIDFunc            func(ctx context.Context, bid string) (*benefit.Benefit, error)
	GetByOrderIDFunc        func(ctx context.Context, orderID uint) (*benefit.Benefit, error)
	GetActiveByEmployeeFunc func(ctx context.Context, employeeID uint, kind vo.BenefitKind) (*benefit.Benefit, error)
	ListFunc                func(ctx context.Context, filter benefit.Filter) ([]*benefit.Benefit, int64, error)
	ListEndedFunc           func(ctx context.Context, before biztime.Date) ([]*benefit.Benefit, error)
	CountFrozenInWeekFunc   func(ctx context.Context, employeeID uint, from, to time.Time) (int, error)
}

func (m *mockBenefitRepository) Create(ctx context.Context, b *benefit.Benefit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBenefitRepository) Update(ctx context.Context, b *benefit.Benefit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBenefitRepository) GetByID(ctx context.Context, id uint) (*benefit.Benefit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBenefitRepository) GetByBID(ctx context.Context, bid string) (*benefit.Benefit, error) {
	if m.GetByBIDFunc != nil {
		return m.GetByBIDFunc(ctx, bid)
	}
	return nil, nil
}

func (m *mockBenefitRepository) GetByOrderID(ctx context.Context, orderID uint) (*benefit.Benefit, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockBenefitRepository) GetActiveByEmployee(ctx context.Context, employeeID uint, kind vo.BenefitKind) (*benefit.Benefit, error) {
	if m.GetActiveByEmployeeFunc != nil {
		return m.GetActiveByEmployeeFunc(ctx, employeeID, kind)
	}
	return nil, nil
}

func (m *mockBenefitRepository) List(ctx context.Context, filter benefit.Filter) ([]*benefit.Benefit, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBenefitRepository) ListEnded(ctx context.Context, before biztime.Date) ([]*benefit.Benefit, error) {
	if m.ListEndedFunc != nil {
		return m.ListEndedFunc(ctx, before)
	}
	return nil, nil
}

func (m *mockBenefitRepository) CountFrozenInWeek(ctx context.Context, employeeID uint, from, to time.Time) (int, error) {
	if m.CountFrozenInWeekFunc != nil {
		return m.CountFrozenInWeekFunc(ctx, employeeID, from, to)
	}
	return 0, nil
}

type mockOrderRepository struct {
	CreateGuestFunc func(ctx context.Context, o *benefit.Order) error
	GetByIDFunc     func(ctx context.Context, id uint) (*benefit.Order, error)
	GetByOIDFunc    func(ctx context.Context, oid string) (*benefit.Order, error)
	ListFunc        func(ctx context.Context, filter benefit.OrderFilter) ([]*benefit.Order, int64, error)
}

func (m *mockOrderRepository) CreateGuest(ctx context.Context, o *benefit.Order) error {
	if m.CreateGuestFunc != nil {
		return m.CreateGuestFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*benefit.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepository) GetByOID(ctx context.Context, oid string) (*benefit.Order, error) {
	if m.GetByOIDFunc != nil {
		return m.GetByOIDFunc(ctx, oid)
	}
	return nil, nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter benefit.OrderFilter) ([]*benefit.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockEmployeeRepository struct {
	GetByIDFunc       func(ctx context.Context, id uint) (*employee.Employee, error)
	GetByIDsFunc      func(ctx context.Context, ids []uint) ([]*employee.Employee, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]*employee.Employee, error)
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByIDs(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) ListByCompany(ctx context.Context, companyID uint) ([]*employee.Employee, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

type mockConfigProvider struct {
	GetFunc func(ctx context.Context) (benefit.BusinessConfig, error)
}

func (m *mockConfigProvider) Get(ctx context.Context) (benefit.BusinessConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return benefit.BusinessConfig{}, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *capturingPublisher) Publish(event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) PublishAll(evts []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.GetEventType()
	}
	return out
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
