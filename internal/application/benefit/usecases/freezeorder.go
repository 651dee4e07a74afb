package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type FreezeOrderCommand struct {
	OID    string
	Reason string
}

type FreezeOrderResult struct {
	Benefit    *benefit.Benefit
	NewEndDate biztime.Date
	// RemainingFreezes is the quota left after this freeze, for UI copy.
	RemainingFreezes int
}

type FreezeOrderUseCase struct {
	benefitRepo  benefit.Repository
	orderRepo    benefit.OrderRepository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewFreezeOrderUseCase(
	benefitRepo benefit.Repository,
	orderRepo benefit.OrderRepository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *FreezeOrderUseCase {
	return &FreezeOrderUseCase{
		benefitRepo:  benefitRepo,
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *FreezeOrderUseCase) Execute(ctx context.Context, cmd FreezeOrderCommand) (*FreezeOrderResult, error) {
	uc.logger.Infow("executing freeze order use case", "oid", cmd.OID)

	order, err := uc.resolveOrder(ctx, cmd.OID)
	if err != nil {
		return nil, err
	}

	b, err := uc.benefitRepo.GetByOrderID(ctx, order.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load benefit", err.Error())
	}
	if b == nil {
		return nil, errors.NewNotFoundError("order has no backing benefit")
	}

	emp, err := uc.employeeRepo.GetByID(ctx, b.EmployeeID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load employee", err.Error())
	}
	if emp == nil {
		return nil, errors.NewNotFoundError("employee not found")
	}

	cfg, err := uc.configs.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load business config", err.Error())
	}

	now := uc.now()
	weekStart, weekEnd := biztime.ISOWeekBoundsUTC(now)
	used, err := uc.benefitRepo.CountFrozenInWeek(ctx, b.EmployeeID(), weekStart, weekEnd)
	if err != nil {
		return nil, errors.NewInternalError("failed to count freezes this week", err.Error())
	}

	frozen, err := b.FreezeOrder(order.ID(), cmd.Reason, now, cfg, emp.ShiftType, used)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Reason == benefit.ReasonFreezeQuotaExceeded {
			return nil, appErr.WithContext("used_this_week", used)
		}
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist freeze", "oid", cmd.OID, "error", err)
		return nil, errors.NewInternalError("failed to freeze order", err.Error())
	}

	publish(uc.publisher, uc.logger, benefit.NewOrderFrozenEvent(b, frozen))

	remaining := cfg.MaxFreezesPerWeek - used - 1
	if remaining < 0 {
		remaining = 0
	}
	uc.logger.Infow("order frozen", "oid", cmd.OID, "new_end_date", b.EndDate().String(), "remaining_freezes", remaining)
	return &FreezeOrderResult{Benefit: b, NewEndDate: b.EndDate(), RemainingFreezes: remaining}, nil
}

func (uc *FreezeOrderUseCase) resolveOrder(ctx context.Context, oid string) (*benefit.Order, error) {
	if oid == "" {
		return nil, errors.NewValidationError("order ID is required")
	}
	order, err := uc.orderRepo.GetByOID(ctx, oid)
	if err != nil {
		return nil, errors.NewInternalError("failed to load order", err.Error())
	}
	if order == nil {
		return nil, errors.NewNotFoundError("order not found")
	}
	return order, nil
}
