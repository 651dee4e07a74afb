package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type RenewBenefitsResult struct {
	Renewed int
	Skipped int
}

// RenewBenefitsUseCase creates follow-on periods for completed auto-renew
// benefits: same qualifying-day count, starting the next qualifying day
// after the old end date, priced at current rates. Custom-date recurrences
// never renew because their schedule has no days beyond the listed ones.
type RenewBenefitsUseCase struct {
	benefitRepo  benefit.Repository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewRenewBenefitsUseCase(
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RenewBenefitsUseCase {
	return &RenewBenefitsUseCase{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *RenewBenefitsUseCase) Execute(ctx context.Context, completed []*benefit.Benefit) (*RenewBenefitsResult, error) {
	if len(completed) == 0 {
		return &RenewBenefitsResult{}, nil
	}

	cfg, err := uc.configs.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load business config for renewal", "error", err)
		return nil, err
	}

	result := &RenewBenefitsResult{}
	now := uc.now()
	for _, old := range completed {
		if !old.AutoRenew() {
			continue
		}
		if err := uc.renewOne(ctx, old, cfg, now); err != nil {
			uc.logger.Warnw("benefit not renewed", "bid", old.BID(), "reason", err.Error())
			result.Skipped++
			continue
		}
		result.Renewed++
	}

	if result.Renewed > 0 || result.Skipped > 0 {
		uc.logger.Infow("renewal pass finished", "renewed", result.Renewed, "skipped", result.Skipped)
	}
	return result, nil
}

func (uc *RenewBenefitsUseCase) renewOne(ctx context.Context, old *benefit.Benefit, cfg benefit.BusinessConfig, now time.Time) error {
	emp, err := uc.employeeRepo.GetByID(ctx, old.EmployeeID())
	if err != nil {
		return err
	}
	if emp == nil {
		return fmt.Errorf("employee %d not found", old.EmployeeID())
	}

	if res := benefit.CheckEligibility(emp, old.Kind(), old.Recurrence(), cfg); !res.OK {
		return fmt.Errorf("employee no longer eligible: %s", res.Reason)
	}

	count := contractedDayCount(old)
	if count == 0 {
		return fmt.Errorf("no contracted days to carry forward")
	}

	workingDays := schedule.EffectiveWorkingDays(emp.WorkingDays, cfg.DefaultWorkingDays)
	dates := schedule.QualifyingDaysFrom(old.Recurrence(), workingDays, old.EndDate(), count)
	if len(dates) < count {
		return fmt.Errorf("no qualifying days after %s", old.EndDate())
	}

	rate, err := benefit.DailyRate(old.Kind(), old.ComboType(), old.DailyRate().AmountInCents(), cfg)
	if err != nil {
		return err
	}

	next, err := benefit.NewBenefit(
		old.EmployeeID(),
		old.Kind(),
		dates[0], dates[count-1],
		old.Recurrence(),
		workingDays,
		old.ComboType(),
		rate,
		old.CarryOver(), true,
		now,
	)
	if err != nil {
		return err
	}
	if err := next.Materialize(cfg, nil, now); err != nil {
		return err
	}
	if err := uc.benefitRepo.Create(ctx, next); err != nil {
		return err
	}

	publish(uc.publisher, uc.logger, benefit.NewBenefitRenewedEvent(next, old.ID()))
	uc.logger.Infow("benefit renewed",
		"previous_bid", old.BID(),
		"bid", next.BID(),
		"start_date", next.StartDate(),
		"end_date", next.EndDate())
	return nil
}

// contractedDayCount recovers the number of days the employee was entitled
// to: frozen days are excluded because the extension day that replaced each
// of them is already in the order set.
func contractedDayCount(b *benefit.Benefit) int {
	n := 0
	for _, o := range b.Orders() {
		if o.Status() == vo.OrderStatusFrozen || o.Status() == vo.OrderStatusCancelled {
			continue
		}
		n++
	}
	return n
}
