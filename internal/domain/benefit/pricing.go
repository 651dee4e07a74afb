package benefit

import (
	"fmt"
	"time"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// DailyRate resolves the per-day price of a benefit. Lunch rates come from
// the combo catalog in BusinessConfig; compensation uses the explicit daily
// limit, falling back to the configured default.
func DailyRate(kind vo.BenefitKind, comboType vo.ComboType, dailyLimitCents int64, cfg BusinessConfig) (vo.Money, error) {
	switch kind {
	case vo.KindLunch:
		price, ok := cfg.ComboPrice(comboType)
		if !ok {
			return vo.Money{}, fmt.Errorf("no catalog price for combo type %q", comboType)
		}
		return price, nil
	case vo.KindCompensation:
		limit := dailyLimitCents
		if limit == 0 {
			limit = cfg.DefaultDailyLimit
		}
		if limit <= 0 {
			return vo.Money{}, fmt.Errorf("daily limit must be positive")
		}
		return vo.NewMoney(limit, cfg.Currency), nil
	default:
		return vo.Money{}, fmt.Errorf("invalid benefit kind: %s", kind)
	}
}

// AutoTotalBudget computes a compensation budget when no explicit total is
// supplied: qualifying days times the daily limit.
func AutoTotalBudget(days int, dailyLimit vo.Money) vo.Money {
	return dailyLimit.Multiply(days)
}

// TotalCost estimates a bulk lunch assignment: days times rate times target
// count. Bulk compensation must not use this; it sums each employee's own
// day count because working-day calendars differ per employee.
func TotalCost(days int, rate vo.Money, targetCount int) vo.Money {
	return rate.Multiply(days).Multiply(targetCount)
}

// PriceForRemaining prorates a price over the remaining order count at the
// given rate. Used when an edit re-prices the not-yet-consumed tail.
func PriceForRemaining(remainingOrderCount int, rate vo.Money) vo.Money {
	return rate.Multiply(remainingOrderCount)
}

// RefundableTotal sums the persisted prices of not-yet-consumed billable
// orders. Refunds always come from these stored amounts: individual order
// prices may have been adjusted after creation, so recomputing rate x days
// here would produce wrong refunds.
func RefundableTotal(orders []*Order, now time.Time, cfg BusinessConfig, shift employee.ShiftType) vo.Money {
	total := vo.Zero(cfg.Currency)
	for _, o := range orders {
		if !o.Status().IsBillable() {
			continue
		}
		if isConsumed(o.Date(), now, cfg, shift) {
			continue
		}
		sum, err := total.Add(o.Price())
		if err != nil {
			continue
		}
		total = sum
	}
	return total
}

// isConsumed reports whether the delivery day can no longer be mutated:
// the date is past, or it is today and the cutoff instant has passed.
func isConsumed(date biztime.Date, now time.Time, cfg BusinessConfig, shift employee.ShiftType) bool {
	today := biztime.DateOf(now)
	if date.Before(today) {
		return true
	}
	if date.After(today) {
		return false
	}
	cutoff := biztime.CutoffUTC(date, cfg.CutoffOffsetFor(shift))
	return !now.Before(cutoff)
}
