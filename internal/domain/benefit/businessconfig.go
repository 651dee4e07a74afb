package benefit

import (
	"context"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
)

// BusinessConfig carries the program rules the engine must never hardcode:
// minimum subscription length, freeze quota, daily cutoff offsets, the
// default working-day calendar and the combo price catalog. It is threaded
// through every entry point as an explicit value so tests can inject
// arbitrary rules deterministically.
type BusinessConfig struct {
	MinSubscriptionDays    int
	MaxFreezesPerWeek      int
	CutoffOffsetHours      int
	NightCutoffOffsetHours int
	DefaultWorkingDays     schedule.WeekdaySet
	ComboPrices            map[vo.ComboType]int64
	DefaultDailyLimit      int64
	Currency               string
}

// ComboPrice looks up the catalog price for a combo type.
func (c BusinessConfig) ComboPrice(combo vo.ComboType) (vo.Money, bool) {
	cents, ok := c.ComboPrices[combo]
	if !ok {
		return vo.Money{}, false
	}
	return vo.NewMoney(cents, c.Currency), true
}

// CutoffOffsetFor returns the cutoff offset in hours for a shift. Night
// shift deliveries are prepared later in the day, so their cutoff is later.
func (c BusinessConfig) CutoffOffsetFor(shift employee.ShiftType) int {
	if shift == employee.ShiftNight && c.NightCutoffOffsetHours > 0 {
		return c.NightCutoffOffsetHours
	}
	return c.CutoffOffsetHours
}

// ConfigProvider supplies the current BusinessConfig. The infrastructure
// implementation reads the business_configs row through a cache; the
// engine only ever sees the resolved value.
type ConfigProvider interface {
	Get(ctx context.Context) (BusinessConfig, error)
}
