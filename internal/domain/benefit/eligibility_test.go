package benefit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

func testConfig() BusinessConfig {
	return BusinessConfig{
		MinSubscriptionDays:    5,
		MaxFreezesPerWeek:      2,
		CutoffOffsetHours:      9,
		NightCutoffOffsetHours: 16,
		DefaultWorkingDays:     schedule.MondayToFriday,
		ComboPrices: map[vo.ComboType]int64{
			vo.ComboStandard:   1200,
			vo.ComboPremium:    1800,
			vo.ComboVegetarian: 1100,
		},
		DefaultDailyLimit: 1500,
		Currency:          "SGD",
	}
}

func lunchEmployee(id uint) *employee.Employee {
	return &employee.Employee{
		ID:           id,
		IsActive:     true,
		InviteStatus: employee.InviteAccepted,
		ServiceType:  employee.ServiceLunch,
		ShiftType:    employee.ShiftDay,
		WorkingDays:  schedule.MondayToFriday,
	}
}

func TestCheckEligibility_RuleOrder(t *testing.T) {
	cfg := testConfig()
	activeID := uint(7)

	tests := []struct {
		name       string
		emp        *employee.Employee
		kind       vo.BenefitKind
		rec        schedule.Recurrence
		wantOK     bool
		wantReason string
	}{
		{
			name:   "eligible lunch employee",
			emp:    lunchEmployee(1),
			kind:   vo.KindLunch,
			rec:    schedule.NewEveryDayRecurrence(),
			wantOK: true,
		},
		{
			name: "unset service type",
			emp: &employee.Employee{
				ID: 2, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceUnset, WorkingDays: schedule.MondayToFriday,
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryDayRecurrence(),
			wantReason: ReasonServiceTypeUnset,
		},
		{
			name: "compensation employee requesting lunch",
			emp: &employee.Employee{
				ID: 3, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceCompensation, WorkingDays: schedule.MondayToFriday,
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryDayRecurrence(),
			wantReason: ReasonServiceTypeCompensationOnly,
		},
		{
			name: "lunch employee requesting compensation",
			emp: &employee.Employee{
				ID: 4, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch, WorkingDays: schedule.MondayToFriday,
			},
			kind:       vo.KindCompensation,
			wantReason: ReasonServiceTypeLunchOnly,
		},
		{
			name: "already has an active lunch benefit",
			emp: &employee.Employee{
				ID: 5, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch, WorkingDays: schedule.MondayToFriday,
				ActiveLunchBenefitID: &activeID,
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryDayRecurrence(),
			wantReason: ReasonAlreadyHasLunch,
		},
		{
			name: "already has an active compensation",
			emp: &employee.Employee{
				ID: 6, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceCompensation, WorkingDays: schedule.MondayToFriday,
				ActiveCompensationID: &activeID,
			},
			kind:       vo.KindCompensation,
			wantReason: ReasonAlreadyHasCompensation,
		},
		{
			name: "weekend-only calendar has no business days",
			emp: &employee.Employee{
				ID: 8, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch,
				WorkingDays: schedule.NewWeekdaySet(time.Saturday, time.Sunday),
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryDayRecurrence(),
			wantReason: ReasonNoBusinessDays,
		},
		{
			name: "every day needs the full business week",
			emp: &employee.Employee{
				ID: 9, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch,
				WorkingDays: schedule.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday),
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryDayRecurrence(),
			wantReason: ReasonRecurrenceIncompatible,
		},
		{
			name: "every other day needs mon wed fri",
			emp: &employee.Employee{
				ID: 10, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch,
				WorkingDays: schedule.NewWeekdaySet(time.Monday, time.Tuesday, time.Thursday),
			},
			kind:       vo.KindLunch,
			rec:        schedule.NewEveryOtherDayRecurrence(),
			wantReason: ReasonRecurrenceIncompatible,
		},
		{
			name: "custom with one overlapping weekday is enough",
			emp: &employee.Employee{
				ID: 11, IsActive: true, InviteStatus: employee.InviteAccepted,
				ServiceType: employee.ServiceLunch,
				WorkingDays: schedule.NewWeekdaySet(time.Monday, time.Tuesday),
			},
			kind:   vo.KindLunch,
			rec:    mustCustomRec(t, "2024-01-06", "2024-01-08"), // Sat + Mon
			wantOK: true,
		},
		{
			name:   "compensation ignores recurrence compatibility",
			emp:    compEmployee(12),
			kind:   vo.KindCompensation,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckEligibility(tt.emp, tt.kind, tt.rec, cfg)
			assert.Equal(t, tt.wantOK, result.OK)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestCheckEligibility_EmptyCalendarFallsBackToDefault(t *testing.T) {
	cfg := testConfig()
	emp := lunchEmployee(1)
	emp.WorkingDays = schedule.WeekdaySet(0)

	result := CheckEligibility(emp, vo.KindLunch, schedule.NewEveryDayRecurrence(), cfg)
	assert.True(t, result.OK)
}

func compEmployee(id uint) *employee.Employee {
	return &employee.Employee{
		ID:           id,
		IsActive:     true,
		InviteStatus: employee.InviteAccepted,
		ServiceType:  employee.ServiceCompensation,
		ShiftType:    employee.ShiftDay,
		WorkingDays:  schedule.MondayToFriday,
	}
}

func mustCustomRec(t *testing.T, dates ...string) schedule.Recurrence {
	t.Helper()
	parsed := make([]biztime.Date, 0, len(dates))
	for _, d := range dates {
		parsed = append(parsed, biztime.MustParseDate(d))
	}
	rec, err := schedule.NewCustomRecurrence(parsed)
	require.NoError(t, err)
	return rec
}
