package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

func TestEffectiveWorkingDays(t *testing.T) {
	custom := NewWeekdaySet(time.Tuesday, time.Thursday)

	assert.Equal(t, custom, EffectiveWorkingDays(custom, MondayToFriday))
	assert.Equal(t, MondayToFriday, EffectiveWorkingDays(WeekdaySet(0), MondayToFriday))
	assert.False(t, EffectiveWorkingDays(WeekdaySet(0), MondayToFriday).IsEmpty())
}

func TestExpand_EveryDay(t *testing.T) {
	// 2024-01-01 is a Monday.
	start := biztime.MustParseDate("2024-01-01")
	end := biztime.MustParseDate("2024-01-05")

	dates := Expand(NewEveryDayRecurrence(), MondayToFriday, start, end)

	require.Len(t, dates, 5)
	assert.Equal(t, "2024-01-01", dates[0].String())
	assert.Equal(t, "2024-01-05", dates[4].String())
}

func TestExpand_EveryDay_SkipsNonWorkingWeekdays(t *testing.T) {
	start := biztime.MustParseDate("2024-01-01")
	end := biztime.MustParseDate("2024-01-07")

	days := NewWeekdaySet(time.Monday, time.Wednesday)
	dates := Expand(NewEveryDayRecurrence(), days, start, end)

	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-01", dates[0].String())
	assert.Equal(t, "2024-01-03", dates[1].String())
}

func TestExpand_EveryOtherDay(t *testing.T) {
	// Monday through Friday; the pattern picks Mon, Wed, Fri.
	start := biztime.MustParseDate("2024-01-01")
	end := biztime.MustParseDate("2024-01-05")

	dates := Expand(NewEveryOtherDayRecurrence(), MondayToFriday, start, end)

	require.Len(t, dates, 3)
	assert.Equal(t, "2024-01-01", dates[0].String())
	assert.Equal(t, "2024-01-03", dates[1].String())
	assert.Equal(t, "2024-01-05", dates[2].String())
}

func TestExpand_EveryOtherDay_IntersectsCalendar(t *testing.T) {
	start := biztime.MustParseDate("2024-01-01")
	end := biztime.MustParseDate("2024-01-05")

	// Employee works Mon/Tue/Wed only: Friday drops out of the pattern.
	days := NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday)
	dates := Expand(NewEveryOtherDayRecurrence(), days, start, end)

	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-01", dates[0].String())
	assert.Equal(t, "2024-01-03", dates[1].String())
}

func TestExpand_Custom_DropsNonWorkingDates(t *testing.T) {
	rec, err := NewCustomRecurrence([]biztime.Date{
		biztime.MustParseDate("2024-01-02"), // Tuesday
		biztime.MustParseDate("2024-01-06"), // Saturday, dropped
		biztime.MustParseDate("2024-01-04"), // Thursday
	})
	require.NoError(t, err)

	start := biztime.MustParseDate("2024-01-01")
	end := biztime.MustParseDate("2024-01-07")

	dates := Expand(rec, MondayToFriday, start, end)

	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-02", dates[0].String())
	assert.Equal(t, "2024-01-04", dates[1].String())
}

func TestExpand_Custom_DropsDatesOutsideRange(t *testing.T) {
	rec, err := NewCustomRecurrence([]biztime.Date{
		biztime.MustParseDate("2023-12-29"),
		biztime.MustParseDate("2024-01-02"),
		biztime.MustParseDate("2024-02-01"),
	})
	require.NoError(t, err)

	dates := Expand(rec, MondayToFriday,
		biztime.MustParseDate("2024-01-01"), biztime.MustParseDate("2024-01-31"))

	require.Len(t, dates, 1)
	assert.Equal(t, "2024-01-02", dates[0].String())
}

func TestExpand_InvertedRangeYieldsEmpty(t *testing.T) {
	dates := Expand(NewEveryDayRecurrence(), MondayToFriday,
		biztime.MustParseDate("2024-01-05"), biztime.MustParseDate("2024-01-01"))

	assert.Empty(t, dates)
	assert.Equal(t, 0, CountQualifyingDays(MondayToFriday, NewEveryDayRecurrence(),
		biztime.MustParseDate("2024-01-05"), biztime.MustParseDate("2024-01-01")))
}

func TestExpand_IsIdempotentAndMatchesCount(t *testing.T) {
	customDates := []biztime.Date{
		biztime.MustParseDate("2024-03-04"),
		biztime.MustParseDate("2024-03-06"),
		biztime.MustParseDate("2024-03-09"), // Saturday
	}
	custom, err := NewCustomRecurrence(customDates)
	require.NoError(t, err)

	recs := []Recurrence{
		NewEveryDayRecurrence(),
		NewEveryOtherDayRecurrence(),
		custom,
	}
	calendars := []WeekdaySet{
		MondayToFriday,
		NewWeekdaySet(time.Monday, time.Wednesday, time.Friday),
		NewWeekdaySet(time.Saturday, time.Sunday),
	}
	start := biztime.MustParseDate("2024-03-01")
	end := biztime.MustParseDate("2024-03-31")

	for _, rec := range recs {
		for _, cal := range calendars {
			first := Expand(rec, cal, start, end)
			second := Expand(rec, cal, start, end)
			assert.Equal(t, first, second)
			assert.Equal(t, len(first), CountQualifyingDays(cal, rec, start, end))

			for i := 1; i < len(first); i++ {
				assert.True(t, first[i-1].Before(first[i]), "dates must be sorted ascending")
			}
		}
	}
}

func TestNextQualifyingDay(t *testing.T) {
	tests := []struct {
		name  string
		rec   Recurrence
		days  WeekdaySet
		after string
		want  string
	}{
		{
			name:  "every day skips the weekend",
			rec:   NewEveryDayRecurrence(),
			days:  MondayToFriday,
			after: "2024-01-05", // Friday
			want:  "2024-01-08", // Monday
		},
		{
			name:  "every other day continues on the pattern",
			rec:   NewEveryOtherDayRecurrence(),
			days:  MondayToFriday,
			after: "2024-01-01", // Monday
			want:  "2024-01-03", // Wednesday
		},
		{
			name:  "custom falls back to next working day",
			rec:   mustCustom(t, "2024-01-02"),
			days:  MondayToFriday,
			after: "2024-01-05", // Friday
			want:  "2024-01-08", // Monday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextQualifyingDay(tt.rec, tt.days, biztime.MustParseDate(tt.after))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNextQualifyingDay_EmptyPattern(t *testing.T) {
	got := NextQualifyingDay(NewEveryOtherDayRecurrence(), NewWeekdaySet(time.Saturday), biztime.MustParseDate("2024-01-01"))
	assert.True(t, got.IsZero())
}

func TestQualifyingDaysFrom(t *testing.T) {
	dates := QualifyingDaysFrom(NewEveryDayRecurrence(), MondayToFriday,
		biztime.MustParseDate("2024-01-04"), 3) // Thursday

	require.Len(t, dates, 3)
	assert.Equal(t, "2024-01-05", dates[0].String())
	assert.Equal(t, "2024-01-08", dates[1].String())
	assert.Equal(t, "2024-01-09", dates[2].String())
}

func mustCustom(t *testing.T, dates ...string) Recurrence {
	t.Helper()
	parsed := make([]biztime.Date, 0, len(dates))
	for _, d := range dates {
		parsed = append(parsed, biztime.MustParseDate(d))
	}
	rec, err := NewCustomRecurrence(parsed)
	require.NoError(t, err)
	return rec
}
