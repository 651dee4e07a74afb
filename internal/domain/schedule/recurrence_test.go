package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

func TestParseRecurrenceKind(t *testing.T) {
	for _, valid := range []string{"every_day", "every_other_day", "custom"} {
		kind, err := ParseRecurrenceKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := ParseRecurrenceKind("weekly")
	assert.Error(t, err)
}

func TestNewCustomRecurrence_SortsAndDeduplicates(t *testing.T) {
	rec, err := NewCustomRecurrence([]biztime.Date{
		biztime.MustParseDate("2024-01-10"),
		biztime.MustParseDate("2024-01-08"),
		biztime.MustParseDate("2024-01-10"),
	})
	require.NoError(t, err)

	dates := rec.CustomDates()
	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-08", dates[0].String())
	assert.Equal(t, "2024-01-10", dates[1].String())
}

func TestNewCustomRecurrence_RequiresDates(t *testing.T) {
	_, err := NewCustomRecurrence(nil)
	assert.Error(t, err)
}

func TestNewRecurrence(t *testing.T) {
	rec, err := NewRecurrence(RecurrenceEveryDay, nil)
	require.NoError(t, err)
	assert.Equal(t, RecurrenceEveryDay, rec.Kind())

	_, err = NewRecurrence(RecurrenceCustom, nil)
	assert.Error(t, err)

	_, err = NewRecurrence("weekly", nil)
	assert.Error(t, err)
}

func TestRecurrence_CompatibleWith(t *testing.T) {
	monToWed := NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday)

	tests := []struct {
		name string
		rec  Recurrence
		days WeekdaySet
		want bool
	}{
		{"every day on full business week", NewEveryDayRecurrence(), MondayToFriday, true},
		{"every day on partial week", NewEveryDayRecurrence(), monToWed, false},
		{"every other day needs mon wed fri", NewEveryOtherDayRecurrence(), MondayToFriday, true},
		{"every other day missing friday", NewEveryOtherDayRecurrence(), monToWed, false},
		{
			"custom with one overlapping weekday",
			mustCustom(t, "2024-01-06", "2024-01-08"), // Sat, Mon
			monToWed,
			true,
		},
		{
			"custom with no overlap",
			mustCustom(t, "2024-01-06"), // Saturday only
			MondayToFriday,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.CompatibleWith(tt.days))
		})
	}
}
