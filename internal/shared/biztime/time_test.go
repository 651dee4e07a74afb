package biztime

import (
	"testing"
	"time"
)

func TestCutoffUTC(t *testing.T) {
	MustInit("")

	d := MustParseDate("2026-03-02")

	// 09:00 Asia/Singapore == 01:00 UTC
	got := CutoffUTC(d, 9)
	want := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CutoffUTC(9) = %v, want %v", got, want)
	}

	// 16:00 Asia/Singapore == 08:00 UTC
	got = CutoffUTC(d, 16)
	want = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CutoffUTC(16) = %v, want %v", got, want)
	}
}

func TestISOWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"monday maps to itself", "2026-03-02", "2026-03-02"},
		{"wednesday maps to monday", "2026-03-04", "2026-03-02"},
		{"sunday maps to previous monday", "2026-03-08", "2026-03-02"},
		{"saturday maps to its monday", "2026-03-07", "2026-03-02"},
		{"next monday starts new week", "2026-03-09", "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ISOWeekStart(MustParseDate(tt.date))
			if got.String() != tt.want {
				t.Errorf("ISOWeekStart(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestISOWeekBoundsUTC(t *testing.T) {
	MustInit("")

	// Wednesday 2026-03-04 10:00 Asia/Singapore
	instant := time.Date(2026, 3, 4, 2, 0, 0, 0, time.UTC)
	start, end := ISOWeekBoundsUTC(instant)

	// Monday 2026-03-02 00:00 SGT == Sunday 2026-03-01 16:00 UTC
	wantStart := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 3, 8, 16, 0, 0, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("week start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("week end = %v, want %v", end, wantEnd)
	}
	if !start.Before(instant) || !instant.Before(end) {
		t.Error("instant should fall inside its own week bounds")
	}
}

func TestStartEndOfDayUTC(t *testing.T) {
	MustInit("")

	// 2026-03-02 23:30 SGT == 15:30 UTC same day
	instant := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

	start := StartOfDayUTC(instant)
	wantStart := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("StartOfDayUTC = %v, want %v", start, wantStart)
	}

	end := EndOfDayUTC(instant)
	if !end.After(instant) {
		t.Error("EndOfDayUTC should be after an instant inside the day")
	}
}
