// Package schedule provides the pure scheduling engine: working-day
// calendars, recurrence patterns and qualifying-day expansion. All
// functions are side-effect free; callers supply dates and calendars
// explicitly so the same rules apply identically on every path.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a set of weekdays backed by a bitmask, bit 0 = Sunday.
type WeekdaySet uint8

// MondayToFriday is the default working-day calendar.
var MondayToFriday = NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

// MonWedFri is the alternating-pattern day set.
var MonWedFri = NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)

// NewWeekdaySet builds a WeekdaySet from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// WeekdaySetFromInts builds a WeekdaySet from integer weekdays
// (0=Sunday .. 6=Saturday, the wire representation).
func WeekdaySetFromInts(days []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, d := range days {
		if d < 0 || d > 6 {
			return 0, fmt.Errorf("invalid weekday %d, must be 0-6", d)
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

// Has reports whether the set contains the weekday.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// With returns a copy of the set with the weekday added.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Intersect returns the weekdays present in both sets.
func (s WeekdaySet) Intersect(other WeekdaySet) WeekdaySet {
	return s & other
}

// ContainsAll reports whether every weekday of other is in s.
func (s WeekdaySet) ContainsAll(other WeekdaySet) bool {
	return s&other == other
}

// IsEmpty reports whether the set has no weekdays.
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Count returns the number of weekdays in the set.
func (s WeekdaySet) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Weekdays returns the contained weekdays ordered Sunday to Saturday.
func (s WeekdaySet) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Ints returns the contained weekdays as integers 0-6, ordered ascending.
// This is the wire and storage representation.
func (s WeekdaySet) Ints() []int {
	days := make([]int, 0, 7)
	for d := 0; d <= 6; d++ {
		if s.Has(time.Weekday(d)) {
			days = append(days, d)
		}
	}
	return days
}

// String returns a short human-readable form like "Mon,Wed,Fri".
func (s WeekdaySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	parts := make([]string, 0, 7)
	for _, d := range s.Weekdays() {
		parts = append(parts, d.String()[:3])
	}
	return strings.Join(parts, ",")
}
