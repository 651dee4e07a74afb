// Package biztime provides utilities for business timezone calculations.
// All storage and transport of instants use UTC. The business timezone is
// only used for date boundaries (start/end of day, cutoffs, week bounds)
// and for interpreting civil dates.
//
// Design principles:
// - All time storage is in UTC
// - Benefit dates are civil dates (Date), not instants
// - Day boundaries are calculated in business timezone first, then converted to UTC
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Singapore"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Singapore.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location.
// If not explicitly initialized, automatically initializes with the default timezone.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone, converted to UTC.
// This is for database queries where we need to find records from the start of a business day.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in business timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	endOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 23, 59, 59, 999999999, Location())
	return endOfDay.UTC()
}

// CutoffUTC returns the mutation cutoff instant for a delivery date:
// midnight of the date in business timezone plus offsetHours, in UTC.
// Same-day freezes and cancellations are rejected at or after this instant.
func CutoffUTC(d Date, offsetHours int) time.Time {
	midnight := d.In(Location())
	return midnight.Add(time.Duration(offsetHours) * time.Hour).UTC()
}

// ISOWeekStart returns the Monday of the ISO week containing d.
// Freeze quotas are counted per ISO week in business timezone.
func ISOWeekStart(d Date) Date {
	wd := int(d.Weekday())
	// time.Weekday is Sunday-based; shift so Monday is 0
	offset := (wd + 6) % 7
	return d.AddDays(-offset)
}

// ISOWeekBoundsUTC returns the UTC instants bounding the ISO week
// (Monday 00:00 business time inclusive, next Monday 00:00 exclusive)
// that contains the given instant.
func ISOWeekBoundsUTC(t time.Time) (time.Time, time.Time) {
	start := ISOWeekStart(DateOf(t))
	startUTC := start.In(Location()).UTC()
	endUTC := start.AddDays(7).In(Location()).UTC()
	return startUTC, endUTC
}
