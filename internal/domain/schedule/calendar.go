package schedule

import (
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// EffectiveWorkingDays resolves an employee's working-day calendar: the
// employee's own set when non-empty, otherwise the configured default.
// The result is never empty as long as the default is configured.
func EffectiveWorkingDays(employeeDays, defaultDays WeekdaySet) WeekdaySet {
	if !employeeDays.IsEmpty() {
		return employeeDays
	}
	return defaultDays
}

// Expand produces the exact sorted list of billable dates for a recurrence
// over a working-day calendar within [start, end] inclusive. The result is
// deterministic for the same inputs; it is what gets materialized into
// order rows. An inverted range yields an empty list, not an error.
//
// Custom dates outside [start, end] or landing on a non-working weekday are
// silently dropped per employee. An employee whose custom dates have zero
// overlap with their calendar is excluded earlier, by eligibility and by
// the targeting recurrence stage.
func Expand(rec Recurrence, workingDays WeekdaySet, start, end biztime.Date) []biztime.Date {
	if start.After(end) {
		return []biztime.Date{}
	}

	switch rec.Kind() {
	case RecurrenceCustom:
		dates := make([]biztime.Date, 0, len(rec.customDates))
		for _, d := range rec.customDates {
			if d.Before(start) || d.After(end) {
				continue
			}
			if !workingDays.Has(d.Weekday()) {
				continue
			}
			dates = append(dates, d)
		}
		return dates

	case RecurrenceEveryOtherDay:
		return expandPattern(workingDays.Intersect(MonWedFri), start, end)

	case RecurrenceEveryDay:
		return expandPattern(workingDays, start, end)

	default:
		return []biztime.Date{}
	}
}

func expandPattern(days WeekdaySet, start, end biztime.Date) []biztime.Date {
	if days.IsEmpty() {
		return []biztime.Date{}
	}
	dates := make([]biztime.Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if days.Has(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

// CountQualifyingDays counts the billable dates Expand would produce.
func CountQualifyingDays(workingDays WeekdaySet, rec Recurrence, start, end biztime.Date) int {
	return len(Expand(rec, workingDays, start, end))
}

// NextQualifyingDay returns the first date strictly after the given date
// that the recurrence pattern selects. For custom recurrences the pattern
// has no continuation, so the next working day is used; this is how a
// frozen day gets appended past the period end.
func NextQualifyingDay(rec Recurrence, workingDays WeekdaySet, after biztime.Date) biztime.Date {
	pattern := workingDays
	switch rec.Kind() {
	case RecurrenceEveryOtherDay:
		pattern = workingDays.Intersect(MonWedFri)
	case RecurrenceCustom:
		pattern = workingDays
	}
	if pattern.IsEmpty() {
		return biztime.Date{}
	}
	d := after.AddDays(1)
	for i := 0; i < 14; i++ {
		if pattern.Has(d.Weekday()) {
			return d
		}
		d = d.AddDays(1)
	}
	return biztime.Date{}
}

// QualifyingDaysFrom returns the first count pattern dates strictly after
// the given date. Used when resuming a paused benefit: the skipped days are
// re-dated onto the next qualifying days so the contracted count holds.
func QualifyingDaysFrom(rec Recurrence, workingDays WeekdaySet, after biztime.Date, count int) []biztime.Date {
	dates := make([]biztime.Date, 0, count)
	d := after
	for len(dates) < count {
		d = NextQualifyingDay(rec, workingDays, d)
		if d.IsZero() {
			break
		}
		dates = append(dates, d)
	}
	return dates
}
