package schedule

import (
	"fmt"
	"slices"

	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// RecurrenceKind identifies the day-selection pattern of a lunch benefit.
type RecurrenceKind string

const (
	// RecurrenceEveryDay selects every working day.
	RecurrenceEveryDay RecurrenceKind = "every_day"
	// RecurrenceEveryOtherDay selects Monday, Wednesday and Friday,
	// intersected with the working-day calendar.
	RecurrenceEveryOtherDay RecurrenceKind = "every_other_day"
	// RecurrenceCustom selects an explicit list of dates.
	RecurrenceCustom RecurrenceKind = "custom"
)

// ValidRecurrenceKinds maps all valid kinds for validation.
var ValidRecurrenceKinds = map[RecurrenceKind]bool{
	RecurrenceEveryDay:      true,
	RecurrenceEveryOtherDay: true,
	RecurrenceCustom:        true,
}

// ParseRecurrenceKind validates and converts a string to a RecurrenceKind.
func ParseRecurrenceKind(s string) (RecurrenceKind, error) {
	kind := RecurrenceKind(s)
	if !ValidRecurrenceKinds[kind] {
		return "", fmt.Errorf("invalid recurrence kind: %s", s)
	}
	return kind, nil
}

// Recurrence is the day-selection pattern value object. Custom recurrences
// carry their explicit dates, deduplicated and sorted at construction.
type Recurrence struct {
	kind        RecurrenceKind
	customDates []biztime.Date
}

// NewEveryDayRecurrence returns the every-working-day pattern.
func NewEveryDayRecurrence() Recurrence {
	return Recurrence{kind: RecurrenceEveryDay}
}

// NewEveryOtherDayRecurrence returns the Mon/Wed/Fri pattern.
func NewEveryOtherDayRecurrence() Recurrence {
	return Recurrence{kind: RecurrenceEveryOtherDay}
}

// NewCustomRecurrence returns a pattern over explicit dates. The dates are
// deduplicated and sorted; an empty list is invalid.
func NewCustomRecurrence(dates []biztime.Date) (Recurrence, error) {
	if len(dates) == 0 {
		return Recurrence{}, fmt.Errorf("custom recurrence requires at least one date")
	}
	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, biztime.Date.Compare)
	sorted = slices.CompactFunc(sorted, biztime.Date.Equal)
	return Recurrence{kind: RecurrenceCustom, customDates: sorted}, nil
}

// NewRecurrence builds a Recurrence from its kind and optional custom dates.
func NewRecurrence(kind RecurrenceKind, customDates []biztime.Date) (Recurrence, error) {
	switch kind {
	case RecurrenceEveryDay:
		return NewEveryDayRecurrence(), nil
	case RecurrenceEveryOtherDay:
		return NewEveryOtherDayRecurrence(), nil
	case RecurrenceCustom:
		return NewCustomRecurrence(customDates)
	default:
		return Recurrence{}, fmt.Errorf("invalid recurrence kind: %s", kind)
	}
}

// Kind returns the recurrence kind.
func (r Recurrence) Kind() RecurrenceKind {
	return r.kind
}

// CustomDates returns a copy of the explicit dates (custom kind only).
func (r Recurrence) CustomDates() []biztime.Date {
	return slices.Clone(r.customDates)
}

// IsZero reports whether the recurrence is uninitialized.
func (r Recurrence) IsZero() bool {
	return r.kind == ""
}

// CompatibleWith reports whether the pattern is achievable with the given
// working-day calendar: every_day needs all of Mon-Fri on-shift,
// every_other_day needs Mon, Wed and Fri, custom needs at least one
// explicit date landing on a working weekday.
func (r Recurrence) CompatibleWith(workingDays WeekdaySet) bool {
	switch r.kind {
	case RecurrenceEveryDay:
		return workingDays.ContainsAll(MondayToFriday)
	case RecurrenceEveryOtherDay:
		return workingDays.ContainsAll(MonWedFri)
	case RecurrenceCustom:
		for _, d := range r.customDates {
			if workingDays.Has(d.Weekday()) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
