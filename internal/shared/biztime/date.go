package biztime

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for civil dates.
const DateLayout = "2006-01-02"

// Date is a civil calendar date without a timezone. Benefit start/end dates
// and order dates are civil dates: "2026-03-02" means the same delivery day
// regardless of the viewer's timezone. Internally it is the UTC midnight of
// the date, which keeps arithmetic cheap without implying an instant.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the civil date of the given instant in business timezone.
func DateOf(t time.Time) Date {
	bt := t.In(Location())
	return NewDate(bt.Year(), bt.Month(), bt.Day())
}

// Today returns the current civil date in business timezone.
func Today() Date {
	return DateOf(NowUTC())
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate parses a YYYY-MM-DD string and panics on error. Test helper.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of days from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Compare returns -1, 0 or 1 comparing d with other. Suitable for slices.SortFunc.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// Time returns the UTC midnight of the date. Storage representation.
func (d Date) Time() time.Time {
	return d.t
}

// In returns the midnight of the date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
}

// String returns the YYYY-MM-DD representation.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string, rejecting timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	if strings.Contains(s, "T") {
		return fmt.Errorf("invalid date %q: timestamps are not accepted, expected YYYY-MM-DD", s)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
