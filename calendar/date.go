/*
Package calendar provides plain calendar dates and holiday sets.

PURPOSE:
  Paydates are calendar days, not instants. This package holds the
  date value used everywhere else, the arithmetic on it and the holiday
  lookup the paydate engine corrects against.

KEY CONCEPTS:
  - Date: year, month, day. No time of day, no zone. Comparable with ==
    and usable as a map key.
  - Month arithmetic clamps to the last day of the target month:
      2014-01-31 + 1 month = 2014-02-28
      2016-01-31 + 1 month = 2016-02-29
    Month shifts therefore do not always round-trip.
  - Weekday numbering follows ISO 8601: Monday=1 ... Sunday=7.

SEE ALSO:
  - holiday.go: Holiday, HolidaySet, the embedded 2014-2015 list
  - period.go: inclusive date ranges
*/
package calendar

import (
	"fmt"
	"time"
)

// Layout is the textual date format accepted and produced by Date.
const Layout = "2006-01-02"

// =============================================================================
// DATE - Calendar day value
// =============================================================================

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes out-of-range values the way time.Date does
// (e.g. 2014-02-30 becomes 2014-03-02).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime takes the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a date in Layout. The text must round-trip exactly, so
// "2014-02-30" and "2014-1-05" are rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, err
	}
	if t.Format(Layout) != s {
		return Date{}, fmt.Errorf("date %q does not round-trip (got %s)", s, t.Format(Layout))
	}
	return FromTime(t), nil
}

// MustParse is Parse that panics. Intended for tests and fixed tables.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string { return d.Time().Format(Layout) }
func (d Date) IsZero() bool   { return d == Date{} }

// MarshalText and UnmarshalText let Date travel as "2006-01-02" in JSON and YAML.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool         { return d.Time().After(other.Time()) }
func (d Date) Equal(other Date) bool         { return d == other }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }

// =============================================================================
// ARITHMETIC
// =============================================================================

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths keeps the day of month when the target month has it and
// otherwise clamps to the target month's last day.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func EndOfMonth(year int, month time.Month) Date {
	return Date{Year: year, Month: month, Day: DaysIn(year, month)}
}

// DaysBetween counts calendar days from -> to; negative when to is earlier.
func DaysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

// =============================================================================
// WEEKDAYS
// =============================================================================

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func (d Date) ISOWeekday() int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func (d Date) IsWeekend() bool { return d.ISOWeekday() > 5 }
