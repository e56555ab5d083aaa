// Package paydate computes employee paydates from a pay frequency and a
// known first paydate, moving dates off weekends and holidays.
package paydate

import (
	"fmt"
	"strings"

	"github.com/warp/paydate-engine/calendar"
)

// =============================================================================
// UNIT - Calendar unit of a date shift
// =============================================================================

type Unit int

const (
	UnitDay Unit = iota // default
	UnitMonth
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit accepts day, days, month, months in any case. Empty means day.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day", "days":
		return UnitDay, nil
	case "month", "months":
		return UnitMonth, nil
	default:
		return 0, invalid(ErrInvalidUnit, "unit", s, "should be one of 'day','month'")
	}
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// =============================================================================
// FREQUENCY
// =============================================================================

// FrequencyKind names a pay frequency model.
type FrequencyKind string

const (
	Weekly   FrequencyKind = "WEEKLY"
	Biweekly FrequencyKind = "BIWEEKLY"
	Monthly  FrequencyKind = "MONTHLY"
)

// Kinds lists the supported frequency kinds.
var Kinds = []FrequencyKind{Monthly, Biweekly, Weekly}

// Frequency is the spacing between two consecutive paydates.
type Frequency struct {
	Kind  FrequencyKind `json:"kind"`
	Unit  Unit          `json:"unit"`
	Count int           `json:"count"`
}

// ParseFrequencyKind matches s exactly against the supported kinds.
func ParseFrequencyKind(s string) (FrequencyKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", invalid(ErrInvalidFrequencyKind, "frequency", s, "should be one of "+kindList())
}

func kindList() string {
	quoted := make([]string, len(Kinds))
	for i, k := range Kinds {
		quoted[i] = "'" + string(k) + "'"
	}
	return strings.Join(quoted, ",")
}

// Frequency resolves the kind to its unit and count. Unknown kinds
// resolve to the zero Frequency.
func (k FrequencyKind) Frequency() Frequency {
	switch k {
	case Weekly:
		return Frequency{Kind: k, Unit: UnitDay, Count: 7}
	case Biweekly:
		return Frequency{Kind: k, Unit: UnitDay, Count: 14}
	case Monthly:
		return Frequency{Kind: k, Unit: UnitMonth, Count: 1}
	default:
		return Frequency{}
	}
}

// PeriodsPerYear is the number of paydates a kind yields in a year.
func (k FrequencyKind) PeriodsPerYear() int {
	switch k {
	case Weekly:
		return 52
	case Biweekly:
		return 26
	case Monthly:
		return 12
	default:
		return 0
	}
}

func (f Frequency) String() string {
	return fmt.Sprintf("%d %s", f.Count, f.Unit)
}

// Advance moves d forward by one frequency increment.
func (f Frequency) Advance(d calendar.Date) calendar.Date {
	return IncreaseDate(d, f.Count, f.Unit)
}

// =============================================================================
// DATE SHIFTS
// =============================================================================

// IncreaseDate moves d forward by count units. Month shifts clamp to the
// end of the target month.
func IncreaseDate(d calendar.Date, count int, unit Unit) calendar.Date {
	if unit == UnitMonth {
		return d.AddMonths(count)
	}
	return d.AddDays(count)
}

// DecreaseDate moves d backward by count units.
func DecreaseDate(d calendar.Date, count int, unit Unit) calendar.Date {
	return IncreaseDate(d, -count, unit)
}
