package calendar

import "fmt"

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is the inclusive range [Start, End]. A zero Start or End leaves
// that side open.
type Period struct {
	Start Date
	End   Date
}

// Year returns Jan 1 - Dec 31 of the given year.
func Year(year int) Period {
	return Period{
		Start: Date{Year: year, Month: 1, Day: 1},
		End:   Date{Year: year, Month: 12, Day: 31},
	}
}

// Validate rejects a closed period whose end precedes its start.
func (p Period) Validate() error {
	if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
		return fmt.Errorf("invalid period %s: end before start", p)
	}
	return nil
}

func (p Period) Contains(d Date) bool {
	if !p.Start.IsZero() && d.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && d.After(p.End) {
		return false
	}
	return true
}

// Days returns every day of a closed period. Open periods yield nil.
func (p Period) Days() []Date {
	if p.Start.IsZero() || p.End.IsZero() {
		return nil
	}
	var days []Date
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

func (p Period) String() string {
	return "[" + bound(p.Start) + ", " + bound(p.End) + "]"
}

func bound(d Date) string {
	if d.IsZero() {
		return "..."
	}
	return d.String()
}
