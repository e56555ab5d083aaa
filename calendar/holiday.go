package calendar

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY SET - Fixed, finite set of non-working dates
// =============================================================================

// Holiday is a single non-working date.
type Holiday struct {
	Date Date   `json:"date" mapstructure:"date"`
	Name string `json:"name,omitempty" mapstructure:"name"`
}

// HolidaySet answers exact-date membership. It is immutable after
// construction and safe for concurrent reads. A nil *HolidaySet contains
// no dates.
type HolidaySet struct {
	byDate map[Date]Holiday
}

// NewHolidaySet builds a set from the given holidays. When the same date
// appears twice the first name wins.
func NewHolidaySet(holidays ...Holiday) *HolidaySet {
	s := &HolidaySet{byDate: make(map[Date]Holiday, len(holidays))}
	for _, h := range holidays {
		if _, ok := s.byDate[h.Date]; ok {
			continue
		}
		s.byDate[h.Date] = h
	}
	return s
}

// With returns a new set holding s's holidays plus extra.
func (s *HolidaySet) With(extra ...Holiday) *HolidaySet {
	return NewHolidaySet(append(s.All(), extra...)...)
}

func (s *HolidaySet) IsHoliday(d Date) bool {
	_, ok := s.Lookup(d)
	return ok
}

func (s *HolidaySet) Lookup(d Date) (Holiday, bool) {
	if s == nil {
		return Holiday{}, false
	}
	h, ok := s.byDate[d]
	return h, ok
}

func (s *HolidaySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byDate)
}

// All returns every holiday in chronological order.
func (s *HolidaySet) All() []Holiday {
	if s == nil {
		return nil
	}
	out := make([]Holiday, 0, len(s.byDate))
	for _, h := range s.byDate {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Between returns the holidays inside p in chronological order.
func (s *HolidaySet) Between(p Period) []Holiday {
	var out []Holiday
	for _, h := range s.All() {
		if p.Contains(h.Date) {
			out = append(out, h)
		}
	}
	return out
}

// =============================================================================
// EMBEDDED CALENDAR
// =============================================================================

// DefaultHolidays returns the embedded US federal holiday list for
// 2014-2015. Dates outside those years are never holidays in this set.
func DefaultHolidays() *HolidaySet {
	return NewHolidaySet(
		Holiday{NewDate(2014, time.January, 1), "New Year's Day"},
		Holiday{NewDate(2014, time.January, 20), "Martin Luther King Jr. Day"},
		Holiday{NewDate(2014, time.February, 16), ""},
		Holiday{NewDate(2014, time.February, 17), "Presidents' Day"},
		Holiday{NewDate(2014, time.May, 26), "Memorial Day"},
		Holiday{NewDate(2014, time.July, 4), "Independence Day"},
		Holiday{NewDate(2014, time.September, 1), "Labor Day"},
		Holiday{NewDate(2014, time.October, 13), "Columbus Day"},
		Holiday{NewDate(2014, time.November, 11), "Veterans Day"},
		Holiday{NewDate(2014, time.November, 27), "Thanksgiving Day"},
		Holiday{NewDate(2014, time.December, 25), "Christmas Day"},
		Holiday{NewDate(2015, time.January, 1), "New Year's Day"},
		Holiday{NewDate(2015, time.January, 19), "Martin Luther King Jr. Day"},
		Holiday{NewDate(2015, time.February, 16), "Presidents' Day"},
		Holiday{NewDate(2015, time.May, 25), "Memorial Day"},
		Holiday{NewDate(2015, time.July, 3), "Independence Day (observed)"},
		Holiday{NewDate(2015, time.September, 7), "Labor Day"},
		Holiday{NewDate(2015, time.October, 12), "Columbus Day"},
		Holiday{NewDate(2015, time.November, 11), "Veterans Day"},
		Holiday{NewDate(2015, time.November, 26), "Thanksgiving Day"},
		Holiday{NewDate(2015, time.December, 25), "Christmas Day"},
	)
}
