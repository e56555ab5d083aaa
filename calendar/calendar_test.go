package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/paydate-engine/calendar"
)

// =============================================================================
// PARSING
// =============================================================================

func TestParse_RoundTrips(t *testing.T) {
	d, err := calendar.Parse("2014-01-20")
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Year: 2014, Month: time.January, Day: 20}, d)
	assert.Equal(t, "2014-01-20", d.String())
}

func TestParse_RejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"2014-02-30",
		"2014-1-05",
		"14-01-05",
		"2014/01/05",
		"05-01-2014",
		"2014-01-05T00:00:00Z",
		"not-a-date",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := calendar.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { calendar.MustParse("2014-13-01") })
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date calendar.Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2015-07-03"}`), &payload))
	assert.Equal(t, calendar.NewDate(2015, time.July, 3), payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2015-07-03"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"2015-7-3"}`), &payload))
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func TestAddDays(t *testing.T) {
	d := calendar.MustParse("2014-12-29")
	assert.Equal(t, "2015-01-05", d.AddDays(7).String())
	assert.Equal(t, "2014-12-15", d.AddDays(-14).String())
	assert.Equal(t, d, d.AddDays(0))
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		months int
		want   string
	}{
		{"plain", "2014-01-15", 1, "2014-02-15"},
		{"jan 31 to feb", "2014-01-31", 1, "2014-02-28"},
		{"jan 31 to leap feb", "2016-01-31", 1, "2016-02-29"},
		{"mar 31 back to feb", "2014-03-31", -1, "2014-02-28"},
		{"31 to 30-day month", "2014-05-31", 1, "2014-06-30"},
		{"year boundary forward", "2014-12-15", 1, "2015-01-15"},
		{"year boundary backward", "2014-01-31", -2, "2013-11-30"},
		{"twelve months", "2015-02-28", 12, "2016-02-28"},
		{"zero", "2014-08-31", 0, "2014-08-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.MustParse(tt.from).AddMonths(tt.months)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddMonths_DoesNotRoundTripAcrossClamp(t *testing.T) {
	jan31 := calendar.MustParse("2014-01-31")
	assert.Equal(t, "2014-01-28", jan31.AddMonths(1).AddMonths(-1).String())
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysIn(2016, time.February))
	assert.Equal(t, 28, calendar.DaysIn(2014, time.February))
	assert.Equal(t, 31, calendar.DaysIn(2014, time.December))
	assert.Equal(t, "2014-04-30", calendar.EndOfMonth(2014, time.April).String())
}

func TestDaysBetween(t *testing.T) {
	a := calendar.MustParse("2014-01-01")
	b := calendar.MustParse("2015-01-01")
	assert.Equal(t, 365, calendar.DaysBetween(a, b))
	assert.Equal(t, -365, calendar.DaysBetween(b, a))
}

// =============================================================================
// WEEKDAYS
// =============================================================================

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, 3, calendar.MustParse("2014-01-01").ISOWeekday()) // Wednesday
	assert.Equal(t, 1, calendar.MustParse("2014-01-20").ISOWeekday()) // Monday
	assert.Equal(t, 6, calendar.MustParse("2014-01-04").ISOWeekday()) // Saturday
	assert.Equal(t, 7, calendar.MustParse("2014-02-16").ISOWeekday()) // Sunday
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, calendar.MustParse("2014-01-04").IsWeekend())
	assert.True(t, calendar.MustParse("2014-01-05").IsWeekend())
	assert.False(t, calendar.MustParse("2014-01-03").IsWeekend())
	assert.False(t, calendar.MustParse("2014-01-06").IsWeekend())
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestDefaultHolidays(t *testing.T) {
	set := calendar.DefaultHolidays()
	assert.Equal(t, 21, set.Len())

	assert.True(t, set.IsHoliday(calendar.MustParse("2014-01-20")))
	assert.True(t, set.IsHoliday(calendar.MustParse("2015-07-03")))
	assert.False(t, set.IsHoliday(calendar.MustParse("2015-07-04")))
	assert.False(t, set.IsHoliday(calendar.MustParse("2016-01-01")), "outside the embedded years")

	h, ok := set.Lookup(calendar.MustParse("2014-12-25"))
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", h.Name)

	h, ok = set.Lookup(calendar.MustParse("2014-02-16"))
	require.True(t, ok, "Sunday before Presidents' Day is in the list")
	assert.Empty(t, h.Name)
}

func TestHolidaySet_NilIsEmpty(t *testing.T) {
	var set *calendar.HolidaySet
	assert.False(t, set.IsHoliday(calendar.MustParse("2014-01-01")))
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.All())
}

func TestHolidaySet_WithDoesNotMutate(t *testing.T) {
	base := calendar.NewHolidaySet(calendar.Holiday{Date: calendar.MustParse("2020-01-01"), Name: "a"})
	extended := base.With(calendar.Holiday{Date: calendar.MustParse("2020-12-25"), Name: "b"})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
	assert.False(t, base.IsHoliday(calendar.MustParse("2020-12-25")))
}

func TestHolidaySet_DuplicateKeepsFirst(t *testing.T) {
	d := calendar.MustParse("2020-01-01")
	set := calendar.NewHolidaySet(
		calendar.Holiday{Date: d, Name: "first"},
		calendar.Holiday{Date: d, Name: "second"},
	)
	h, _ := set.Lookup(d)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, "first", h.Name)
}

func TestHolidaySet_Between(t *testing.T) {
	set := calendar.DefaultHolidays()

	got := set.Between(calendar.Year(2015))
	require.Len(t, got, 10)
	assert.Equal(t, "2015-01-01", got[0].Date.String())
	assert.Equal(t, "2015-12-25", got[9].Date.String())

	open := set.Between(calendar.Period{Start: calendar.MustParse("2015-11-01")})
	assert.Len(t, open, 3)
}

// =============================================================================
// PERIOD
// =============================================================================

func TestPeriod(t *testing.T) {
	p := calendar.Period{Start: calendar.MustParse("2014-02-27"), End: calendar.MustParse("2014-03-02")}
	require.NoError(t, p.Validate())
	assert.Len(t, p.Days(), 4)
	assert.True(t, p.Contains(calendar.MustParse("2014-03-02")))
	assert.False(t, p.Contains(calendar.MustParse("2014-03-03")))
	assert.Equal(t, "[2014-02-27, 2014-03-02]", p.String())

	reversed := calendar.Period{Start: p.End, End: p.Start}
	assert.Error(t, reversed.Validate())
	assert.Nil(t, calendar.Period{}.Days())
	assert.Equal(t, "[..., ...]", calendar.Period{}.String())
}
