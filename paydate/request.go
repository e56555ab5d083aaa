package paydate

import (
	"strconv"
	"strings"

	"github.com/warp/paydate-engine/calendar"
)

// MaxCount is the largest count NewRequest accepts, a thousand years of
// weekly paydates.
const MaxCount = 52 * 1000

// Request is a validated paydate calculation.
type Request struct {
	Kind         FrequencyKind
	FirstPaydate calendar.Date
	Count        int
}

// NewRequest validates kind, then firstPaydate, then count, and reports
// the first argument that fails.
func NewRequest(kind, firstPaydate string, count int) (Request, error) {
	k, err := ParseFrequencyKind(kind)
	if err != nil {
		return Request{}, err
	}
	first, err := ParseDate("first_paydate", firstPaydate)
	if err != nil {
		return Request{}, err
	}
	if err := checkCount(strconv.Itoa(count), count); err != nil {
		return Request{}, err
	}
	return Request{Kind: k, FirstPaydate: first, Count: count}, nil
}

// ParseRequest is NewRequest for textual input such as CLI arguments or
// query strings.
func ParseRequest(kind, firstPaydate, count string) (Request, error) {
	k, err := ParseFrequencyKind(kind)
	if err != nil {
		return Request{}, err
	}
	first, err := ParseDate("first_paydate", firstPaydate)
	if err != nil {
		return Request{}, err
	}
	n, err := ParseCount(count)
	if err != nil {
		return Request{}, err
	}
	return Request{Kind: k, FirstPaydate: first, Count: n}, nil
}

// ParseCount reads a decimal integer in [0, MaxCount].
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid(ErrInvalidCount, "count", s, "must be a whole number")
	}
	if err := checkCount(s, n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkCount(text string, n int) error {
	switch {
	case n < 0:
		return invalid(ErrInvalidCount, "count", text, "must not be negative")
	case n > MaxCount:
		return invalid(ErrInvalidCount, "count", text, "must not exceed "+strconv.Itoa(MaxCount))
	}
	return nil
}

// ParseDate reads a YYYY-MM-DD date, reporting failures against field.
func ParseDate(field, s string) (calendar.Date, error) {
	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, invalid(ErrInvalidDateFormat, field, s, "must be a valid date in YYYY-MM-DD format")
	}
	return d, nil
}
