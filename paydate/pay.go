package paydate

import (
	"github.com/shopspring/decimal"

	"github.com/warp/paydate-engine/calendar"
)

// Payment is one paydate with its gross amount. Gross is zero when no
// annual amount was supplied.
type Payment struct {
	Date  calendar.Date
	Gross decimal.Decimal
}

// ParseAmount reads a non-negative decimal amount such as "52000" or
// "61750.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid(ErrInvalidAmount, "annual_gross", s, "must be a decimal number")
	}
	if amount.IsNegative() {
		return decimal.Zero, invalid(ErrInvalidAmount, "annual_gross", s, "must not be negative")
	}
	return amount, nil
}

// GrossPerPeriod splits an annual amount evenly across a kind's periods,
// rounded half away from zero to cents.
func GrossPerPeriod(annual decimal.Decimal, kind FrequencyKind) decimal.Decimal {
	periods := kind.PeriodsPerYear()
	if periods == 0 {
		return decimal.Zero
	}
	return annual.Div(decimal.NewFromInt(int64(periods))).Round(2)
}

// Schedule generates req's paydates and attaches the per-period share of
// annual to each.
func (e *Engine) Schedule(req Request, annual decimal.Decimal) []Payment {
	gross := GrossPerPeriod(annual, req.Kind)
	dates := e.Generate(req)
	payments := make([]Payment, len(dates))
	for i, d := range dates {
		payments[i] = Payment{Date: d, Gross: gross}
	}
	return payments
}
