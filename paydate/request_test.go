package paydate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/paydate-engine/paydate"
)

func TestParseRequest(t *testing.T) {
	req, err := paydate.ParseRequest("BIWEEKLY", "2015-03-06", " 4 ")
	require.NoError(t, err)
	assert.Equal(t, paydate.Biweekly, req.Kind)
	assert.Equal(t, "2015-03-06", req.FirstPaydate.String())
	assert.Equal(t, 4, req.Count)
}

func TestParseRequest_MatchesNewRequest(t *testing.T) {
	parsed, err := paydate.ParseRequest("MONTHLY", "2014-01-31", "12")
	require.NoError(t, err)
	built, err := paydate.NewRequest("MONTHLY", "2014-01-31", 12)
	require.NoError(t, err)
	assert.Equal(t, built, parsed)
}

func TestParseRequest_ReportsFirstFailingArgument(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		first   string
		count   string
		wantErr error
	}{
		{"bad kind wins", "YEARLY", "nope", "x", paydate.ErrInvalidFrequencyKind},
		{"bad date before bad count", "WEEKLY", "2015-13-01", "x", paydate.ErrInvalidDateFormat},
		{"non-numeric count", "WEEKLY", "2015-01-01", "three", paydate.ErrInvalidCount},
		{"fractional count", "WEEKLY", "2015-01-01", "2.5", paydate.ErrInvalidCount},
		{"negative count", "WEEKLY", "2015-01-01", "-2", paydate.ErrInvalidCount},
		{"empty count", "WEEKLY", "2015-01-01", "", paydate.ErrInvalidCount},
		{"count over maximum", "WEEKLY", "2015-01-01", "52001", paydate.ErrInvalidCount},
		{"count overflows int", "WEEKLY", "2015-01-01", "9223372036854775808", paydate.ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paydate.ParseRequest(tt.kind, tt.first, tt.count)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrorCodes(t *testing.T) {
	_, err := paydate.ParseCount("abc")
	assert.Equal(t, "invalid_count", paydate.Code(err))

	_, err = paydate.ParseDate("from", "2014-02-29")
	assert.Equal(t, "invalid_date_format", paydate.Code(err))
	var verr *paydate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "from", verr.Field)
	assert.Equal(t, "2014-02-29", verr.Value)

	assert.Equal(t, "", paydate.Code(assert.AnError))
	assert.False(t, paydate.IsValidationError(assert.AnError))
}

// =============================================================================
// PAY AMOUNTS
// =============================================================================

func TestGrossPerPeriod(t *testing.T) {
	tests := []struct {
		annual string
		kind   paydate.FrequencyKind
		want   string
	}{
		{"52000", paydate.Weekly, "1000"},
		{"60000", paydate.Biweekly, "2307.69"},
		{"50000", paydate.Monthly, "4166.67"},
		{"0", paydate.Monthly, "0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.annual, func(t *testing.T) {
			got := paydate.GrossPerPeriod(decimal.RequireFromString(tt.annual), tt.kind)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
	assert.True(t, paydate.GrossPerPeriod(decimal.NewFromInt(100), "DAILY").IsZero())
}

func TestParseAmount(t *testing.T) {
	amount, err := paydate.ParseAmount("61750.50")
	require.NoError(t, err)
	assert.Equal(t, "61750.5", amount.String())

	_, err = paydate.ParseAmount("-1")
	assert.ErrorIs(t, err, paydate.ErrInvalidAmount)
	_, err = paydate.ParseAmount("lots")
	assert.ErrorIs(t, err, paydate.ErrInvalidAmount)
}

func TestSchedule(t *testing.T) {
	req, err := paydate.NewRequest("MONTHLY", "2014-01-01", 3)
	require.NoError(t, err)

	payments := newTestEngine().Schedule(req, decimal.NewFromInt(36000))
	require.Len(t, payments, 3)
	assert.Equal(t, "2014-02-03", payments[0].Date.String())
	for _, p := range payments {
		assert.True(t, decimal.NewFromInt(3000).Equal(p.Gross))
	}
}
