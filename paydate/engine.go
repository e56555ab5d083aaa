package paydate

import (
	"go.uber.org/zap"

	"github.com/warp/paydate-engine/calendar"
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine classifies and corrects paydates against a fixed holiday set.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	Holidays *calendar.HolidaySet
	Logger   *zap.Logger
}

// NewEngine builds an engine over holidays. A nil logger disables logging.
func NewEngine(holidays *calendar.HolidaySet, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Holidays: holidays, Logger: logger}
}

func (e *Engine) IsHoliday(d calendar.Date) bool { return e.Holidays.IsHoliday(d) }
func (e *Engine) IsWeekend(d calendar.Date) bool { return d.IsWeekend() }

func (e *Engine) IsValidPaydate(d calendar.Date) bool {
	return !e.IsHoliday(d) && !e.IsWeekend(d)
}

// Correct moves d until it is neither a holiday nor a weekend day.
//
// Holidays move backward: Monday to the previous Friday, Sunday to the
// previous Friday, any other day by one. Non-holiday weekend days move
// forward by one. Backward moves never land on a weekend, so once the
// walk turns backward it only decreases and ends within a finite set.
func (e *Engine) Correct(d calendar.Date) calendar.Date {
	current := d
	for !e.IsValidPaydate(current) {
		if e.IsHoliday(current) {
			switch current.ISOWeekday() {
			case 1:
				current = current.AddDays(-3)
			case 7:
				current = current.AddDays(-2)
			default:
				current = current.AddDays(-1)
			}
			continue
		}
		current = current.AddDays(1)
	}
	if current != d {
		e.logger().Debug("paydate corrected",
			zap.String("op", "paydate.Correct"),
			zap.Stringer("from", d),
			zap.Stringer("to", current),
		)
	}
	return current
}

// initialCapacity bounds the up-front allocation in Next; longer
// sequences grow by append.
const initialCapacity = 1024

// Next returns count paydates after first. Each date is the previous
// corrected date advanced by one increment and then corrected, so
// corrections carry forward.
func (e *Engine) Next(freq Frequency, first calendar.Date, count int) []calendar.Date {
	if count < 0 {
		count = 0
	}
	dates := make([]calendar.Date, 0, min(count, initialCapacity))
	current := first
	for i := 0; i < count; i++ {
		current = e.Correct(freq.Advance(current))
		dates = append(dates, current)
	}
	return dates
}

// CalculateNextPaydates validates its arguments and returns the next
// count paydates after firstPaydate. On a validation failure it returns
// a *ValidationError and no dates.
func (e *Engine) CalculateNextPaydates(kind, firstPaydate string, count int) ([]calendar.Date, error) {
	req, err := NewRequest(kind, firstPaydate, count)
	if err != nil {
		return nil, err
	}
	return e.Generate(req), nil
}

// Generate runs an already validated request.
func (e *Engine) Generate(req Request) []calendar.Date {
	freq := req.Kind.Frequency()
	dates := e.Next(freq, req.FirstPaydate, req.Count)
	e.logger().Debug("paydates generated",
		zap.String("op", "paydate.Generate"),
		zap.String("frequency", string(req.Kind)),
		zap.Stringer("first_paydate", req.FirstPaydate),
		zap.Int("count", len(dates)),
	)
	return dates
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
