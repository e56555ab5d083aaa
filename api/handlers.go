/*
handlers.go - HTTP API handlers for the paydate engine

PURPOSE:
  Exposes paydate generation and date classification over REST. Handles
  request parsing and JSON serialization; every calculation is delegated
  to paydate.Engine.

ENDPOINTS:
  POST /api/paydates                 Generate the next N paydates
  GET  /api/dates/{date}             Holiday/weekend/valid classification
  GET  /api/dates/{date}/shift       Shift a date by N days or months
  GET  /api/holidays?from=&to=       Holidays in an inclusive window

ERROR HANDLING:
  400 with a stable code for every validation failure:
    invalid_frequency_kind, invalid_date_format, invalid_count,
    invalid_amount, invalid_unit, invalid_request
  No dates are returned alongside an error.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - paydate/errors.go: Error taxonomy
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/paydate-engine/calendar"
	"github.com/warp/paydate-engine/paydate"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine   *paydate.Engine
	Logger   *zap.Logger
	MaxCount int // upper bound on count per request; 0 means unbounded
}

// NewHandler creates a handler over engine.
func NewHandler(engine *paydate.Engine, logger *zap.Logger, maxCount int) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Engine: engine, Logger: logger, MaxCount: maxCount}
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// PAYDATE ENDPOINTS
// =============================================================================

// CalculatePaydates generates the next paydates.
// POST /api/paydates
func (h *Handler) CalculatePaydates(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "invalid_request", nil)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	calc, err := paydate.ParseRequest(req.Frequency, req.FirstPaydate, req.CountText())
	if err != nil {
		h.writeValidationError(w, err)
		return
	}
	if h.MaxCount > 0 && calc.Count > h.MaxCount {
		h.writeValidationError(w, &paydate.ValidationError{
			Field:  "count",
			Value:  strconv.Itoa(calc.Count),
			Reason: fmt.Sprintf("must not exceed %d", h.MaxCount),
			Err:    paydate.ErrInvalidCount,
		})
		return
	}

	withGross := req.AnnualGross != ""
	annual := decimal.Zero
	if withGross {
		if annual, err = paydate.ParseAmount(req.AnnualGross); err != nil {
			h.writeValidationError(w, err)
			return
		}
	}

	payments := h.Engine.Schedule(calc, annual)
	writeJSON(w, http.StatusOK, CalculateResponse{
		Frequency:    toFrequencyDTO(calc.Kind.Frequency()),
		FirstPaydate: calc.FirstPaydate.String(),
		Paydates:     toPaydateDTOs(payments, withGross),
	})
}

// ClassifyDate reports whether a date is a holiday, a weekend day and a
// valid paydate, and where correction would move it.
// GET /api/dates/{date}
func (h *Handler) ClassifyDate(w http.ResponseWriter, r *http.Request) {
	d, err := paydate.ParseDate("date", chi.URLParam(r, "date"))
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	e := h.Engine
	holiday, isHoliday := e.Holidays.Lookup(d)
	writeJSON(w, http.StatusOK, DateInfoDTO{
		Date:         d.String(),
		Weekday:      d.Weekday().String(),
		Holiday:      isHoliday,
		HolidayName:  holiday.Name,
		Weekend:      e.IsWeekend(d),
		ValidPaydate: e.IsValidPaydate(d),
		Corrected:    e.Correct(d).String(),
	})
}

// ShiftDate moves a date forward or backward by count days or months.
// GET /api/dates/{date}/shift?count=N&unit=day|month&direction=forward|backward
func (h *Handler) ShiftDate(w http.ResponseWriter, r *http.Request) {
	d, err := paydate.ParseDate("date", chi.URLParam(r, "date"))
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	q := r.URL.Query()
	countText := q.Get("count")
	if countText == "" {
		countText = "1"
	}
	count, err := paydate.ParseCount(countText)
	if err != nil {
		h.writeValidationError(w, err)
		return
	}
	unit, err := paydate.ParseUnit(q.Get("unit"))
	if err != nil {
		h.writeValidationError(w, err)
		return
	}
	direction := q.Get("direction")
	if err := validation.Validate(direction, validation.In("forward", "backward")); err != nil {
		h.writeValidationError(w, validation.Errors{"direction": err})
		return
	}
	if direction == "" {
		direction = "forward"
	}

	shifted := paydate.IncreaseDate(d, count, unit)
	if direction == "backward" {
		shifted = paydate.DecreaseDate(d, count, unit)
	}

	writeJSON(w, http.StatusOK, ShiftResponse{
		From:      d.String(),
		Count:     count,
		Unit:      unit.String(),
		Direction: direction,
		Date:      shifted.String(),
	})
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

// ListHolidays returns the engine's holidays, optionally limited to an
// inclusive window.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	var period calendar.Period
	for _, bound := range []struct {
		param string
		dst   *calendar.Date
	}{{"from", &period.Start}, {"to", &period.End}} {
		raw := r.URL.Query().Get(bound.param)
		if raw == "" {
			continue
		}
		d, err := paydate.ParseDate(bound.param, raw)
		if err != nil {
			h.writeValidationError(w, err)
			return
		}
		*bound.dst = d
	}
	if err := period.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "invalid_request", nil)
		return
	}

	holidays := h.Engine.Holidays.Between(period)
	writeJSON(w, http.StatusOK, map[string]any{"holidays": toHolidayDTOs(holidays)})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, code string, details []FieldErrorDTO) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code, Details: details})
}

// writeValidationError maps paydate and ozzo validation errors to a 400.
func (h *Handler) writeValidationError(w http.ResponseWriter, err error) {
	var verr *paydate.ValidationError
	if errors.As(err, &verr) {
		h.Logger.Debug("request rejected",
			zap.String("op", "api.validate"),
			zap.String("field", verr.Field),
			zap.Error(err),
		)
		writeError(w, http.StatusBadRequest, verr.Error(), paydate.Code(err), []FieldErrorDTO{
			{Field: verr.Field, Message: verr.Reason},
		})
		return
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		details := make([]FieldErrorDTO, 0, len(fields))
		for name, ferr := range fields {
			details = append(details, FieldErrorDTO{Field: name, Message: ferr.Error()})
		}
		sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })
		writeError(w, http.StatusBadRequest, "Invalid request", "invalid_request", details)
		return
	}

	h.Logger.Error("unexpected error", zap.String("op", "api.validate"), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal error", "", nil)
}
