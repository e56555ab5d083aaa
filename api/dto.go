/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, keeping the wire
  contract apart from the paydate and calendar types.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Response wrappers

VALIDATION:
  Request bodies check field presence with ozzo-validation. Argument
  semantics (frequency kind, date format, count) are validated by the
  paydate package so the error codes match the library's.
*/
package api

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/warp/paydate-engine/calendar"
	"github.com/warp/paydate-engine/paydate"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the body of POST /api/paydates.
type CalculateRequest struct {
	Frequency    string `json:"frequency"`
	FirstPaydate string `json:"first_paydate"`
	// Count is kept raw so a non-numeric value is reported as
	// invalid_count rather than as a malformed body.
	Count       json.RawMessage `json:"count"`
	AnnualGross string          `json:"annual_gross,omitempty"`
}

func (r CalculateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Frequency, validation.Required),
		validation.Field(&r.FirstPaydate, validation.Required),
		validation.Field(&r.Count, validation.Required),
	)
}

// CountText returns the count token without JSON string quotes.
func (r CalculateRequest) CountText() string {
	return strings.Trim(strings.TrimSpace(string(r.Count)), `"`)
}

// FrequencyDTO describes the resolved frequency.
type FrequencyDTO struct {
	Kind  string `json:"kind"`
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// PaydateDTO is one generated paydate.
type PaydateDTO struct {
	Date  string `json:"date"`
	Gross string `json:"gross,omitempty"`
}

// CalculateResponse is the result of POST /api/paydates.
type CalculateResponse struct {
	Frequency    FrequencyDTO `json:"frequency"`
	FirstPaydate string       `json:"first_paydate"`
	Paydates     []PaydateDTO `json:"paydates"`
}

// DateInfoDTO classifies a single date.
type DateInfoDTO struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	Holiday      bool   `json:"holiday"`
	HolidayName  string `json:"holiday_name,omitempty"`
	Weekend      bool   `json:"weekend"`
	ValidPaydate bool   `json:"valid_paydate"`
	Corrected    string `json:"corrected"`
}

// ShiftResponse is the result of GET /api/dates/{date}/shift.
type ShiftResponse struct {
	From      string `json:"from"`
	Count     int    `json:"count"`
	Unit      string `json:"unit"`
	Direction string `json:"direction"`
	Date      string `json:"date"`
}

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	Date    string `json:"date"`
	Name    string `json:"name,omitempty"`
	Weekday string `json:"weekday"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Code    string          `json:"code,omitempty"`
	Details []FieldErrorDTO `json:"details,omitempty"`
}

// FieldErrorDTO names one rejected field.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toFrequencyDTO(f paydate.Frequency) FrequencyDTO {
	return FrequencyDTO{Kind: string(f.Kind), Unit: f.Unit.String(), Count: f.Count}
}

func toPaydateDTOs(payments []paydate.Payment, withGross bool) []PaydateDTO {
	dtos := make([]PaydateDTO, len(payments))
	for i, p := range payments {
		dtos[i] = PaydateDTO{Date: p.Date.String()}
		if withGross {
			dtos[i].Gross = p.Gross.StringFixed(2)
		}
	}
	return dtos
}

func toHolidayDTOs(holidays []calendar.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, len(holidays))
	for i, h := range holidays {
		dtos[i] = HolidayDTO{Date: h.Date.String(), Name: h.Name, Weekday: h.Date.Weekday().String()}
	}
	return dtos
}
