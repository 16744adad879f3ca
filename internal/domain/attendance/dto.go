package attendance

import (
	"time"

	"github.com/chafiq1992/attendance-app/internal/pkg/validator"
)

// ========================================
// KIOSK / PUNCH DTOs
// ========================================

type PunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := NormalizeKind(r.Action); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of clockin, clockout, startbreak, endbreak, startextra, endextra",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// EVENT CORRECTION DTOs (admin)
// ========================================

type CreateEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Timestamp  string `json:"timestamp"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := NormalizeKind(r.Kind); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "unknown event kind",
		})
	}

	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be RFC 3339",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEventRequest struct {
	ID         int64   `json:"-"`
	EmployeeID *string `json:"employee_id"`
	Kind       *string `json:"kind"`
	Timestamp  *string `json:"timestamp"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == nil && r.Kind == nil && r.Timestamp == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of employee_id, kind, timestamp is required",
		})
	}

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty",
		})
	}

	if r.Kind != nil {
		if _, ok := NormalizeKind(*r.Kind); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "kind",
				Message: "unknown event kind",
			})
		}
	}

	if r.Timestamp != nil {
		if _, err := time.Parse(time.RFC3339, *r.Timestamp); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC 3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventFilter struct {
	EmployeeID *string
	Month      string
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be formatted as YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type EventResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Timestamp  string `json:"timestamp"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// DaySummaryResponse is the wire form of a DaySummary.
type DaySummaryResponse struct {
	EmployeeID  string          `json:"employee_id"`
	Day         string          `json:"day"`
	Status      string          `json:"status"`
	Online      bool            `json:"online"`
	WorkedHours float64         `json:"worked_hours"`
	ExtraHours  float64         `json:"extra_hours"`
	Timeline    []EventResponse `json:"timeline"`
}

// DirectoryRow is one roster line: today's live status plus month-to-date
// aggregates.
type DirectoryRow struct {
	EmployeeID string  `json:"employee_id"`
	Status     string  `json:"status"`
	Online     bool    `json:"online"`
	WorkedDays int     `json:"worked_days"`
	ExtraHours float64 `json:"extra_hours"`
}
