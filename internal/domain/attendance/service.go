package attendance

import (
	"context"
)

// AttendanceService defines business logic over the event log. Every read
// recomputes its figures from the events in scope; nothing derived is stored,
// so a 30-second polling client can re-request any of these without drift.
type AttendanceService interface {
	// Punch records a kiosk action at server time and returns the updated
	// day summary for immediate display.
	Punch(ctx context.Context, req PunchRequest) (DaySummaryResponse, error)

	// Today returns the live day summary for one employee.
	Today(ctx context.Context, employeeID string) (DaySummaryResponse, error)

	// Overview returns today's day summary for every employee with events
	// this month (admin live table).
	Overview(ctx context.Context) ([]DaySummaryResponse, error)

	// Directory returns roster rows: today's status plus month-to-date
	// worked days and extra hours.
	Directory(ctx context.Context, month string) ([]DirectoryRow, error)

	// MonthlySheet returns one row per calendar day for the printable sheet.
	MonthlySheet(ctx context.Context, employeeID, month string) ([]MonthlyRow, error)

	// Summary returns the per-day hours map and month totals for the
	// employee dashboard.
	Summary(ctx context.Context, employeeID, month string) (MonthSummary, error)

	// Periods returns the two half-month payroll buckets with ledger
	// figures merged in.
	Periods(ctx context.Context, employeeID, month string) ([]PeriodSummary, error)

	// ListEvents returns raw events for admin review.
	ListEvents(ctx context.Context, filter EventFilter) ([]EventResponse, error)

	// CreateEvent backfills an event (admin correction path).
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)

	// UpdateEvent corrects an event's fields.
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, id int64) error
}
