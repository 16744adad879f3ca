package attendance

import (
	"context"
)

// EventRepository defines data access for the append-only event log.
// Listings are ordered by (timestamp, id) so ties keep insertion order.
type EventRepository interface {
	// Create persists a new event and returns it with the assigned ID.
	Create(ctx context.Context, event Event) (Event, error)

	// GetByID retrieves a single event.
	GetByID(ctx context.Context, id int64) (Event, error)

	// Update rewrites an existing event (admin correction path).
	Update(ctx context.Context, event Event) error

	// Delete removes an event.
	Delete(ctx context.Context, id int64) error

	// ListByMonth returns every employee's events for a month ("2006-01").
	ListByMonth(ctx context.Context, month string) ([]Event, error)

	// ListByEmployeeAndMonth returns one employee's events for a month.
	ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]Event, error)

	// ListByEmployeeAndDay returns one employee's events for a single day
	// ("2006-01-02").
	ListByEmployeeAndDay(ctx context.Context, employeeID, day string) ([]Event, error)
}
