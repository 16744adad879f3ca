package ledger

import "context"

// Repository defines data access for ledger entries.
type Repository interface {
	// Create persists a new entry and returns it with the assigned ID.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// ListByEmployeeAndMonth returns an employee's entries for a month
	// ("2006-01") ordered by date.
	ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]Entry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}
