package ledger

import "context"

// Service defines business operations on the financial ledger.
type Service interface {
	// RecordAdvance records a cash advance handed out on a given day.
	RecordAdvance(ctx context.Context, req RecordAdvanceRequest) (EntryResponse, error)

	// RecordOrder records a delivered order credited to an employee.
	RecordOrder(ctx context.Context, req RecordOrderRequest) (EntryResponse, error)

	// List returns an employee's entries for a month.
	List(ctx context.Context, employeeID, month string) ([]EntryResponse, error)
}
