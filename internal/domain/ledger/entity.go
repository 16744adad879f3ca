package ledger

import "time"

// EntryType distinguishes the two financial facts recorded per day.
type EntryType string

const (
	TypeAdvance EntryType = "advance"
	TypeOrder   EntryType = "order"
)

// Entry is an externally recorded per-day financial fact. Entries are keyed
// by (employee, date) and are never derived from the attendance event log;
// period summaries merge them in alongside the hour computation.
type Entry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       EntryType
	Amount     float64
	OrderRef   *string
	Items      []OrderItem
	CreatedAt  time.Time
}

// OrderItem is one itemized line of an order entry. Items are stored with the
// entry and deleted with it; the entry amount is authoritative for totals.
type OrderItem struct {
	ID      string
	EntryID string
	Name    string
	Price   float64
}

// DayOfMonth returns the calendar day the entry is keyed to.
func (e Entry) DayOfMonth() int {
	return e.Date.Day()
}
