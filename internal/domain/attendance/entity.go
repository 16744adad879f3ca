package attendance

import (
	"time"
)

// Kind identifies a punch action. The set is closed; legacy spreadsheet
// imports used "in"/"out" which NormalizeKind maps onto the canonical values.
type Kind string

const (
	KindClockIn    Kind = "clockin"
	KindClockOut   Kind = "clockout"
	KindStartBreak Kind = "startbreak"
	KindEndBreak   Kind = "endbreak"
	KindStartExtra Kind = "startextra"
	KindEndExtra   Kind = "endextra"
)

// NormalizeKind resolves a raw action string to a canonical Kind.
// Legacy synonyms: "in" → clockin, "out" → clockout.
func NormalizeKind(raw string) (Kind, bool) {
	switch Kind(raw) {
	case KindClockIn, KindClockOut, KindStartBreak, KindEndBreak, KindStartExtra, KindEndExtra:
		return Kind(raw), true
	}
	switch raw {
	case "in":
		return KindClockIn, true
	case "out":
		return KindClockOut, true
	}
	return "", false
}

// Status is the derived one-line state of an employee. It is never persisted;
// it is always recomputed from the event log.
type Status string

const (
	StatusOffline    Status = "Offline"
	StatusClockedIn  Status = "Clocked In"
	StatusOnBreak    Status = "On Break"
	StatusExtraHours Status = "Extra Hours"
	StatusClockedOut Status = "Clocked Out"
)

// Event is a single timestamped attendance action. Events are append-only from
// the kiosk; administrators may correct timestamps or delete rows afterwards.
type Event struct {
	ID         int64
	EmployeeID string
	Kind       Kind
	Timestamp  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Day returns the calendar day of the event as "2006-01-02".
func (e Event) Day() string {
	return e.Timestamp.Format("2006-01-02")
}
