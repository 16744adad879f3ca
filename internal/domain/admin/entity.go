package admin

import "time"

// User is an administrator account for the back-office pages.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// LogEntry is one line of the append-only admin action log. Data carries a
// JSON snapshot of whatever the action touched.
type LogEntry struct {
	ID        int64
	Action    string
	Data      string
	CreatedAt time.Time
}
