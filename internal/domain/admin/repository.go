package admin

import (
	"context"
	"time"
)

// UserRepository defines data access for administrator accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
}

// LogRepository defines data access for the admin action log.
type LogRepository interface {
	// Append records one action; failures must not abort the action itself.
	Append(ctx context.Context, action, data string) error

	// ListRecent returns the newest entries first.
	ListRecent(ctx context.Context, limit int) ([]LogEntry, error)

	// DeleteOlderThan prunes entries past the retention window and returns
	// how many rows were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
