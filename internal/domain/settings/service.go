package settings

import "context"

// Service exposes settings with defaults applied.
type Service interface {
	// Policy returns the reduction policy. Missing or malformed values fall
	// back to Default(); a storage failure degrades to defaults as well.
	Policy(ctx context.Context) Policy

	// GetAll returns the raw stored settings.
	GetAll(ctx context.Context) (map[string]string, error)

	// Set updates one setting.
	Set(ctx context.Context, req SetRequest) error
}
