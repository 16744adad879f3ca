package settings

import "context"

// Repository defines data access for the key/value settings store.
type Repository interface {
	// GetAll returns every stored setting.
	GetAll(ctx context.Context) (map[string]string, error)

	// Set upserts a single setting.
	Set(ctx context.Context, key, value string) error
}
