package repository

import (
	"context"
)

// PreferenceRepository is the durable key-value store behind user preferences.
// Get returns domain.ErrPreferenceNotFound when the key has never been written.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Repositories struct {
	Preference PreferenceRepository

	// Close releases the underlying database handle.
	Close func() error
}
