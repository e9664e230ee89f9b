package storage

import "context"

// MetadataStorage stores numeric client metadata such as sync watermarks.
type MetadataStorage interface {
	// GetLong returns the value stored under key, or def when the key is absent.
	GetLong(ctx context.Context, key string, def int64) (int64, error)

	// SetLong stores value under key.
	SetLong(ctx context.Context, key string, value int64) error
}
