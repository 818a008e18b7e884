package contract

import "github.com/apkasten906/ai-pairing-metrics/schema"

// CacheStore is durable storage for (revision, path) snapshot content.
// Content at a resolved revision is immutable, so entries never expire
// and carry no version.
type CacheStore interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)

	// Set inserts or replaces a key/value pair in the store.
	Set(key string, value []byte) error

	// Clear removes all entries.
	Clear() error

	// GetStatus returns status information about the store.
	GetStatus() (schema.CacheStatus, error)

	// Close closes the underlying connection.
	Close() error
}
