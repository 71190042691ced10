// Package store provides the restorable key-value blob store used to
// persist the serialized session across restarts.
package store

// Store is a minimal key-value blob store. Implementations must treat
// values as opaque bytes.
type Store interface {
	// Get returns the blob for key, and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set writes the blob for key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
