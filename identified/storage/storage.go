// Package storage provides the persistence layer for the item store.
// It defines an interface for whole-snapshot persistence and provides a
// JSON file implementation.
package storage

import "github.com/arthur-debert/identified/identified/storage/internal"

// Snapshot is the complete persisted state: the ordered item array plus
// file metadata. Order in the array is display order; item identifiers are
// carried by the items themselves.
type Snapshot = internal.Snapshot

// Metadata contains snapshot bookkeeping.
type Metadata = internal.Metadata

// Storage defines the low-level interface for snapshot persistence. The
// store loads once at startup and saves the whole snapshot after each
// committed mutation, which matches the JSON file backend's natural
// behavior.
type Storage interface {
	// Load reads the entire snapshot from the backend. A backend with no
	// previous state returns an empty snapshot, not an error.
	Load() (*Snapshot, error)

	// Save writes the entire snapshot to the backend.
	Save(snap *Snapshot) error

	// Close releases any resources held by the storage.
	Close() error
}

// NewJSONStorage creates a JSON file-based storage implementation. The file
// is guarded by a sibling ".lock" file so multiple processes sharing the
// same path cannot interleave writes.
func NewJSONStorage(filePath string) Storage {
	return internal.NewJSONStorage(filePath)
}
