// Package types holds the core types shared between the store, its
// persistence layer, and the CLI.
package types

import "time"

// Item is a single entry in a list. The UUID is assigned on creation and
// never changes; all store operations address items by it.
type Item struct {
	UUID      string    `json:"uuid" yaml:"uuid"`
	Title     string    `json:"title" yaml:"title"`
	Done      bool      `json:"done" yaml:"done"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Identity returns the item's stable identifier.
func (i Item) Identity() string {
	return i.UUID
}

// UpdateRequest specifies fields to update on an item. Nil fields are left
// untouched.
type UpdateRequest struct {
	Title *string
	Done  *bool
}

// Store defines the public interface for an identifier-keyed item store.
// All mutations are serialized through a single writer; positional offsets
// are accepted only by DeleteAtOffsets, which resolves them to identifiers
// before mutating.
type Store interface {
	// List returns all items in display order.
	List() []Item

	// Get returns the item with the given identifier.
	// An absent identifier returns (zero, false), never an error.
	Get(id string) (Item, bool)

	// Add creates a new item with the given title, appending it at the end.
	// Returns the UUID of the created item.
	Add(title string) (string, error)

	// Update modifies an existing item. Returns ErrNotFound (wrapped) when
	// the identifier is absent.
	Update(id string, updates UpdateRequest) error

	// Toggle flips an item's done state. Returns ErrNotFound (wrapped) when
	// the identifier is absent.
	Toggle(id string) error

	// Delete removes an item. It reports whether the item existed; deleting
	// an absent identifier is a normal outcome, not an error.
	Delete(id string) (bool, error)

	// DeleteAtOffsets removes the items at the given display positions.
	// Offsets are resolved to identifiers under the write lock before any
	// removal happens; out-of-range offsets are ignored. Returns the number
	// of items removed.
	DeleteAtOffsets(offsets ...int) (int, error)

	// Close persists any pending state and releases resources.
	Close() error
}
