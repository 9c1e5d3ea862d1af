// Package store implements an identifier-keyed item store on top of an
// identified.Map, persisted through the storage package.
//
// The store is the single owning context for the collection: every mutation
// funnels through one write lock, and asynchronous callers address items by
// UUID, never by a position captured earlier. The one positional entry
// point, DeleteAtOffsets, resolves offsets to UUIDs inside the write lock
// before anything is removed.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/arthur-debert/identified/identified"
	"github.com/arthur-debert/identified/identified/storage"
	"github.com/arthur-debert/identified/internal/validation"
	"github.com/arthur-debert/identified/types"
	"github.com/google/uuid"
)

// ErrNotFound is returned (wrapped) by operations that require an existing
// item when the identifier is absent. Callers test with errors.Is.
var ErrNotFound = errors.New("item not found")

// store implements types.Store.
type store struct {
	items    *identified.Map[string, types.Item]
	backend  storage.Storage
	lock     lockManager
	metadata storage.Metadata
	clock    func() time.Time
}

// New creates a Store backed by a JSON file at filePath. Existing state is
// loaded and validated; a missing file starts an empty list.
func New(filePath string) (types.Store, error) {
	return NewWithStorage(storage.NewJSONStorage(filePath))
}

// NewWithStorage creates a Store on top of an explicit storage backend.
func NewWithStorage(backend storage.Storage) (types.Store, error) {
	snap, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	if err := validation.ValidateItems(snap.Items); err != nil {
		return nil, fmt.Errorf("invalid store contents: %w", err)
	}

	return &store{
		items:    identified.New[string](snap.Items...),
		backend:  backend,
		metadata: snap.Metadata,
		clock:    time.Now,
	}, nil
}

// List returns all items in display order.
func (s *store) List() []types.Item {
	var result []types.Item
	_ = s.lock.execute(readOperation, func() error {
		result = s.items.Slice()
		return nil
	})
	return result
}

// Get returns the item with the given identifier. Absence is a normal
// outcome: the item may have been removed by the time a caller acts.
func (s *store) Get(id string) (types.Item, bool) {
	var (
		item types.Item
		ok   bool
	)
	_ = s.lock.execute(readOperation, func() error {
		item, ok = s.items.Get(id)
		return nil
	})
	return item, ok
}

// Add creates a new item and appends it at the end of the list.
func (s *store) Add(title string) (string, error) {
	id := uuid.New().String()
	err := s.lock.execute(writeOperation, func() error {
		now := s.clock()
		s.items.Set(types.Item{
			UUID:      id,
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return s.saveOrRollback(func() { s.items.Delete(id) })
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update applies a partial update to an existing item.
func (s *store) Update(id string, updates types.UpdateRequest) error {
	return s.lock.execute(writeOperation, func() error {
		prev, ok := s.items.Get(id)
		if !ok {
			return fmt.Errorf("update %s: %w", id, ErrNotFound)
		}
		s.items.Update(id, func(item *types.Item) {
			if updates.Title != nil {
				item.Title = *updates.Title
			}
			if updates.Done != nil {
				item.Done = *updates.Done
			}
			item.UpdatedAt = s.clock()
		})
		return s.saveOrRollback(func() { s.items.Set(prev) })
	})
}

// Toggle flips an item's done state.
func (s *store) Toggle(id string) error {
	return s.lock.execute(writeOperation, func() error {
		prev, ok := s.items.Get(id)
		if !ok {
			return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
		}
		s.items.Update(id, func(item *types.Item) {
			item.Done = !item.Done
			item.UpdatedAt = s.clock()
		})
		return s.saveOrRollback(func() { s.items.Set(prev) })
	})
}

// Delete removes an item by identifier. Deleting an absent identifier
// reports false and no error.
func (s *store) Delete(id string) (bool, error) {
	var existed bool
	err := s.lock.execute(writeOperation, func() error {
		prev := s.items.Clone()
		if _, ok := s.items.Delete(id); !ok {
			return nil
		}
		existed = true
		return s.saveOrRollback(func() { s.items = prev })
	})
	return existed, err
}

// DeleteAtOffsets removes the items at the given display positions. The
// offsets are translated to identifiers while the write lock is held, so a
// mutation issued between offset capture and execution cannot shift the
// targets. Out-of-range offsets are ignored.
func (s *store) DeleteAtOffsets(offsets ...int) (int, error) {
	var removed int
	err := s.lock.execute(writeOperation, func() error {
		prev := s.items.Clone()
		removed = s.items.DeleteOffsets(offsets...)
		if removed == 0 {
			return nil
		}
		return s.saveOrRollback(func() { s.items = prev })
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Close persists the current state and releases the backend.
func (s *store) Close() error {
	err := s.lock.execute(writeOperation, func() error {
		return s.save()
	})
	if cerr := s.backend.Close(); err == nil {
		err = cerr
	}
	return err
}

// save persists the current collection. Callers must hold the write lock.
func (s *store) save() error {
	snap := &storage.Snapshot{
		Items:    s.items.Slice(),
		Metadata: s.metadata,
	}
	if err := s.backend.Save(snap); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	s.metadata = snap.Metadata
	return nil
}

// saveOrRollback persists the current collection, undoing the in-memory
// mutation when the backend rejects it.
func (s *store) saveOrRollback(rollback func()) error {
	if err := s.save(); err != nil {
		rollback()
		return err
	}
	return nil
}
