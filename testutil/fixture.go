// Package testutil provides a shared fixture: a store populated with a
// small, known universe of items that tests can address by name instead of
// rebuilding their own setup.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/identified/identified/store"
	"github.com/arthur-debert/identified/types"
)

// Universe provides typed access to the fixture items, in display order.
type Universe struct {
	Groceries types.Item // position 0, pending
	Laundry   types.Item // position 1, done
	Taxes     types.Item // position 2, pending
	CallMom   types.Item // position 3, done
	FixBike   types.Item // position 4, pending

	// All items keyed by UUID for direct access.
	ByUUID map[string]types.Item
}

// Titles returns the fixture titles in display order.
func (u *Universe) Titles() []string {
	return []string{
		u.Groceries.Title,
		u.Laundry.Title,
		u.Taxes.Title,
		u.CallMom.Title,
		u.FixBike.Title,
	}
}

// LoadUniverse creates a file-backed store in a test temp dir and populates
// it with the fixture items. The store is closed automatically when the
// test finishes.
func LoadUniverse(t *testing.T) (types.Store, *Universe) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "universe.json")
	s, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to create fixture store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	specs := []struct {
		title string
		done  bool
	}{
		{"Buy groceries", false},
		{"Do laundry", true},
		{"File taxes", false},
		{"Call mom", true},
		{"Fix bike", false},
	}

	u := &Universe{ByUUID: make(map[string]types.Item)}
	slots := []*types.Item{&u.Groceries, &u.Laundry, &u.Taxes, &u.CallMom, &u.FixBike}

	for i, spec := range specs {
		id, err := s.Add(spec.title)
		if err != nil {
			t.Fatalf("failed to add fixture item %q: %v", spec.title, err)
		}
		if spec.done {
			if err := s.Toggle(id); err != nil {
				t.Fatalf("failed to toggle fixture item %q: %v", spec.title, err)
			}
		}
		item, ok := s.Get(id)
		if !ok {
			t.Fatalf("fixture item %q not retrievable", spec.title)
		}
		*slots[i] = item
		u.ByUUID[id] = item
	}

	return s, u
}
