// Package validation checks persisted item data before it is loaded into a
// collection. The collection itself maintains its invariants on every
// operation; this package catches files that were edited by hand or written
// by a buggy producer.
package validation

import (
	"fmt"

	"github.com/arthur-debert/identified/types"
)

// ValidateItems checks that a persisted item sequence can back an
// identity-indexed collection: every item carries an identifier and no
// identifier appears twice.
func ValidateItems(items []types.Item) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.UUID == "" {
			return fmt.Errorf("item at position %d has no uuid", i)
		}
		if prev, dup := seen[item.UUID]; dup {
			return fmt.Errorf("duplicate uuid %s at positions %d and %d", item.UUID, prev, i)
		}
		seen[item.UUID] = i
	}
	return nil
}
