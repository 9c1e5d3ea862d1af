package identified

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Identifiable is implemented by element types that expose a stable
// identifier. The value returned by Identity must not change for the
// element's lifetime inside a collection.
type Identifiable[ID comparable] interface {
	Identity() ID
}

// Map is an ordered collection of uniquely-identified elements. It keeps an
// insertion-order sequence of identifiers next to an id-keyed index, so
// lookup, update, and removal by identifier are O(1) while iteration order
// stays stable.
//
// The zero value is ready to use.
type Map[ID comparable, E Identifiable[ID]] struct {
	order []ID
	elems map[ID]E
}

// New creates a Map populated with the given elements in order. Elements
// sharing an identifier collapse per Set semantics: the last value wins, the
// first position is kept.
func New[ID comparable, E Identifiable[ID]](elems ...E) *Map[ID, E] {
	m := &Map[ID, E]{}
	for _, e := range elems {
		m.Set(e)
	}
	return m
}

// Set inserts or replaces an element. When the element's identifier is
// already present the value is replaced in place and the element keeps its
// position; otherwise the element is appended at the end. It reports whether
// the identifier was newly inserted.
func (m *Map[ID, E]) Set(e E) bool {
	id := e.Identity()
	if m.elems == nil {
		m.elems = make(map[ID]E)
	}
	_, exists := m.elems[id]
	m.elems[id] = e
	if !exists {
		m.order = append(m.order, id)
	}
	return !exists
}

// Get returns the element for id. The second return value reports whether
// the identifier is present; an absent identifier is a normal outcome, not
// an error.
func (m *Map[ID, E]) Get(id ID) (E, bool) {
	e, ok := m.elems[id]
	return e, ok
}

// Has reports whether id is present.
func (m *Map[ID, E]) Has(id ID) bool {
	_, ok := m.elems[id]
	return ok
}

// Update applies fn to the element at id and stores the result. It reports
// whether the element was found; an absent identifier is a no-op. The
// mutation must not change the element's identity — doing so would break the
// order/index bijection, so Update panics if it detects one.
func (m *Map[ID, E]) Update(id ID, fn func(*E)) bool {
	e, ok := m.elems[id]
	if !ok {
		return false
	}
	fn(&e)
	if e.Identity() != id {
		panic(fmt.Sprintf("identified: Update changed element identity %v to %v", id, e.Identity()))
	}
	m.elems[id] = e
	return true
}

// Delete removes the element at id and returns it. The order of the
// remaining elements is preserved. Deleting an absent identifier returns
// the zero element and false.
func (m *Map[ID, E]) Delete(id ID) (E, bool) {
	e, ok := m.elems[id]
	if !ok {
		var zero E
		return zero, false
	}
	delete(m.elems, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return e, true
}

// DeleteOffsets removes the elements at the given positional offsets. Each
// offset is resolved to its current identifier before any removal happens,
// so the offsets always refer to the order at call time. Out-of-range
// offsets are ignored. It returns the number of elements removed.
func (m *Map[ID, E]) DeleteOffsets(offsets ...int) int {
	ids := make([]ID, 0, len(offsets))
	for _, off := range offsets {
		if off < 0 || off >= len(m.order) {
			continue
		}
		ids = append(ids, m.order[off])
	}
	removed := 0
	for _, id := range ids {
		if _, ok := m.Delete(id); ok {
			removed++
		}
	}
	return removed
}

// IDAt resolves a positional offset to the identifier currently at that
// position. Callers handling positional events should resolve the offset
// immediately and carry the identifier across any asynchronous boundary.
func (m *Map[ID, E]) IDAt(offset int) (ID, bool) {
	if offset < 0 || offset >= len(m.order) {
		var zero ID
		return zero, false
	}
	return m.order[offset], true
}

// Len returns the number of elements.
func (m *Map[ID, E]) Len() int {
	return len(m.order)
}

// IDs returns the identifiers in current order.
func (m *Map[ID, E]) IDs() []ID {
	return slices.Clone(m.order)
}

// Slice returns the elements in current order.
func (m *Map[ID, E]) Slice() []E {
	out := make([]E, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.elems[id])
	}
	return out
}

// Elements returns an iterator over the elements in current order. The
// sequence is lazy and restartable; every ranging pass reads the live
// collection, so mutations made between passes are visible.
func (m *Map[ID, E]) Elements() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, id := range m.order {
			if !yield(m.elems[id]) {
				return
			}
		}
	}
}

// All returns an iterator over identifier/element pairs in current order.
func (m *Map[ID, E]) All() iter.Seq2[ID, E] {
	return func(yield func(ID, E) bool) {
		for _, id := range m.order {
			if !yield(id, m.elems[id]) {
				return
			}
		}
	}
}

// Clone returns a copy of the collection. Elements are copied by value;
// pointer elements still share their referents.
func (m *Map[ID, E]) Clone() *Map[ID, E] {
	c := &Map[ID, E]{order: slices.Clone(m.order)}
	if m.elems != nil {
		c.elems = make(map[ID]E, len(m.elems))
		for id, e := range m.elems {
			c.elems[id] = e
		}
	}
	return c
}

// Equal reports whether the two collections hold deeply equal elements in
// the same order.
func (m *Map[ID, E]) Equal(other *Map[ID, E]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.order) != len(other.order) {
		return false
	}
	for i, id := range m.order {
		if other.order[i] != id {
			return false
		}
		if !reflect.DeepEqual(m.elems[id], other.elems[id]) {
			return false
		}
	}
	return true
}
