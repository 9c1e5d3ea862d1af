package identified

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The wire form of a Map is an ordered array of element payloads. Each
// payload carries its own identifier field, so nothing is stored redundantly
// and any document whose elements self-describe their identity round-trips.

// MarshalJSON encodes the collection as a JSON array in current order.
func (m *Map[ID, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Slice())
}

// UnmarshalJSON decodes a JSON array of elements, rebuilding order and index
// from the element identities. Duplicate identifiers collapse per Set
// semantics.
func (m *Map[ID, E]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("failed to decode element array: %w", err)
	}
	m.reset(elems)
	return nil
}

// MarshalYAML encodes the collection as a YAML sequence in current order.
func (m *Map[ID, E]) MarshalYAML() (interface{}, error) {
	return m.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence of elements.
func (m *Map[ID, E]) UnmarshalYAML(value *yaml.Node) error {
	var elems []E
	if err := value.Decode(&elems); err != nil {
		return fmt.Errorf("failed to decode element sequence: %w", err)
	}
	m.reset(elems)
	return nil
}

func (m *Map[ID, E]) reset(elems []E) {
	m.order = m.order[:0]
	m.elems = make(map[ID]E, len(elems))
	for _, e := range elems {
		m.Set(e)
	}
}
