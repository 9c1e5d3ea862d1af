package identified_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/identified/identified"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	m := identified.New[int](
		task{ID: 1, Name: "A"},
		task{ID: 3, Name: "C", Done: true},
		task{ID: 2, Name: "B"},
	)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded identified.Map[int, task]
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !m.Equal(&decoded) {
		t.Errorf("round trip changed collection:\n in: %v\nout: %v", m.Slice(), decoded.Slice())
	}
	if diff := cmp.Diff([]int{1, 3, 2}, decoded.IDs()); diff != "" {
		t.Errorf("round trip changed order (-want +got):\n%s", diff)
	}
}

func TestJSONWireFormatIsOrderedArray(t *testing.T) {
	m := identified.New[int](task{ID: 2, Name: "B"}, task{ID: 1, Name: "A"})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The payload is a plain element array; identifiers live inside the
	// elements, nothing is stored twice.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("wire format is not an array: %v", err)
	}
	if len(raw) != 2 || raw[0]["name"] != "B" || raw[1]["name"] != "A" {
		t.Errorf("unexpected wire form: %s", data)
	}
}

func TestJSONEmptyCollection(t *testing.T) {
	m := identified.New[int, task]()

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestUnmarshalCollapsesDuplicateIDs(t *testing.T) {
	input := `[{"id":1,"name":"A"},{"id":2,"name":"B"},{"id":1,"name":"A2"}]`

	var m identified.Map[int, task]
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// Last value wins, first position is kept.
	if diff := cmp.Diff([]int{1, 2}, m.IDs()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	got, _ := m.Get(1)
	if got.Name != "A2" {
		t.Errorf("expected last duplicate value to win, got %+v", got)
	}
}

func TestUnmarshalReplacesExistingContents(t *testing.T) {
	m := identified.New[int](task{ID: 9, Name: "old"})

	if err := json.Unmarshal([]byte(`[{"id":1,"name":"A"}]`), m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if m.Has(9) {
		t.Error("previous contents survived unmarshal")
	}
	if diff := cmp.Diff([]int{1}, m.IDs()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	m := identified.New[int](
		task{ID: 1, Name: "A"},
		task{ID: 2, Name: "B", Done: true},
	)

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded identified.Map[int, task]
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !m.Equal(&decoded) {
		t.Errorf("round trip changed collection:\n in: %v\nout: %v", m.Slice(), decoded.Slice())
	}
}
