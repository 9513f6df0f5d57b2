// Package content provides the immutable, read-only record tables the game
// engine is given at startup: monsters, weapons, armors, potions, spells,
// traps, magic rings, and dialogue strings. Tables are loaded once from YAML
// files on disk and are safe to share across sessions (spec §4.2, §5).
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duskward/labyrinth/internal/game/dice"
)

// Named is implemented by every record kind a Table can hold.
type Named interface {
	RecordName() string
}

// Table is a generic, name-keyed, immutable collection of content records.
//
// Invariant: record names are unique within a Table after construction.
type Table[T Named] struct {
	byName map[string]T
	order  []string // preserves load order for deterministic All()
}

// NewTable builds a Table from a slice of records.
//
// Precondition: no two records share a name (case-sensitive).
// Postcondition: Returns a Table with len(records) entries, or an error on duplicate names.
func NewTable[T Named](records []T) (*Table[T], error) {
	t := &Table[T]{byName: make(map[string]T, len(records))}
	for _, r := range records {
		name := r.RecordName()
		if _, exists := t.byName[name]; exists {
			return nil, fmt.Errorf("content: duplicate record name %q", name)
		}
		t.byName[name] = r
		t.order = append(t.order, name)
	}
	return t, nil
}

// All returns every record in load order.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}

// ByName looks up a record by its exact name.
//
// Postcondition: Returns (record, true) if found, or (zero, false) otherwise.
func (t *Table[T]) ByName(name string) (T, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Len returns the number of records in the table.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// WeightedRandom draws one record using weightOf(record) as its relative
// weight. Records with weight <= 0 are never selected unless every record
// has weight <= 0, in which case selection is uniform.
//
// Precondition: t.Len() > 0; src must be non-nil.
// Postcondition: Returns a record from the table.
func (t *Table[T]) WeightedRandom(src dice.Source, weightOf func(T) float64) (T, bool) {
	var zero T
	if len(t.order) == 0 {
		return zero, false
	}

	records := t.All()
	total := 0.0
	weights := make([]float64, len(records))
	for i, r := range records {
		w := weightOf(r)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}

	if total <= 0 {
		return records[src.Intn(len(records))], true
	}

	// Scale to an integer draw space for determinism across dice.Source implementations.
	const precision = 1_000_000
	scaled := int(total * precision)
	if scaled <= 0 {
		return records[src.Intn(len(records))], true
	}
	roll := src.Intn(scaled)
	cursor := 0
	for i, w := range weights {
		cursor += int(w * precision)
		if roll < cursor {
			return records[i], true
		}
	}
	return records[len(records)-1], true
}

// Filter returns the subset of records for which pred returns true, in load order.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, name := range t.order {
		r := t.byName[name]
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// loadYAMLDir reads every *.yaml/*.yml file in dir, unmarshalling each into a
// T via decode, and returns the accumulated slice. Mirrors the teacher's
// per-directory YAML loader shape (ruleset.LoadClasses, world.LoadZonesFromDir).
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all decoded records (possibly empty) or the first error encountered.
func loadYAMLDir[T any](dir string, decode func([]byte) ([]T, error)) ([]T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") || strings.HasSuffix(n, ".yml") {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	var all []T
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("content: reading %s: %w", name, err)
		}
		records, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("content: parsing %s: %w", name, err)
		}
		all = append(all, records...)
	}
	return all, nil
}

// decodeYAMLList unmarshals data as a top-level YAML list of T. Each content
// file may hold one or many records of its kind.
func decodeYAMLList[T any](data []byte) ([]T, error) {
	var list []T
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
