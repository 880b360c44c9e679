package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"RelAlgDb/internal/relation"
)

// Catalog is a read-only source of named base relations.
type Catalog interface {
	// Lookup returns an independent copy of the named relation. Names match
	// exactly and are case sensitive.
	Lookup(name string) (relation.Relation, bool)
	Names() []string
}

// MapCatalog is a Catalog backed by a map. It must not be modified after it
// is handed to an evaluator.
type MapCatalog map[string][]relation.Row

func (c MapCatalog) Lookup(name string) (relation.Relation, bool) {
	rows, ok := c[name]
	if !ok {
		return relation.Relation{}, false
	}
	return relation.New(rows...).Clone(), true
}

func (c MapCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the sample Employees and Departments relations.
func Default() MapCatalog {
	return MapCatalog{
		"Employees": {
			relation.NewRow("id", int64(1), "name", "Alice", "dept", "HR", "age", int64(30)),
			relation.NewRow("id", int64(2), "name", "Bob", "dept", "Engineering", "age", int64(25)),
			relation.NewRow("id", int64(3), "name", "Charlie", "dept", "Engineering", "age", int64(35)),
		},
		"Departments": {
			relation.NewRow("dept", "HR", "manager", "Sarah"),
			relation.NewRow("dept", "Engineering", "manager", "Alice"),
		},
	}
}

// LoadFile reads a catalog from a JSON document mapping relation names to
// arrays of row objects.
func LoadFile(path string) (MapCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (MapCatalog, error) {
	var raw map[string][]relation.Row
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return MapCatalog(raw), nil
}

// Load returns the catalog at path, or the default catalog when path is empty.
func Load(path string) (MapCatalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
