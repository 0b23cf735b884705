package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicCatalog is reported by IncludeAll when full expansion would
// recurse through a catalog type already on the current descent path.
var ErrCyclicCatalog = errors.New("cyclic catalog")

// IncludeAll selects every field of the catalog on t, recursively fully
// expanding nested object fields through their catalog factories. Scalar
// fields become scalar selections; object fields become object selections
// whose nested trees are themselves fully expanded.
//
// Expansion fails when an object field carries no usable catalog factory, or
// when a catalog type recurs on the descent path (self- or mutually
// referential schemas have no finite full expansion). Errors from the latter
// wrap ErrCyclicCatalog and name the offending chain.
func IncludeAll(t *Tree, c *Catalog) error {
	return includeAll(t, c, nil)
}

func includeAll(t *Tree, c *Catalog, path []string) error {
	if c == nil {
		return errors.New("selection: nil catalog")
	}
	if c.Type != "" {
		for _, seen := range path {
			if seen == c.Type {
				chain := strings.Join(append(path, c.Type), " -> ")
				return fmt.Errorf("selection: %w: %s", ErrCyclicCatalog, chain)
			}
		}
		path = append(path, c.Type)
	}
	for _, field := range c.Fields {
		if !field.IsObject {
			t.IncludeScalar(field.Name)
			continue
		}
		if field.Nested == nil {
			return fmt.Errorf("selection: object field %q on %s has no nested catalog factory", field.Name, c.Type)
		}
		nestedCatalog := field.Nested()
		if nestedCatalog == nil {
			return fmt.Errorf("selection: object field %q on %s produced a nil nested catalog", field.Name, c.Type)
		}
		nested := NewTree()
		if err := includeAll(nested, nestedCatalog, path); err != nil {
			return err
		}
		t.IncludeObject(field.Name, nested)
	}
	return nil
}

// IncludeAllScalars selects the scalar fields of the catalog on t, at the
// current level only. Object fields are skipped; there is no recursion. A
// nil catalog is a no-op.
func IncludeAllScalars(t *Tree, c *Catalog) {
	if c == nil {
		return
	}
	for _, field := range c.Fields {
		if !field.IsObject {
			t.IncludeScalar(field.Name)
		}
	}
}
