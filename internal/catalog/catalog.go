// Package catalog compiles GraphQL SDL into the field catalogs and enum
// wire-name tables consumed by the selection engine.
package catalog

import (
	"github.com/hanpama/gqlcompose/internal/selection"
)

// Set is everything compiled from one schema document: a catalog per
// selectable type, a wire-name table per enum, and the root operation
// type names.
type Set struct {
	Types map[string]*selection.Catalog
	Enums map[string]*selection.Enum

	Query        string
	Mutation     string
	Subscription string
}

// Type returns the catalog for a named type, or nil if the schema does
// not define a selectable type under that name.
func (s *Set) Type(name string) *selection.Catalog { return s.Types[name] }

// Enum returns the wire-name table for a named enum, or nil.
func (s *Set) Enum(name string) *selection.Enum { return s.Enums[name] }
