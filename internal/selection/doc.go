// Package selection implements the mutable field-selection tree behind a
// GraphQL query document and its serialization.
//
// A Tree is an insertion-ordered set of field criteria keyed by field name.
// Scalar fields are included with IncludeScalar, nested object fields with
// IncludeObject, each optionally carrying literal arguments. Including a
// field name that is already present replaces the earlier criteria in place:
// last write wins, first-write position is kept. Render serializes the
// current tree into a query document in either Compact or Indented form and
// may be called any number of times; it never mutates the tree.
//
// Catalogs describe which fields exist on a node type. IncludeAll expands a
// tree to select every field of a catalog, recursing into nested object
// fields through their catalog factories; IncludeAllScalars selects only the
// scalar fields at the current level. Catalogs are produced by the
// internal/catalog package from SDL, by internal/introspect from a live
// endpoint, or written out literally.
//
// A Tree and the nested trees it owns are not safe for concurrent use.
// Rendering does not mutate and may be repeated freely, but must not race
// with inclusion calls on the same tree.
package selection
