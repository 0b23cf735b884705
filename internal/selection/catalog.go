package selection

// FieldMetadata describes one field defined on a node type: its name,
// whether it is a nested object field, and, for object fields, a factory
// returning the nested type's catalog. The factory is a function rather
// than a direct reference so that mutually referential catalogs can be
// declared without initialization cycles.
type FieldMetadata struct {
	Name     string
	IsObject bool
	Nested   func() *Catalog
}

// Catalog is the ordered list of fields available on a node type, as
// supplied by the schema layer. Type anchors cycle detection during full
// expansion; a catalog with an empty Type is never treated as revisited.
type Catalog struct {
	Type   string
	Fields []FieldMetadata
}
