package introspect

import (
	"github.com/hanpama/gqlcompose/internal/selection"
)

// DefaultTypeRefDepth is how many levels of ofType a composed type
// reference carries. Eight levels cover [[[[T!]!]!]!] and then some,
// which is deeper than schemas in the wild wrap their types.
const DefaultTypeRefDepth = 8

// QueryDocument renders the standard introspection query in the given
// format. The document is composed with the selection engine, so it uses
// no fragments; type references repeat the ofType selection to depth
// levels instead. A depth below 1 falls back to DefaultTypeRefDepth.
func QueryDocument(f selection.Format, depth int) string {
	if depth < 1 {
		depth = DefaultTypeRefDepth
	}
	return queryTree(depth).Render(f)
}

func queryTree(depth int) *selection.Tree {
	schema := selection.NewTree()
	schema.IncludeObject("queryType", nameTree())
	schema.IncludeObject("mutationType", nameTree())
	schema.IncludeObject("subscriptionType", nameTree())
	schema.IncludeObject("types", typeTree(depth))
	schema.IncludeObject("directives", directiveTree(depth))

	root := selection.NewTree()
	root.IncludeObject("__schema", schema)
	return root
}

func nameTree() *selection.Tree {
	t := selection.NewTree()
	t.IncludeScalar("name")
	return t
}

func typeTree(depth int) *selection.Tree {
	fields := selection.NewTree()
	fields.IncludeScalar("name")
	fields.IncludeScalar("description")
	fields.IncludeObject("args", inputValueTree(depth))
	fields.IncludeObject("type", typeRefTree(depth))
	fields.IncludeScalar("isDeprecated")
	fields.IncludeScalar("deprecationReason")

	enumValues := selection.NewTree()
	enumValues.IncludeScalar("name")
	enumValues.IncludeScalar("description")
	enumValues.IncludeScalar("isDeprecated")
	enumValues.IncludeScalar("deprecationReason")

	t := selection.NewTree()
	t.IncludeScalar("kind")
	t.IncludeScalar("name")
	t.IncludeScalar("description")
	t.IncludeObject("fields", fields, selection.Arg("includeDeprecated", true))
	t.IncludeObject("inputFields", inputValueTree(depth))
	t.IncludeObject("interfaces", typeRefTree(depth))
	t.IncludeObject("enumValues", enumValues, selection.Arg("includeDeprecated", true))
	t.IncludeObject("possibleTypes", typeRefTree(depth))
	return t
}

func inputValueTree(depth int) *selection.Tree {
	t := selection.NewTree()
	t.IncludeScalar("name")
	t.IncludeScalar("description")
	t.IncludeObject("type", typeRefTree(depth))
	t.IncludeScalar("defaultValue")
	return t
}

func directiveTree(depth int) *selection.Tree {
	t := selection.NewTree()
	t.IncludeScalar("name")
	t.IncludeScalar("description")
	t.IncludeScalar("locations")
	t.IncludeObject("args", inputValueTree(depth))
	return t
}

func typeRefTree(depth int) *selection.Tree {
	t := selection.NewTree()
	t.IncludeScalar("kind")
	t.IncludeScalar("name")
	if depth > 1 {
		t.IncludeObject("ofType", typeRefTree(depth-1))
	}
	return t
}
