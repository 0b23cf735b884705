package selection

import "strings"

// criteria is one entry in a selection tree: a field name, its arguments,
// and, for object fields, an owned nested tree.
type criteria interface {
	fieldName() string
	// render produces the field's text at the given nesting level. An empty
	// string means the field contributes nothing; Compact output skips it,
	// Indented output still emits the line (kept for output compatibility
	// with the original renderer).
	render(f Format, level int) string
}

type scalarCriteria struct {
	name string
	args []Argument
}

func (c scalarCriteria) fieldName() string { return c.name }

func (c scalarCriteria) render(f Format, level int) string {
	var b strings.Builder
	if f == Indented {
		b.WriteString(indentation(level))
	}
	b.WriteString(c.name)
	writeArgumentClause(&b, f, c.args)
	return b.String()
}

type objectCriteria struct {
	name   string
	args   []Argument
	nested *Tree
}

func (c objectCriteria) fieldName() string { return c.name }

func (c objectCriteria) render(f Format, level int) string {
	if c.nested.Len() == 0 {
		return ""
	}
	var b strings.Builder
	if f == Indented {
		b.WriteString(indentation(level))
	}
	b.WriteString(c.name)
	if f == Indented {
		b.WriteString(" ")
	}
	writeArgumentClause(&b, f, c.args)
	b.WriteString(c.nested.render(f, level+1))
	return b.String()
}
