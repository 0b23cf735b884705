package selection

import (
	"fmt"
	"strings"
)

// Format selects the textual form a tree renders to.
type Format int

const (
	// Compact produces a single-line document with no whitespace.
	Compact Format = iota
	// Indented produces a multi-line document indented two spaces per level.
	Indented
)

func (f Format) String() string {
	switch f {
	case Compact:
		return "compact"
	case Indented:
		return "indented"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name as used in flags and config files.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "compact":
		return Compact, nil
	case "indented":
		return Indented, nil
	default:
		return Compact, fmt.Errorf("unknown format %q (want compact or indented)", s)
	}
}

// Render serializes the tree into a query document, including the enclosing
// root braces. It is a pure function of the current tree state.
//
// Compact mode joins non-empty field renderings with commas and drops empty
// ones. Indented mode emits every field rendering as its own line, even when
// it is empty: an object field with an empty nested tree leaves a blank line.
// The asymmetry is preserved deliberately so that output stays byte-identical
// with the renderer this package replaces.
func (t *Tree) Render(f Format) string { return t.render(f, 1) }

func (t *Tree) render(f Format, level int) string {
	var b strings.Builder
	b.WriteString("{")
	if f == Indented {
		b.WriteString("\n")
	}
	separator := ""
	for _, c := range t.criteria {
		field := c.render(f, level)
		if f == Indented {
			b.WriteString(field)
			b.WriteString("\n")
			continue
		}
		if field == "" {
			continue
		}
		b.WriteString(separator)
		b.WriteString(field)
		separator = ","
	}
	if f == Indented {
		b.WriteString(indentation(level - 1))
	}
	b.WriteString("}")
	return b.String()
}

// writeArgumentClause appends "(name:value,...)" for the renderable
// arguments. Nil-valued arguments are omitted entirely; when none remain the
// clause is omitted. Indented mode spaces out the clause and appends a
// trailing space after the closing parenthesis.
func writeArgumentClause(b *strings.Builder, f Format, args []Argument) {
	space := ""
	if f == Indented {
		space = " "
	}
	wroteAny := false
	for _, a := range args {
		if a.Value == nil {
			continue
		}
		if !wroteAny {
			b.WriteString("(")
		} else {
			b.WriteString(",")
			b.WriteString(space)
		}
		b.WriteString(a.Name)
		b.WriteString(":")
		b.WriteString(space)
		b.WriteString(encodeValue(a.Value))
		wroteAny = true
	}
	if wroteAny {
		b.WriteString(")")
		b.WriteString(space)
	}
}

func indentation(level int) string {
	return strings.Repeat("  ", level)
}
