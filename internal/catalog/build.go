package catalog

import (
	"fmt"

	"github.com/hanpama/gqlcompose/internal/language"
	"github.com/hanpama/gqlcompose/internal/selection"
)

// BuildFromSDL parses an SDL string and compiles it into a Set.
func BuildFromSDL(sdl string) (*Set, error) {
	doc, err := language.ParseSchema("schema.graphql", sdl)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build compiles a parsed schema document into a Set. Fields keep their
// declaration order; extensions append after the base definition.
func Build(doc *language.SchemaDocument) (*Set, error) {
	b := &builder{
		set:   &Set{Types: map[string]*selection.Catalog{}, Enums: map[string]*selection.Enum{}},
		enums: map[string]map[string]string{},
	}
	if err := b.register(doc.Definitions); err != nil {
		return nil, err
	}
	for _, def := range doc.Definitions {
		if def.Kind == language.Object || def.Kind == language.Interface {
			b.appendFields(b.set.Types[def.Name], def)
		}
	}
	if err := b.extend(doc.Extensions); err != nil {
		return nil, err
	}
	for name, wire := range b.enums {
		b.set.Enums[name] = selection.NewEnum(name, wire)
	}
	if err := b.resolveRoots(doc); err != nil {
		return nil, err
	}
	return b.set, nil
}

type builder struct {
	set *Set

	// enum name -> variant -> wire override, accumulated across the base
	// definition and any extensions before the Enum tables are built.
	enums map[string]map[string]string
}

// register creates catalog shells for every selectable type up front so
// that field wiring can resolve forward references.
func (b *builder) register(defs language.DefinitionList) error {
	for _, def := range defs {
		switch def.Kind {
		case language.Object, language.Interface, language.Union:
			if _, ok := b.set.Types[def.Name]; ok {
				return fmt.Errorf("catalog: type %q is defined twice", def.Name)
			}
			b.set.Types[def.Name] = &selection.Catalog{Type: def.Name}
		case language.Enum:
			if _, ok := b.enums[def.Name]; ok {
				return fmt.Errorf("catalog: enum %q is defined twice", def.Name)
			}
			wire, err := enumOverrides(def)
			if err != nil {
				return err
			}
			b.enums[def.Name] = wire
		}
	}
	return nil
}

func (b *builder) appendFields(c *selection.Catalog, def *language.Definition) {
	for _, f := range def.Fields {
		named := innermost(f.Type)
		if nested, ok := b.set.Types[named]; ok {
			c.Fields = append(c.Fields, selection.FieldMetadata{
				Name:     f.Name,
				IsObject: true,
				Nested:   func() *selection.Catalog { return nested },
			})
			continue
		}
		c.Fields = append(c.Fields, selection.FieldMetadata{Name: f.Name})
	}
}

func (b *builder) extend(exts language.DefinitionList) error {
	for _, ext := range exts {
		switch ext.Kind {
		case language.Object, language.Interface:
			c, ok := b.set.Types[ext.Name]
			if !ok {
				return fmt.Errorf("catalog: extension of undefined type %q", ext.Name)
			}
			b.appendFields(c, ext)
		case language.Union:
			if _, ok := b.set.Types[ext.Name]; !ok {
				return fmt.Errorf("catalog: extension of undefined union %q", ext.Name)
			}
		case language.Enum:
			wire, ok := b.enums[ext.Name]
			if !ok {
				return fmt.Errorf("catalog: extension of undefined enum %q", ext.Name)
			}
			more, err := enumOverrides(ext)
			if err != nil {
				return err
			}
			if len(more) > 0 && wire == nil {
				wire = map[string]string{}
				b.enums[ext.Name] = wire
			}
			for variant, name := range more {
				wire[variant] = name
			}
		}
	}
	return nil
}

func (b *builder) resolveRoots(doc *language.SchemaDocument) error {
	roots := map[language.Operation]*string{
		language.Query:        &b.set.Query,
		language.Mutation:     &b.set.Mutation,
		language.Subscription: &b.set.Subscription,
	}
	apply := func(defs []*language.SchemaDefinition) error {
		for _, sd := range defs {
			for _, op := range sd.OperationTypes {
				dst, ok := roots[op.Operation]
				if !ok {
					continue
				}
				if _, defined := b.set.Types[op.Type]; !defined {
					return fmt.Errorf("catalog: %s root type %q is not defined", op.Operation, op.Type)
				}
				*dst = op.Type
			}
		}
		return nil
	}
	if err := apply(doc.Schema); err != nil {
		return err
	}
	if err := apply(doc.SchemaExtension); err != nil {
		return err
	}
	// Without a schema block the conventional type names serve as roots.
	// An explicit schema block supports only the operations it lists.
	if len(doc.Schema) == 0 {
		for op, dst := range roots {
			if *dst != "" {
				continue
			}
			if name := defaultRootName(op); b.set.Types[name] != nil {
				*dst = name
			}
		}
	}
	return nil
}

func defaultRootName(op language.Operation) string {
	switch op {
	case language.Mutation:
		return "Mutation"
	case language.Subscription:
		return "Subscription"
	default:
		return "Query"
	}
}

func enumOverrides(def *language.Definition) (map[string]string, error) {
	var wire map[string]string
	for _, v := range def.EnumValues {
		d := v.Directives.ForName("wire")
		if d == nil {
			continue
		}
		arg := d.Arguments.ForName("name")
		if arg == nil || arg.Value == nil || arg.Value.Kind != language.StringValue {
			return nil, fmt.Errorf("catalog: enum value %s.%s has a @wire directive without a string name argument", def.Name, v.Name)
		}
		if wire == nil {
			wire = map[string]string{}
		}
		wire[v.Name] = arg.Value.Raw
	}
	return wire, nil
}

// innermost unwraps list and non-null wrappers down to the named type.
func innermost(t *language.Type) string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}
