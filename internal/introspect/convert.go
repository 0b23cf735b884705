package introspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/selection"
)

// Wire mirrors of the introspection result, shaped after the composed
// query. Only the parts the catalog compiler consumes are decoded.

type schemaEnvelope struct {
	Schema schemaJSON `json:"__schema"`
}

type schemaJSON struct {
	QueryType        *namedTypeJSON `json:"queryType"`
	MutationType     *namedTypeJSON `json:"mutationType"`
	SubscriptionType *namedTypeJSON `json:"subscriptionType"`
	Types            []typeJSON     `json:"types"`
}

type namedTypeJSON struct {
	Name string `json:"name"`
}

type typeJSON struct {
	Kind   string      `json:"kind"`
	Name   string      `json:"name"`
	Fields []fieldJSON `json:"fields"`
}

type fieldJSON struct {
	Name string      `json:"name"`
	Type typeRefJSON `json:"type"`
}

type typeRefJSON struct {
	Kind   string       `json:"kind"`
	Name   string       `json:"name"`
	OfType *typeRefJSON `json:"ofType"`
}

// Convert compiles the data object of an introspection response into a
// catalog set. Introspection meta types (the "__" prefix) are dropped.
func Convert(data json.RawMessage) (*catalog.Set, error) {
	var env schemaEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("introspect: decode schema: %w", err)
	}
	if env.Schema.Types == nil {
		return nil, fmt.Errorf("introspect: response carries no __schema.types")
	}
	return convert(&env.Schema), nil
}

func convert(s *schemaJSON) *catalog.Set {
	set := &catalog.Set{
		Types: map[string]*selection.Catalog{},
		Enums: map[string]*selection.Enum{},
	}
	for _, t := range s.Types {
		if strings.HasPrefix(t.Name, "__") {
			continue
		}
		switch t.Kind {
		case "OBJECT", "INTERFACE", "UNION":
			set.Types[t.Name] = &selection.Catalog{Type: t.Name}
		case "ENUM":
			set.Enums[t.Name] = selection.NewEnum(t.Name, nil)
		}
	}
	for _, t := range s.Types {
		c, ok := set.Types[t.Name]
		if !ok || (t.Kind != "OBJECT" && t.Kind != "INTERFACE") {
			continue
		}
		for _, f := range t.Fields {
			if nested, ok := set.Types[unwrap(f.Type)]; ok {
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
	if s.QueryType != nil {
		set.Query = s.QueryType.Name
	}
	if s.MutationType != nil {
		set.Mutation = s.MutationType.Name
	}
	if s.SubscriptionType != nil {
		set.Subscription = s.SubscriptionType.Name
	}
	return set
}

// unwrap follows the ofType chain down to the named type.
func unwrap(t typeRefJSON) string {
	ref := &t
	for ref.OfType != nil {
		ref = ref.OfType
	}
	return ref.Name
}
