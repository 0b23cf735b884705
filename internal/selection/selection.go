package selection

// Tree is an insertion-ordered collection of field criteria keyed by field
// name. The zero value is an empty tree ready for use.
//
// Field order is the order of first inclusion and is also the render order.
// Re-including a field name replaces its criteria without moving it.
type Tree struct {
	criteria []criteria
	index    map[string]int
}

// NewTree returns an empty selection tree.
func NewTree() *Tree { return &Tree{} }

// IncludeScalar inserts or replaces a scalar field selection.
func (t *Tree) IncludeScalar(name string, args ...Argument) {
	t.set(scalarCriteria{name: name, args: args})
}

// IncludeObject inserts or replaces a nested object field selection, taking
// ownership of nested. A nil or empty nested tree is allowed; such a field
// renders as empty text (see Render).
func (t *Tree) IncludeObject(name string, nested *Tree, args ...Argument) {
	t.set(objectCriteria{name: name, args: args, nested: nested})
}

// Clear drops all criteria. Documents rendered earlier are unaffected.
func (t *Tree) Clear() {
	t.criteria = nil
	clear(t.index)
}

// Len returns the number of selected fields.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.criteria)
}

// Has reports whether the named field is currently selected.
func (t *Tree) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Fields returns the selected field names in render order.
func (t *Tree) Fields() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.criteria))
	for i, c := range t.criteria {
		out[i] = c.fieldName()
	}
	return out
}

// String renders the tree in Compact form.
func (t *Tree) String() string { return t.Render(Compact) }

func (t *Tree) set(c criteria) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[c.fieldName()]; ok {
		t.criteria[i] = c
		return
	}
	t.index[c.fieldName()] = len(t.criteria)
	t.criteria = append(t.criteria, c)
}
