package graph

// DimensionTable assigns stable integer identifiers to the distinct values
// of one dimension column. Identifiers are assigned in first-seen order
// starting at 1, are injective within a run, and are NOT stable across runs:
// reordering the input renumbers the dimension. State is scoped to one
// builder; nothing persists between generation runs.
type DimensionTable struct {
	segment string
	class   string
	ids     map[string]int
	order   []string
}

// NewDimensionTable creates an empty table for one dimension, identified by
// its entity path segment and its class IRI.
func NewDimensionTable(segment, class string) *DimensionTable {
	return &DimensionTable{
		segment: segment,
		class:   class,
		ids:     make(map[string]int),
	}
}

// Intern returns the identifier for value, assigning the next identifier on
// first sight. The second result reports whether the value was new.
func (t *DimensionTable) Intern(value string) (int, bool) {
	if id, ok := t.ids[value]; ok {
		return id, false
	}
	id := len(t.ids) + 1
	t.ids[value] = id
	t.order = append(t.order, value)
	return id, true
}

// ID returns the identifier previously assigned to value.
func (t *DimensionTable) ID(value string) (int, bool) {
	id, ok := t.ids[value]
	return id, ok
}

// Len is the number of distinct values seen so far.
func (t *DimensionTable) Len() int {
	return len(t.ids)
}

// Values returns the distinct values in first-seen order.
func (t *DimensionTable) Values() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Segment is the entity path segment for this dimension.
func (t *DimensionTable) Segment() string {
	return t.segment
}
