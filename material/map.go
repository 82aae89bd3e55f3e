package material

import (
	"strconv"

	"github.com/leops/dmxparser/dmx"
	"github.com/leops/dmxparser/errs"
)

// Map materializes an Element value as an ordered mapping from attribute name
// to value. The reference is range-checked here: an absent or out-of-range
// element yields a ReferenceError, and descending one element deeper counts
// against the engine's recursion bound.
func (v Value) Map() (*Map, error) {
	id, ok := v.wire.(dmx.ElementID)
	if !ok {
		return nil, shapeErr("Element", v)
	}

	i, err := v.eng.elementIndex(id)
	if err != nil {
		return nil, err
	}

	depth := v.depth + 1
	if depth > v.eng.maxDepth {
		return nil, &errs.CycleError{Depth: v.eng.maxDepth}
	}

	return &Map{eng: v.eng, index: i, depth: depth}, nil
}

// Map is one element viewed as an ordered attribute mapping. Iteration order
// is the body's declaration order in the binary stream, never name order, and
// nothing is memoized across walks.
//
// An attribute whose name reference is the absent sentinel terminates
// iteration early; attributes after it are unreachable through the map. This
// mirrors the wire convention of the format.
type Map struct {
	eng   *Engine
	index int
	depth int
}

// ElementID returns the element this map was resolved from.
func (m *Map) ElementID() dmx.ElementID {
	return dmx.ElementID(m.index)
}

// Header returns the element's header (type, name, GUID).
func (m *Map) Header() dmx.ElementHeader {
	return m.eng.doc.Headers[m.index]
}

// Len returns the number of attributes stored in the element body, including
// any that sit behind an absent-name terminator.
func (m *Map) Len() int {
	return len(m.attrs())
}

// At returns the i-th attribute's resolved name and value handle.
// The name being absent is reported as ok=false; an out-of-range name
// reference is a ReferenceError.
func (m *Map) At(i int) (name string, v Value, ok bool, err error) {
	attr := m.attrs()[i]

	name, ok, err = m.eng.doc.String(attr.Name)
	if err != nil || !ok {
		return "", Value{}, ok, err
	}

	return name, m.value(attr), true, nil
}

// Get returns the value of the first attribute named name, scanning in
// declaration order.
func (m *Map) Get(name string) (Value, bool, error) {
	for _, attr := range m.attrs() {
		got, ok, err := m.eng.doc.String(attr.Name)
		if err != nil {
			return Value{}, false, err
		}
		if !ok {
			// Absent name terminates the map.
			return Value{}, false, nil
		}

		if got == name {
			return m.value(attr), true, nil
		}
	}

	return Value{}, false, nil
}

// Each calls fn for every attribute in declaration order. An error returned
// by fn stops the walk and comes back wrapped in an AttributeError carrying
// the attribute's name.
func (m *Map) Each(fn func(name string, v Value) error) error {
	for _, attr := range m.attrs() {
		name, ok, err := m.eng.doc.String(attr.Name)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := fn(name, m.value(attr)); err != nil {
			return &errs.AttributeError{Name: strconv.Quote(name), Err: err}
		}
	}

	return nil
}

func (m *Map) attrs() []dmx.Attribute {
	return m.eng.doc.Bodies[m.index].Attributes
}

func (m *Map) value(attr dmx.Attribute) Value {
	return Value{eng: m.eng, wire: attr.Value, depth: m.depth}
}
