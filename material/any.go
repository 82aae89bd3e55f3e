package material

import (
	"github.com/google/uuid"

	"github.com/leops/dmxparser/dmx"
)

// Element is the generic materialization of one document element: its header
// fields plus all attributes in declaration order, each materialized through
// Any.
type Element struct {
	Type  string
	Name  string
	GUID  uuid.UUID
	Attrs []Field
}

// Field is one generically materialized attribute.
type Field struct {
	Name  string
	Value any
}

// Get returns the first attribute named name, in declaration order.
func (el *Element) Get(name string) (any, bool) {
	for _, f := range el.Attrs {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Any materializes a value into a generic tree without a target schema:
// scalars become their native Go values, arrays become native slices,
// elements become *Element and absent references become nil. Useful for
// dumping, diffing and testing. Any is itself a Builder[any].
func Any(v Value) (any, error) {
	switch w := v.wire.(type) {
	case dmx.ElementID:
		if _, ok := w.Index(); !ok {
			return nil, nil
		}

		m, err := v.Map()
		if err != nil {
			return nil, err
		}

		return anyElement(m)

	case dmx.Int:
		return int32(w), nil
	case dmx.Float:
		return float32(w), nil
	case dmx.Bool:
		return bool(w), nil
	case dmx.String:
		return string(w), nil
	case dmx.StringID:
		s, ok, err := v.eng.doc.String(dmx.StringRef(w))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		return s, nil
	case dmx.Binary:
		return []byte(w), nil
	case dmx.Time, dmx.Color, dmx.Vector2, dmx.Vector3, dmx.Vector4,
		dmx.Qangle, dmx.Quaternion, dmx.Vmatrix:
		return w, nil
	case dmx.Uint64:
		return uint64(w), nil
	case dmx.Uint8:
		return uint8(w), nil

	case dmx.ElementArray:
		out := make([]any, 0, len(w))
		for _, id := range w {
			item, err := Any(Value{eng: v.eng, wire: id, depth: v.depth})
			if err != nil {
				return nil, err
			}

			out = append(out, item)
		}

		return out, nil

	case dmx.IntArray:
		return []int32(w), nil
	case dmx.FloatArray:
		return []float32(w), nil
	case dmx.BoolArray:
		return []bool(w), nil
	case dmx.StringArray:
		return []string(w), nil
	case dmx.BinaryArray:
		return [][]byte(w), nil
	case dmx.TimeArray:
		return []dmx.Time(w), nil
	case dmx.ColorArray:
		return []dmx.Color(w), nil
	case dmx.Vector2Array:
		return []dmx.Vector2(w), nil
	case dmx.Vector3Array:
		return []dmx.Vector3(w), nil
	case dmx.Vector4Array:
		return []dmx.Vector4(w), nil
	case dmx.QangleArray:
		return []dmx.Qangle(w), nil
	case dmx.QuaternionArray:
		return []dmx.Quaternion(w), nil
	case dmx.VmatrixArray:
		return []dmx.Vmatrix(w), nil
	case dmx.Uint64Array:
		return []uint64(w), nil
	}

	return nil, shapeErr("any", v)
}

func anyElement(m *Map) (*Element, error) {
	header := m.Header()
	doc := m.eng.doc

	typeName, _, err := doc.String(header.Type)
	if err != nil {
		return nil, err
	}

	name, _, err := doc.String(header.Name)
	if err != nil {
		return nil, err
	}

	el := &Element{
		Type:  typeName,
		Name:  name,
		GUID:  header.GUID,
		Attrs: make([]Field, 0, m.Len()),
	}

	err = m.Each(func(attrName string, v Value) error {
		value, err := Any(v)
		if err != nil {
			return err
		}

		el.Attrs = append(el.Attrs, Field{Name: attrName, Value: value})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return el, nil
}
