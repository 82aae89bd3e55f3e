package material

import (
	"iter"

	"github.com/leops/dmxparser/dmx"
)

// Seq materializes an array-kind value as an ordered sequence. Requesting a
// sequence over any scalar kind is a ShapeError. String and binary elements
// keep the borrowed-vs-owned storage of the document they came from.
func (v Value) Seq() (*Sequence, error) {
	var n int
	var at func(i int) dmx.Value

	switch w := v.wire.(type) {
	case dmx.ElementArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.IntArray:
		n, at = len(w), func(i int) dmx.Value { return dmx.Int(w[i]) }
	case dmx.FloatArray:
		n, at = len(w), func(i int) dmx.Value { return dmx.Float(w[i]) }
	case dmx.BoolArray:
		n, at = len(w), func(i int) dmx.Value { return dmx.Bool(w[i]) }
	case dmx.StringArray:
		n, at = len(w), func(i int) dmx.Value { return dmx.String(w[i]) }
	case dmx.BinaryArray:
		n, at = len(w), func(i int) dmx.Value { return dmx.Binary(w[i]) }
	case dmx.TimeArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.ColorArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.Vector2Array:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.Vector3Array:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.Vector4Array:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.QangleArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.QuaternionArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.VmatrixArray:
		n, at = len(w), func(i int) dmx.Value { return w[i] }
	case dmx.Uint64Array:
		n, at = len(w), func(i int) dmx.Value { return dmx.Uint64(w[i]) }
	default:
		return nil, shapeErr("array", v)
	}

	return &Sequence{eng: v.eng, n: n, at: at, depth: v.depth}, nil
}

// Sequence is an array-kind value viewed as an ordered sequence of element
// handles.
type Sequence struct {
	eng   *Engine
	n     int
	at    func(i int) dmx.Value
	depth int
}

// Len returns the stored element count.
func (s *Sequence) Len() int {
	return s.n
}

// At returns the i-th element. It panics if i is out of range, like a slice
// index.
func (s *Sequence) At(i int) Value {
	if i < 0 || i >= s.n {
		panic("material: sequence index out of range")
	}

	return Value{eng: s.eng, wire: s.at(i), depth: s.depth}
}

// All iterates the sequence in order.
func (s *Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
