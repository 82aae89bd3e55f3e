// Package material projects a decoded dmx.Document onto caller-supplied
// target shapes.
//
// The engine exposes a closed set of shape requests on a Value handle:
// scalar-of-kind accessors, Seq (ordered sequence), Map (element as ordered
// attribute map), Optional (absence via negative references), and
// Discriminant (tagged-union dispatch). Builder combinators compose these
// requests into reusable decoders for arbitrary record types without
// reflection.
//
// Materialization is on-demand and never cached: resolving the same element
// twice walks the document twice. All walk state lives in the Value handles,
// so any number of goroutines may materialize from one Document concurrently.
package material

import (
	"github.com/leops/dmxparser/dmx"
	"github.com/leops/dmxparser/errs"
	"github.com/leops/dmxparser/format"
)

// DefaultMaxDepth bounds element recursion during one materialization walk.
// The element graph may be cyclic; a recursive target shape walking a cycle
// would otherwise recurse forever. Exceeding the bound yields a CycleError
// instead of a stack overflow.
const DefaultMaxDepth = 1000

// Engine materializes values out of one decoded document.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	doc      *dmx.Document
	maxDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth overrides the element recursion bound.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		e.maxDepth = n
	}
}

// New creates an Engine over doc.
func New(doc *dmx.Document, opts ...Option) *Engine {
	e := &Engine{doc: doc, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Document returns the underlying document.
func (e *Engine) Document() *dmx.Document {
	return e.doc
}

// Root returns a handle to element 0, the conventional document root.
func (e *Engine) Root() Value {
	return e.Element(0)
}

// Element returns a handle to the given element reference. The reference is
// not validated here; resolving it (via Map or Any) range-checks it.
func (e *Engine) Element(id dmx.ElementID) Value {
	return Value{eng: e, wire: id}
}

// Value is a handle to one wire value within a document walk.
// The zero Value is invalid.
type Value struct {
	eng   *Engine
	wire  dmx.Value
	depth int
}

// Wire returns the underlying decoded value.
func (v Value) Wire() dmx.Value {
	return v.wire
}

// Kind returns the wire kind of the value.
func (v Value) Kind() format.AttributeType {
	return v.wire.Kind()
}

// Optional reports presence. A value is absent exactly when it is an Element
// or String reference carrying the negative sentinel; every other kind is
// always present. The returned Value is v itself when present.
func (v Value) Optional() (Value, bool) {
	switch w := v.wire.(type) {
	case dmx.ElementID:
		if _, ok := w.Index(); !ok {
			return Value{}, false
		}
	case dmx.StringID:
		if _, ok := dmx.StringRef(w).Index(); !ok {
			return Value{}, false
		}
	}

	return v, true
}

// Discriminant returns the tagged-union discriminant for v: the declared type
// name of the referenced element for Element values, and the symbolic kind
// name (e.g. "Float", "Vector3Array") for every other kind. Callers never
// branch on the two sources themselves.
func (v Value) Discriminant() (string, error) {
	id, ok := v.wire.(dmx.ElementID)
	if !ok {
		return v.wire.Kind().String(), nil
	}

	i, err := v.eng.elementIndex(id)
	if err != nil {
		return "", err
	}

	name, ok, err := v.eng.doc.String(v.eng.doc.Headers[i].Type)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.Formatf("element %d has no type name", id)
	}

	return name, nil
}

// elementIndex range-checks an element reference against the document.
func (e *Engine) elementIndex(id dmx.ElementID) (int, error) {
	i, ok := id.Index()
	if !ok || i >= len(e.doc.Bodies) {
		return 0, &errs.ReferenceError{Table: "element", Index: int32(id), Count: len(e.doc.Bodies)}
	}

	return i, nil
}

func shapeErr(want string, v Value) error {
	return &errs.ShapeError{Want: want, Got: v.wire.Kind().String()}
}
