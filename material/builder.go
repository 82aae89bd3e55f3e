package material

import (
	"fmt"
	"strconv"

	"github.com/leops/dmxparser/errs"
)

// Builder materializes one value into a T. Builders are the caller-supplied
// side of the shape-request protocol: the engine dispatches the wire value,
// the builder states what shape it wants and assembles the result. Any method
// value of Value (e.g. Value.Int, Value.String) is itself a Builder.
type Builder[T any] func(Value) (T, error)

// Slice lifts an element builder to an array-kind builder.
func Slice[T any](elem Builder[T]) Builder[[]T] {
	return func(v Value) ([]T, error) {
		seq, err := v.Seq()
		if err != nil {
			return nil, err
		}

		out := make([]T, 0, seq.Len())
		for i := 0; i < seq.Len(); i++ {
			item, err := elem(seq.At(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			out = append(out, item)
		}

		return out, nil
	}
}

// Optional lifts a builder to tolerate the absent sentinel, returning nil for
// absent references.
func Optional[T any](inner Builder[T]) Builder[*T] {
	return func(v Value) (*T, error) {
		present, ok := v.Optional()
		if !ok {
			return nil, nil
		}

		t, err := inner(present)
		if err != nil {
			return nil, err
		}

		return &t, nil
	}
}

// Union dispatches on the value's discriminant — the referenced element's
// type name, or the kind name for non-element values — and materializes the
// same value through the selected variant's builder.
func Union[T any](variants map[string]Builder[T]) Builder[T] {
	return func(v Value) (T, error) {
		var zero T

		name, err := v.Discriminant()
		if err != nil {
			return zero, err
		}

		build, ok := variants[name]
		if !ok {
			return zero, errs.Formatf("no union variant for discriminant %q", name)
		}

		return build(v)
	}
}

// Attr materializes the named attribute of an element map. A missing
// attribute or a failing builder is reported as an AttributeError carrying
// the attribute name.
func Attr[T any](m *Map, name string, build Builder[T]) (T, error) {
	var zero T

	v, ok, err := m.Get(name)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, &errs.AttributeError{
			Name: strconv.Quote(name),
			Err:  errs.Formatf("attribute not present"),
		}
	}

	t, err := build(v)
	if err != nil {
		return zero, &errs.AttributeError{Name: strconv.Quote(name), Err: err}
	}

	return t, nil
}

// OptionalAttr is Attr for attributes that may be missing from the body
// entirely. It returns ok=false when the attribute is not present.
func OptionalAttr[T any](m *Map, name string, build Builder[T]) (T, bool, error) {
	var zero T

	v, ok, err := m.Get(name)
	if err != nil || !ok {
		return zero, false, err
	}

	t, err := build(v)
	if err != nil {
		return zero, false, &errs.AttributeError{Name: strconv.Quote(name), Err: err}
	}

	return t, true, nil
}
