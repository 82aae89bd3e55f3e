package dmx

import (
	"github.com/leops/dmxparser/errs"
	"github.com/leops/dmxparser/format"
	"github.com/leops/dmxparser/source"
)

// Value is one decoded attribute value: exactly one of the 16 scalar kinds or
// their array counterparts. The union is closed; the unexported marker method
// keeps outside packages from adding cases.
type Value interface {
	Kind() format.AttributeType
	isValue()
}

// ElementID is an index into the document's element arrays.
// Negative values mean "no element".
type ElementID int32

// Index returns the element position and whether the reference is present.
func (e ElementID) Index() (int, bool) {
	if e < 0 {
		return 0, false
	}

	return int(e), true
}

type (
	// Int is a signed 32-bit scalar.
	Int int32
	// Float is a 32-bit float scalar.
	Float float32
	// Bool is a boolean scalar.
	Bool bool
	// String is an inline string value, used by prefix attributes and string
	// arrays. Element-body String scalars are StringID references instead.
	String string
	// StringID is a string table reference held by an element-body String
	// scalar. Negative values mean "no string".
	StringID StringRef
	// Binary is a raw byte blob.
	Binary []byte
	// Uint64 is an unsigned 64-bit scalar.
	Uint64 uint64
	// Uint8 is an unsigned byte scalar.
	Uint8 uint8
)

type (
	ElementArray    []ElementID
	IntArray        []int32
	FloatArray      []float32
	BoolArray       []bool
	StringArray     []string
	BinaryArray     [][]byte
	TimeArray       []Time
	ColorArray      []Color
	Vector2Array    []Vector2
	Vector3Array    []Vector3
	Vector4Array    []Vector4
	QangleArray     []Qangle
	QuaternionArray []Quaternion
	VmatrixArray    []Vmatrix
	Uint64Array     []uint64
)

func (ElementID) Kind() format.AttributeType  { return format.TypeElement }
func (Int) Kind() format.AttributeType        { return format.TypeInt }
func (Float) Kind() format.AttributeType      { return format.TypeFloat }
func (Bool) Kind() format.AttributeType       { return format.TypeBool }
func (String) Kind() format.AttributeType     { return format.TypeString }
func (StringID) Kind() format.AttributeType   { return format.TypeString }
func (Binary) Kind() format.AttributeType     { return format.TypeBinary }
func (Time) Kind() format.AttributeType       { return format.TypeTime }
func (Color) Kind() format.AttributeType      { return format.TypeColor }
func (Vector2) Kind() format.AttributeType    { return format.TypeVector2 }
func (Vector3) Kind() format.AttributeType    { return format.TypeVector3 }
func (Vector4) Kind() format.AttributeType    { return format.TypeVector4 }
func (Qangle) Kind() format.AttributeType     { return format.TypeQangle }
func (Quaternion) Kind() format.AttributeType { return format.TypeQuaternion }
func (Vmatrix) Kind() format.AttributeType    { return format.TypeVmatrix }
func (Uint64) Kind() format.AttributeType     { return format.TypeUint64 }
func (Uint8) Kind() format.AttributeType      { return format.TypeUint8 }

func (ElementArray) Kind() format.AttributeType    { return format.TypeElementArray }
func (IntArray) Kind() format.AttributeType        { return format.TypeIntArray }
func (FloatArray) Kind() format.AttributeType      { return format.TypeFloatArray }
func (BoolArray) Kind() format.AttributeType       { return format.TypeBoolArray }
func (StringArray) Kind() format.AttributeType     { return format.TypeStringArray }
func (BinaryArray) Kind() format.AttributeType     { return format.TypeBinaryArray }
func (TimeArray) Kind() format.AttributeType       { return format.TypeTimeArray }
func (ColorArray) Kind() format.AttributeType      { return format.TypeColorArray }
func (Vector2Array) Kind() format.AttributeType    { return format.TypeVector2Array }
func (Vector3Array) Kind() format.AttributeType    { return format.TypeVector3Array }
func (Vector4Array) Kind() format.AttributeType    { return format.TypeVector4Array }
func (QangleArray) Kind() format.AttributeType     { return format.TypeQangleArray }
func (QuaternionArray) Kind() format.AttributeType { return format.TypeQuaternionArray }
func (VmatrixArray) Kind() format.AttributeType    { return format.TypeVmatrixArray }
func (Uint64Array) Kind() format.AttributeType     { return format.TypeUint64Array }

func (ElementID) isValue()  {}
func (Int) isValue()        {}
func (Float) isValue()      {}
func (Bool) isValue()       {}
func (String) isValue()     {}
func (StringID) isValue()   {}
func (Binary) isValue()     {}
func (Time) isValue()       {}
func (Color) isValue()      {}
func (Vector2) isValue()    {}
func (Vector3) isValue()    {}
func (Vector4) isValue()    {}
func (Qangle) isValue()     {}
func (Quaternion) isValue() {}
func (Vmatrix) isValue()    {}
func (Uint64) isValue()     {}
func (Uint8) isValue()      {}

func (ElementArray) isValue()    {}
func (IntArray) isValue()        {}
func (FloatArray) isValue()      {}
func (BoolArray) isValue()       {}
func (StringArray) isValue()     {}
func (BinaryArray) isValue()     {}
func (TimeArray) isValue()       {}
func (ColorArray) isValue()      {}
func (Vector2Array) isValue()    {}
func (Vector3Array) isValue()    {}
func (Vector4Array) isValue()    {}
func (QangleArray) isValue()     {}
func (QuaternionArray) isValue() {}
func (VmatrixArray) isValue()    {}
func (Uint64Array) isValue()     {}

// stringMode selects the wire rule for String scalars: prefix attributes store
// the string inline, element bodies store a string table reference.
type stringMode uint8

const (
	stringInline stringMode = iota
	stringTableRef
)

// readValue decodes one tag-prefixed attribute value from src.
//
// This is the single extension point of the tag space: adding a kind requires
// a new tag in package format and a matching case here.
func readValue(src source.Source, mode stringMode) (Value, error) {
	tag, err := source.Uint8(src)
	if err != nil {
		return nil, err
	}

	t := format.AttributeType(tag)
	if !t.Valid() {
		return nil, errs.Formatf("unsupported attribute type tag %d", tag)
	}

	switch t {
	case format.TypeElement:
		v, err := source.Int32(src)
		return ElementID(v), err
	case format.TypeInt:
		v, err := source.Int32(src)
		return Int(v), err
	case format.TypeFloat:
		v, err := source.Float32(src)
		return Float(v), err
	case format.TypeBool:
		v, err := source.Uint8(src)
		return Bool(v != 0), err
	case format.TypeString:
		if mode == stringTableRef {
			v, err := source.Int32(src)
			return StringID(v), err
		}

		v, err := src.ReadString()
		return String(v), err
	case format.TypeBinary:
		v, err := readBinary(src)
		return Binary(v), err
	case format.TypeTime:
		v, err := readTime(src)
		return v, err
	case format.TypeColor:
		v, err := readColor(src)
		return v, err
	case format.TypeVector2:
		v, err := readVector2(src)
		return v, err
	case format.TypeVector3:
		v, err := readVector3(src)
		return v, err
	case format.TypeVector4:
		v, err := readVector4(src)
		return v, err
	case format.TypeQangle:
		v, err := readVector3(src)
		return Qangle{Pitch: v.X, Yaw: v.Y, Roll: v.Z}, err
	case format.TypeQuaternion:
		v, err := readVector4(src)
		return Quaternion(v), err
	case format.TypeVmatrix:
		v, err := readVmatrix(src)
		return v, err
	case format.TypeUint64:
		v, err := source.Uint64(src)
		return Uint64(v), err
	case format.TypeUint8:
		v, err := source.Uint8(src)
		return Uint8(v), err

	case format.TypeElementArray:
		return readArray(src, func(src source.Source) (ElementID, error) {
			v, err := source.Int32(src)
			return ElementID(v), err
		}, func(v []ElementID) Value { return ElementArray(v) })
	case format.TypeIntArray:
		return readArray(src, source.Int32, func(v []int32) Value { return IntArray(v) })
	case format.TypeFloatArray:
		return readArray(src, source.Float32, func(v []float32) Value { return FloatArray(v) })
	case format.TypeBoolArray:
		return readArray(src, func(src source.Source) (bool, error) {
			v, err := source.Uint8(src)
			return v != 0, err
		}, func(v []bool) Value { return BoolArray(v) })
	case format.TypeStringArray:
		// Array elements are always inline strings, even inside element bodies.
		return readArray(src, source.Source.ReadString, func(v []string) Value { return StringArray(v) })
	case format.TypeBinaryArray:
		return readArray(src, readBinary, func(v [][]byte) Value { return BinaryArray(v) })
	case format.TypeTimeArray:
		return readArray(src, readTime, func(v []Time) Value { return TimeArray(v) })
	case format.TypeColorArray:
		return readArray(src, readColor, func(v []Color) Value { return ColorArray(v) })
	case format.TypeVector2Array:
		return readArray(src, readVector2, func(v []Vector2) Value { return Vector2Array(v) })
	case format.TypeVector3Array:
		return readArray(src, readVector3, func(v []Vector3) Value { return Vector3Array(v) })
	case format.TypeVector4Array:
		return readArray(src, readVector4, func(v []Vector4) Value { return Vector4Array(v) })
	case format.TypeQangleArray:
		return readArray(src, func(src source.Source) (Qangle, error) {
			v, err := readVector3(src)
			return Qangle{Pitch: v.X, Yaw: v.Y, Roll: v.Z}, err
		}, func(v []Qangle) Value { return QangleArray(v) })
	case format.TypeQuaternionArray:
		return readArray(src, func(src source.Source) (Quaternion, error) {
			v, err := readVector4(src)
			return Quaternion(v), err
		}, func(v []Quaternion) Value { return QuaternionArray(v) })
	case format.TypeVmatrixArray:
		return readArray(src, readVmatrix, func(v []Vmatrix) Value { return VmatrixArray(v) })
	case format.TypeUint64Array:
		return readArray(src, source.Uint64, func(v []uint64) Value { return Uint64Array(v) })
	}

	// Unreachable: Valid() admits exactly the cases above.
	return nil, errs.Formatf("unsupported attribute type tag %d", tag)
}

// readCount reads a signed 32-bit length prefix and rejects negative values.
func readCount(src source.Source, what string) (int, error) {
	n, err := source.Int32(src)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, errs.Formatf("negative %s count %d", what, n)
	}

	return int(n), nil
}

// readArray decodes a count-prefixed sequence with the scalar kind's own rule.
func readArray[T any](src source.Source, elem func(source.Source) (T, error), wrap func([]T) Value) (Value, error) {
	n, err := readCount(src, "array")
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := elem(src)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return wrap(out), nil
}

func readBinary(src source.Source) ([]byte, error) {
	n, err := readCount(src, "binary")
	if err != nil {
		return nil, err
	}

	return src.ReadBytes(n)
}

func readTime(src source.Source) (Time, error) {
	millis, err := source.Int32(src)
	return Time{Millis: millis}, err
}

func readColor(src source.Source) (Color, error) {
	var b [4]byte
	if err := src.ReadInto(b[:]); err != nil {
		return Color{}, err
	}

	return Color{R: int8(b[0]), G: int8(b[1]), B: int8(b[2]), A: int8(b[3])}, nil
}

func readVector2(src source.Source) (Vector2, error) {
	var v Vector2
	var err error
	if v.X, err = source.Float32(src); err != nil {
		return v, err
	}
	v.Y, err = source.Float32(src)

	return v, err
}

func readVector3(src source.Source) (Vector3, error) {
	var v Vector3
	var err error
	if v.X, err = source.Float32(src); err != nil {
		return v, err
	}
	if v.Y, err = source.Float32(src); err != nil {
		return v, err
	}
	v.Z, err = source.Float32(src)

	return v, err
}

func readVector4(src source.Source) (Vector4, error) {
	var v Vector4
	var err error
	if v.X, err = source.Float32(src); err != nil {
		return v, err
	}
	if v.Y, err = source.Float32(src); err != nil {
		return v, err
	}
	if v.Z, err = source.Float32(src); err != nil {
		return v, err
	}
	v.W, err = source.Float32(src)

	return v, err
}

func readVmatrix(src source.Source) (Vmatrix, error) {
	var m Vmatrix
	for i := range m {
		v, err := source.Float32(src)
		if err != nil {
			return m, err
		}

		m[i] = v
	}

	return m, nil
}
