package material

import (
	"github.com/leops/dmxparser/dmx"
	"github.com/leops/dmxparser/errs"
)

// Scalar-of-kind shape requests. Each accessor succeeds only when the wire
// value holds exactly that kind; anything else is a ShapeError.

// Bool materializes a Bool scalar.
func (v Value) Bool() (bool, error) {
	w, ok := v.wire.(dmx.Bool)
	if !ok {
		return false, shapeErr("Bool", v)
	}

	return bool(w), nil
}

// Int materializes an Int scalar.
func (v Value) Int() (int32, error) {
	w, ok := v.wire.(dmx.Int)
	if !ok {
		return 0, shapeErr("Int", v)
	}

	return int32(w), nil
}

// Float materializes a Float scalar.
func (v Value) Float() (float32, error) {
	w, ok := v.wire.(dmx.Float)
	if !ok {
		return 0, shapeErr("Float", v)
	}

	return float32(w), nil
}

// Uint8 materializes a Uint8 scalar.
func (v Value) Uint8() (uint8, error) {
	w, ok := v.wire.(dmx.Uint8)
	if !ok {
		return 0, shapeErr("Uint8", v)
	}

	return uint8(w), nil
}

// Uint64 materializes a Uint64 scalar.
func (v Value) Uint64() (uint64, error) {
	w, ok := v.wire.(dmx.Uint64)
	if !ok {
		return 0, shapeErr("Uint64", v)
	}

	return uint64(w), nil
}

// String materializes a String scalar. Table references are resolved through
// the string table; an absent reference is a ShapeError (request it through
// Optional first), an out-of-range one a ReferenceError. In borrowed mode the
// returned string aliases the input buffer.
func (v Value) String() (string, error) {
	switch w := v.wire.(type) {
	case dmx.String:
		return string(w), nil
	case dmx.StringID:
		s, ok, err := v.eng.doc.String(dmx.StringRef(w))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &errs.ShapeError{Want: "String", Got: "absent String"}
		}

		return s, nil
	}

	return "", shapeErr("String", v)
}

// Bytes materializes a Binary scalar. In borrowed mode the returned slice
// aliases the input buffer and must not be modified.
func (v Value) Bytes() ([]byte, error) {
	w, ok := v.wire.(dmx.Binary)
	if !ok {
		return nil, shapeErr("Binary", v)
	}

	return []byte(w), nil
}

// Time materializes a Time scalar.
func (v Value) Time() (dmx.Time, error) {
	w, ok := v.wire.(dmx.Time)
	if !ok {
		return dmx.Time{}, shapeErr("Time", v)
	}

	return w, nil
}

// Color materializes a Color scalar.
func (v Value) Color() (dmx.Color, error) {
	w, ok := v.wire.(dmx.Color)
	if !ok {
		return dmx.Color{}, shapeErr("Color", v)
	}

	return w, nil
}

// Vector2 materializes a Vector2 scalar.
func (v Value) Vector2() (dmx.Vector2, error) {
	w, ok := v.wire.(dmx.Vector2)
	if !ok {
		return dmx.Vector2{}, shapeErr("Vector2", v)
	}

	return w, nil
}

// Vector3 materializes a Vector3 scalar.
func (v Value) Vector3() (dmx.Vector3, error) {
	w, ok := v.wire.(dmx.Vector3)
	if !ok {
		return dmx.Vector3{}, shapeErr("Vector3", v)
	}

	return w, nil
}

// Vector4 materializes a Vector4 scalar.
func (v Value) Vector4() (dmx.Vector4, error) {
	w, ok := v.wire.(dmx.Vector4)
	if !ok {
		return dmx.Vector4{}, shapeErr("Vector4", v)
	}

	return w, nil
}

// Qangle materializes a Qangle scalar.
func (v Value) Qangle() (dmx.Qangle, error) {
	w, ok := v.wire.(dmx.Qangle)
	if !ok {
		return dmx.Qangle{}, shapeErr("Qangle", v)
	}

	return w, nil
}

// Quaternion materializes a Quaternion scalar.
func (v Value) Quaternion() (dmx.Quaternion, error) {
	w, ok := v.wire.(dmx.Quaternion)
	if !ok {
		return dmx.Quaternion{}, shapeErr("Quaternion", v)
	}

	return w, nil
}

// Vmatrix materializes a Vmatrix scalar.
func (v Value) Vmatrix() (dmx.Vmatrix, error) {
	w, ok := v.wire.(dmx.Vmatrix)
	if !ok {
		return dmx.Vmatrix{}, shapeErr("Vmatrix", v)
	}

	return w, nil
}

// ElementID materializes the raw element reference without resolving it.
func (v Value) ElementID() (dmx.ElementID, error) {
	w, ok := v.wire.(dmx.ElementID)
	if !ok {
		return 0, shapeErr("Element", v)
	}

	return w, nil
}
