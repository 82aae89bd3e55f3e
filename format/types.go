package format

// AttributeType identifies the wire shape of a single attribute value.
//
// The binary profile assigns tags 1-16 to the scalar kinds and tag+32 to the
// homogeneous array counterpart of each scalar kind. Uint8 has no array
// counterpart in the supported profile, so the array tags stop at 47.
type AttributeType uint8

const (
	TypeElement    AttributeType = 1  // index into the document's element arrays
	TypeInt        AttributeType = 2  // signed 32-bit integer
	TypeFloat      AttributeType = 3  // 32-bit IEEE float
	TypeBool       AttributeType = 4  // single byte, non-zero means true
	TypeString     AttributeType = 5  // string table reference or inline cstring
	TypeBinary     AttributeType = 6  // length-prefixed byte blob
	TypeTime       AttributeType = 7  // signed 32-bit millisecond count
	TypeColor      AttributeType = 8  // four signed bytes (r, g, b, a)
	TypeVector2    AttributeType = 9  // two 32-bit floats
	TypeVector3    AttributeType = 10 // three 32-bit floats
	TypeVector4    AttributeType = 11 // four 32-bit floats
	TypeQangle     AttributeType = 12 // pitch/yaw/roll as 32-bit floats
	TypeQuaternion AttributeType = 13 // four 32-bit floats
	TypeVmatrix    AttributeType = 14 // row-major 4x4 float matrix
	TypeUint64     AttributeType = 15 // unsigned 64-bit integer
	TypeUint8      AttributeType = 16 // single unsigned byte

	// ArrayOffset is the distance between a scalar tag and its array tag.
	ArrayOffset AttributeType = 32

	TypeElementArray    = TypeElement + ArrayOffset
	TypeIntArray        = TypeInt + ArrayOffset
	TypeFloatArray      = TypeFloat + ArrayOffset
	TypeBoolArray       = TypeBool + ArrayOffset
	TypeStringArray     = TypeString + ArrayOffset
	TypeBinaryArray     = TypeBinary + ArrayOffset
	TypeTimeArray       = TypeTime + ArrayOffset
	TypeColorArray      = TypeColor + ArrayOffset
	TypeVector2Array    = TypeVector2 + ArrayOffset
	TypeVector3Array    = TypeVector3 + ArrayOffset
	TypeVector4Array    = TypeVector4 + ArrayOffset
	TypeQangleArray     = TypeQangle + ArrayOffset
	TypeQuaternionArray = TypeQuaternion + ArrayOffset
	TypeVmatrixArray    = TypeVmatrix + ArrayOffset
	TypeUint64Array     = TypeUint64 + ArrayOffset
)

var scalarNames = [...]string{
	TypeElement:    "Element",
	TypeInt:        "Int",
	TypeFloat:      "Float",
	TypeBool:       "Bool",
	TypeString:     "String",
	TypeBinary:     "Binary",
	TypeTime:       "Time",
	TypeColor:      "Color",
	TypeVector2:    "Vector2",
	TypeVector3:    "Vector3",
	TypeVector4:    "Vector4",
	TypeQangle:     "Qangle",
	TypeQuaternion: "Quaternion",
	TypeVmatrix:    "Vmatrix",
	TypeUint64:     "Uint64",
	TypeUint8:      "Uint8",
}

// Valid reports whether t is a tag of the supported profile.
func (t AttributeType) Valid() bool {
	if t >= TypeElement && t <= TypeUint8 {
		return true
	}

	return t >= TypeElementArray && t <= TypeUint64Array
}

// IsArray reports whether t is one of the array kinds.
func (t AttributeType) IsArray() bool {
	return t >= TypeElementArray && t <= TypeUint64Array
}

// Scalar returns the scalar counterpart of an array kind.
// For scalar kinds it returns t unchanged.
func (t AttributeType) Scalar() AttributeType {
	if t.IsArray() {
		return t - ArrayOffset
	}

	return t
}

// String returns the symbolic kind name, e.g. "Float" or "Vector3Array".
// This name doubles as the tagged-union discriminant for non-element values.
func (t AttributeType) String() string {
	if !t.Valid() {
		return "Unknown"
	}

	if t.IsArray() {
		return scalarNames[t-ArrayOffset] + "Array"
	}

	return scalarNames[t]
}
