package dmx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leops/dmxparser/errs"
	"github.com/leops/dmxparser/source"
)

func decodeValue(t *testing.T, data []byte, mode stringMode) (Value, error) {
	t.Helper()
	return readValue(source.NewSliceSource(data), mode)
}

func TestReadValue_Scalars(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Value
	}{
		{"Element", (&wire{}).u8(1).i32(5).bytes(), ElementID(5)},
		{"Element negative", (&wire{}).u8(1).i32(-1).bytes(), ElementID(-1)},
		{"Int", (&wire{}).u8(2).i32(-7).bytes(), Int(-7)},
		{"Float", (&wire{}).u8(3).f32(2.5).bytes(), Float(2.5)},
		{"Bool false", (&wire{}).u8(4).u8(0).bytes(), Bool(false)},
		{"Bool true", (&wire{}).u8(4).u8(3).bytes(), Bool(true)},
		{"Binary", (&wire{}).u8(6).i32(2).raw(0xAB, 0xCD).bytes(), Binary{0xAB, 0xCD}},
		{"Time", (&wire{}).u8(7).i32(1500).bytes(), Time{Millis: 1500}},
		{"Color", (&wire{}).u8(8).raw(255, 128, 0, 255).bytes(), Color{R: -1, G: -128, B: 0, A: -1}},
		{"Vector2", (&wire{}).u8(9).f32s(1, 2).bytes(), Vector2{X: 1, Y: 2}},
		{"Vector3", (&wire{}).u8(10).f32s(1, 2, 3).bytes(), Vector3{X: 1, Y: 2, Z: 3}},
		{"Vector4", (&wire{}).u8(11).f32s(1, 2, 3, 4).bytes(), Vector4{X: 1, Y: 2, Z: 3, W: 4}},
		{"Qangle", (&wire{}).u8(12).f32s(10, 20, 30).bytes(), Qangle{Pitch: 10, Yaw: 20, Roll: 30}},
		{"Quaternion", (&wire{}).u8(13).f32s(0, 0, 0, 1).bytes(), Quaternion{W: 1}},
		{"Uint64", (&wire{}).u8(15).u64(1 << 40).bytes(), Uint64(1 << 40)},
		{"Uint8", (&wire{}).u8(16).u8(200).bytes(), Uint8(200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeValue(t, tc.data, stringTableRef)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadValue_Vmatrix(t *testing.T) {
	w := &wire{}
	w.u8(14)
	var want Vmatrix
	for i := range want {
		want[i] = float32(i)
		w.f32(float32(i))
	}

	got, err := decodeValue(t, w.bytes(), stringTableRef)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadValue_StringModes(t *testing.T) {
	// Element bodies store String scalars as table references.
	got, err := decodeValue(t, (&wire{}).u8(5).i32(3).bytes(), stringTableRef)
	require.NoError(t, err)
	require.Equal(t, StringID(3), got)

	// Prefix attributes store them inline.
	got, err = decodeValue(t, (&wire{}).u8(5).cstr("inline").bytes(), stringInline)
	require.NoError(t, err)
	require.Equal(t, String("inline"), got)
}

func TestReadValue_Arrays(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Value
	}{
		{"empty", (&wire{}).u8(34).i32(0).bytes(), IntArray{}},
		{"one", (&wire{}).u8(34).i32(1).i32(42).bytes(), IntArray{42}},
		{"many", (&wire{}).u8(34).i32(3).i32(1).i32(2).i32(3).bytes(), IntArray{1, 2, 3}},
		{"elements", (&wire{}).u8(33).i32(2).i32(0).i32(-1).bytes(), ElementArray{0, -1}},
		{"floats", (&wire{}).u8(35).i32(2).f32s(1.5, 2.5).bytes(), FloatArray{1.5, 2.5}},
		{"bools", (&wire{}).u8(36).i32(2).u8(0).u8(1).bytes(), BoolArray{false, true}},
		// String array elements are inline even in table-ref mode.
		{"strings", (&wire{}).u8(37).i32(2).cstr("x").cstr("y").bytes(), StringArray{"x", "y"}},
		// Binary array elements repeat the per-element length prefix.
		{"binaries", (&wire{}).u8(38).i32(2).i32(1).raw(0xAA).i32(2).raw(0xBB, 0xCC).bytes(),
			BinaryArray{{0xAA}, {0xBB, 0xCC}}},
		{"times", (&wire{}).u8(39).i32(1).i32(250).bytes(), TimeArray{{Millis: 250}}},
		{"colors", (&wire{}).u8(40).i32(1).raw(1, 2, 3, 4).bytes(), ColorArray{{R: 1, G: 2, B: 3, A: 4}}},
		{"vector3s", (&wire{}).u8(42).i32(1).f32s(1, 2, 3).bytes(), Vector3Array{{X: 1, Y: 2, Z: 3}}},
		{"qangles", (&wire{}).u8(44).i32(1).f32s(1, 2, 3).bytes(), QangleArray{{Pitch: 1, Yaw: 2, Roll: 3}}},
		{"uint64s", (&wire{}).u8(47).i32(2).u64(1).u64(2).bytes(), Uint64Array{1, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeValue(t, tc.data, stringTableRef)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadValue_UnknownTag(t *testing.T) {
	for _, tag := range []byte{0, 17, 32, 48, 200} {
		_, err := decodeValue(t, (&wire{}).u8(tag).bytes(), stringTableRef)

		var formatErr *errs.FormatError
		require.ErrorAs(t, err, &formatErr, "tag %d", tag)
		require.Contains(t, err.Error(), "unsupported attribute type tag")
	}
}

func TestReadValue_NegativeCounts(t *testing.T) {
	var formatErr *errs.FormatError

	_, err := decodeValue(t, (&wire{}).u8(6).i32(-5).bytes(), stringTableRef)
	require.ErrorAs(t, err, &formatErr)

	_, err = decodeValue(t, (&wire{}).u8(34).i32(-5).bytes(), stringTableRef)
	require.ErrorAs(t, err, &formatErr)
}

func TestReadValue_Truncated(t *testing.T) {
	var ioErr *errs.IOError

	_, err := decodeValue(t, (&wire{}).u8(10).f32(1).bytes(), stringTableRef)
	require.ErrorAs(t, err, &ioErr)

	_, err = decodeValue(t, (&wire{}).u8(6).i32(100).bytes(), stringTableRef)
	require.ErrorAs(t, err, &ioErr)
}
