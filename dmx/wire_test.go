package dmx

import (
	"bytes"
	"encoding/binary"
	"math"
)

// wire builds encoded test input. The production code has no encode path, so
// tests assemble bytes by hand through this helper.
type wire struct {
	buf bytes.Buffer
}

func (w *wire) raw(b ...byte) *wire {
	w.buf.Write(b)
	return w
}

func (w *wire) u8(v uint8) *wire {
	w.buf.WriteByte(v)
	return w
}

func (w *wire) i32(v int32) *wire {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])

	return w
}

func (w *wire) u64(v uint64) *wire {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])

	return w
}

func (w *wire) f32(v float32) *wire {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf.Write(b[:])

	return w
}

func (w *wire) f32s(vs ...float32) *wire {
	for _, v := range vs {
		w.f32(v)
	}

	return w
}

func (w *wire) cstr(s string) *wire {
	w.buf.WriteString(s)
	w.buf.WriteByte(0)

	return w
}

func (w *wire) bytes() []byte {
	return w.buf.Bytes()
}

// fixture assembles a small but representative document:
//
//	element 0 "root" (DmElement): children -> [1], position, tags, blob,
//	                              title -> strings[1], missing -> absent ref
//	element 1 "kid" (DmeChild):   parent -> element 0 (a cycle), position
//
// plus two prefix attributes and a string table shared by names and values.
func fixture() []byte {
	w := &wire{}

	w.cstr("<!-- dmx encoding binary 9 format vmap 29 -->\n")
	w.i32(0) // reserved

	// Prefix attributes: names inline, String values inline.
	w.i32(2)
	w.cstr("map_version").u8(2).i32(7)
	w.cstr("comment").u8(5).cstr("test fixture")

	// String table.
	strings := []string{
		"DmElement", // 0
		"root",      // 1
		"children",  // 2
		"DmeChild",  // 3
		"kid",       // 4
		"position",  // 5
		"tags",      // 6
		"blob",      // 7
		"title",     // 8
		"missing",   // 9
		"parent",    // 10
	}
	w.i32(int32(len(strings)))
	for _, s := range strings {
		w.cstr(s)
	}

	// Element headers.
	w.i32(2)
	w.i32(0).i32(1).raw(guid(0x00)...) // type DmElement, name root
	w.i32(3).i32(4).raw(guid(0x10)...) // type DmeChild, name kid

	// Element bodies.
	w.i32(6) // root: 6 attributes
	w.i32(2).u8(33).i32(1).i32(1)                          // children: ElementArray [1]
	w.i32(5).u8(10).f32s(1, 2, 3)                          // position: Vector3
	w.i32(6).u8(37).i32(2).cstr("a").cstr("b")             // tags: StringArray
	w.i32(7).u8(6).i32(4).raw(0xDE, 0xAD, 0xBE, 0xEF)      // blob: Binary
	w.i32(8).u8(5).i32(1)                                  // title: String -> "root"
	w.i32(9).u8(5).i32(-1)                                 // missing: String, absent

	w.i32(2) // kid: 2 attributes
	w.i32(10).u8(1).i32(0) // parent: Element -> root (cycle)
	w.i32(5).u8(10).f32s(4, 5, 6)

	return w.bytes()
}

func guid(base byte) []byte {
	b := make([]byte, 16)
	for i := range b {
		b[i] = base + byte(i)
	}

	return b
}
