package dmx

import (
	"github.com/google/uuid"

	"github.com/leops/dmxparser/internal/hash"
)

// Index provides hash-keyed element lookup over a decoded document: by
// element name, by element type name and by GUID. Build it once per document;
// the index is read-only afterwards and safe for concurrent use.
//
// Name and type keys are xxHash64 IDs. Lookups re-check the resolved string so
// a hash collision can never surface a wrong element.
type Index struct {
	doc    *Document
	byName map[uint64][]ElementID
	byType map[uint64][]ElementID
	byGUID map[uuid.UUID]ElementID
}

// BuildIndex scans the element headers and builds a lookup index.
// Elements whose name or type reference is absent are simply not indexed under
// that key; an out-of-range reference is a ReferenceError.
func (d *Document) BuildIndex() (*Index, error) {
	ix := &Index{
		doc:    d,
		byName: make(map[uint64][]ElementID),
		byType: make(map[uint64][]ElementID),
		byGUID: make(map[uuid.UUID]ElementID, len(d.Headers)),
	}

	for i, h := range d.Headers {
		id := ElementID(i)

		if name, ok, err := d.String(h.Name); err != nil {
			return nil, err
		} else if ok {
			key := hash.ID(name)
			ix.byName[key] = append(ix.byName[key], id)
		}

		if typeName, ok, err := d.String(h.Type); err != nil {
			return nil, err
		} else if ok {
			key := hash.ID(typeName)
			ix.byType[key] = append(ix.byType[key], id)
		}

		ix.byGUID[h.GUID] = id
	}

	return ix, nil
}

// ByName returns the elements whose header name equals name, in document order.
func (ix *Index) ByName(name string) []ElementID {
	return ix.verify(ix.byName[hash.ID(name)], name, func(h ElementHeader) StringRef { return h.Name })
}

// ByType returns the elements whose declared type equals typeName, in
// document order.
func (ix *Index) ByType(typeName string) []ElementID {
	return ix.verify(ix.byType[hash.ID(typeName)], typeName, func(h ElementHeader) StringRef { return h.Type })
}

// ByGUID returns the element carrying the given GUID.
func (ix *Index) ByGUID(g uuid.UUID) (ElementID, bool) {
	id, ok := ix.byGUID[g]
	return id, ok
}

// verify filters hash-bucket candidates down to exact string matches.
func (ix *Index) verify(candidates []ElementID, want string, ref func(ElementHeader) StringRef) []ElementID {
	out := candidates[:0:0]
	for _, id := range candidates {
		// Refs were range-checked by BuildIndex.
		got, ok, _ := ix.doc.String(ref(ix.doc.Headers[id]))
		if ok && got == want {
			out = append(out, id)
		}
	}

	return out
}
