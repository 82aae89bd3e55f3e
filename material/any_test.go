package material

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leops/dmxparser/dmx"
	"github.com/leops/dmxparser/errs"
)

func TestAny_Tree(t *testing.T) {
	doc := &dmx.Document{
		Strings: []string{
			"DmElement", // 0
			"root",      // 1
			"DmeChild",  // 2
			"kid",       // 3
			"count",     // 4
			"title",     // 5
			"missing",   // 6
			"nums",      // 7
			"kids",      // 8
			"pos",       // 9
		},
		Headers: []dmx.ElementHeader{
			{Type: 0, Name: 1, GUID: uuid.UUID{0x01}},
			{Type: 2, Name: 3, GUID: uuid.UUID{0x02}},
		},
		Bodies: []dmx.ElementBody{
			{Attributes: []dmx.Attribute{
				{Name: 4, Value: dmx.Int(7)},
				{Name: 5, Value: dmx.StringID(1)},
				{Name: 6, Value: dmx.StringID(-1)},
				{Name: 7, Value: dmx.IntArray{1, 2}},
				{Name: 8, Value: dmx.ElementArray{1, -1}},
			}},
			{Attributes: []dmx.Attribute{
				{Name: 9, Value: dmx.Vector3{X: 4, Y: 5, Z: 6}},
			}},
		},
	}

	got, err := Any(New(doc).Root())
	require.NoError(t, err)

	require.Equal(t, &Element{
		Type: "DmElement",
		Name: "root",
		GUID: uuid.UUID{0x01},
		Attrs: []Field{
			{Name: "count", Value: int32(7)},
			{Name: "title", Value: "root"},
			{Name: "missing", Value: nil},
			{Name: "nums", Value: []int32{1, 2}},
			{Name: "kids", Value: []any{
				&Element{
					Type: "DmeChild",
					Name: "kid",
					GUID: uuid.UUID{0x02},
					Attrs: []Field{
						{Name: "pos", Value: dmx.Vector3{X: 4, Y: 5, Z: 6}},
					},
				},
				nil,
			}},
		},
	}, got)
}

func TestAny_ElementGet(t *testing.T) {
	el := &Element{Attrs: []Field{
		{Name: "x", Value: int32(1)},
		{Name: "y", Value: int32(2)},
	}}

	v, ok := el.Get("y")
	require.True(t, ok)
	require.Equal(t, int32(2), v)

	_, ok = el.Get("z")
	require.False(t, ok)
}

func TestAny_CyclicGraph(t *testing.T) {
	// testDoc's kid points back at the root, so a schemaless walk can never
	// finish. It must stop with a CycleError, not a stack overflow.
	_, err := Any(New(testDoc(), WithMaxDepth(16)).Root())

	var cycleErr *errs.CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.Equal(t, 16, cycleErr.Depth)
}
