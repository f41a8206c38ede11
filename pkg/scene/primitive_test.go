package scene

import (
	"encoding/binary"
	gomath "math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// addIndexAccessor appends a raw index accessor with the given component
// width, bypassing the modeler so narrow index types can be exercised.
func addIndexAccessor(doc *gltf.Document, values []uint32, compType gltf.ComponentType) uint32 {
	var data []byte
	switch compType {
	case gltf.ComponentUbyte:
		for _, v := range values {
			data = append(data, byte(v))
		}
	case gltf.ComponentUshort:
		for _, v := range values {
			data = binary.LittleEndian.AppendUint16(data, uint16(v))
		}
	case gltf.ComponentUint:
		for _, v := range values {
			data = binary.LittleEndian.AppendUint32(data, v)
		}
	}

	doc.Buffers = append(doc.Buffers, &gltf.Buffer{
		ByteLength: uint32(len(data)),
		Data:       data,
	})
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     uint32(len(doc.Buffers) - 1),
		ByteLength: uint32(len(data)),
	})
	doc.Accessors = append(doc.Accessors, &gltf.Accessor{
		BufferView:    gltf.Index(uint32(len(doc.BufferViews) - 1)),
		ComponentType: compType,
		Type:          gltf.AccessorScalar,
		Count:         uint32(len(values)),
	})
	return uint32(len(doc.Accessors) - 1)
}

func trianglePrimitive(t *testing.T, indices *uint32) (*gltf.Document, *Primitive) {
	t.Helper()
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	})
	prim := &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		Indices:    indices,
	}
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{prim}}}
	return doc, &Primitive{doc: doc, prim: prim}
}

func TestPositionsDecode(t *testing.T) {
	_, prim := trianglePrimitive(t, nil)

	got, err := prim.Positions()
	if err != nil {
		t.Fatalf("Positions failed: %v", err)
	}
	want := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("got %d floats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positions[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if prim.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", prim.VertexCount())
	}
}

func TestIndicesComponentWidths(t *testing.T) {
	values := []uint32{0, 2, 1}
	for _, compType := range []gltf.ComponentType{
		gltf.ComponentUbyte, gltf.ComponentUshort, gltf.ComponentUint,
	} {
		doc, prim := trianglePrimitive(t, nil)
		idx := addIndexAccessor(doc, values, compType)
		prim.prim.Indices = gltf.Index(idx)

		got, err := prim.Indices()
		if err != nil {
			t.Fatalf("component type %v: Indices failed: %v", compType, err)
		}
		if len(got) != len(values) {
			t.Fatalf("component type %v: got %d indices, want %d", compType, len(got), len(values))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Errorf("component type %v: indices[%d] = %d, want %d",
					compType, i, got[i], values[i])
			}
		}
	}
}

func TestImplicitIndices(t *testing.T) {
	// A primitive without an index accessor addresses its vertices
	// sequentially.
	_, prim := trianglePrimitive(t, nil)

	got, err := prim.Indices()
	if err != nil {
		t.Fatalf("Indices failed: %v", err)
	}
	want := []uint32{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("indices[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if prim.IndexCount() != 3 {
		t.Errorf("IndexCount = %d, want 3", prim.IndexCount())
	}
}

func TestPositionsMissingAttribute(t *testing.T) {
	doc := gltf.NewDocument()
	prim := &Primitive{doc: doc, prim: &gltf.Primitive{
		Attributes: map[string]uint32{},
	}}
	if _, err := prim.Positions(); err != ErrNoPosition {
		t.Fatalf("got %v, want ErrNoPosition", err)
	}
	if prim.VertexCount() != 0 {
		t.Errorf("VertexCount = %d, want 0", prim.VertexCount())
	}
}

func TestPositionsInterleavedStride(t *testing.T) {
	// Position data interleaved with one extra float per vertex
	// (stride 16): the decoder must honor the bufferView stride.
	var data []byte
	verts := [][4]float32{
		{0, 0, 0, 99},
		{1, 0, 0, 99},
		{0, 1, 0, 99},
	}
	for _, v := range verts {
		for _, f := range v {
			data = binary.LittleEndian.AppendUint32(data, gomath.Float32bits(f))
		}
	}

	doc := gltf.NewDocument()
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{
		ByteLength: uint32(len(data)),
		Data:       data,
	})
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     uint32(len(doc.Buffers) - 1),
		ByteLength: uint32(len(data)),
		ByteStride: 16,
	})
	doc.Accessors = append(doc.Accessors, &gltf.Accessor{
		BufferView:    gltf.Index(uint32(len(doc.BufferViews) - 1)),
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         3,
	})
	prim := &Primitive{doc: doc, prim: &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(len(doc.Accessors) - 1)},
	}}

	got, err := prim.Positions()
	if err != nil {
		t.Fatalf("Positions failed: %v", err)
	}
	want := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positions[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStats(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2})
	tri := &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		Indices:    gltf.Index(uint32(idx)),
	}
	lines := &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		Indices:    gltf.Index(uint32(idx)),
		Mode:       gltf.PrimitiveLines,
	}
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{tri, lines}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []uint32{0}

	st := FromGLTF(doc).Stats()
	if st.Meshes != 1 || st.Nodes != 1 || st.Primitives != 2 {
		t.Errorf("stats = %+v", st)
	}
	if st.Triangles != 1 {
		t.Errorf("Triangles = %d, want 1 (lines primitive contributes none)", st.Triangles)
	}
}
