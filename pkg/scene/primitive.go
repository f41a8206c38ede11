package scene

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/qmuntal/gltf"
)

// Primitive is a read-only view over one geometry primitive.
type Primitive struct {
	doc  *gltf.Document
	prim *gltf.Primitive
}

// IsTriangles reports whether the primitive uses triangle-list topology.
// Strips, fans, lines and points are not usable as navmesh input.
func (p *Primitive) IsTriangles() bool {
	return p.prim.Mode == gltf.PrimitiveTriangles
}

// VertexCount returns the POSITION accessor's element count, or zero when
// the attribute is missing.
func (p *Primitive) VertexCount() int {
	ai, ok := p.prim.Attributes[gltf.POSITION]
	if !ok || int(ai) >= len(p.doc.Accessors) {
		return 0
	}
	return int(p.doc.Accessors[ai].Count)
}

// IndexCount returns the index accessor's element count. A non-indexed
// primitive is addressed sequentially, so its index count equals its
// vertex count.
func (p *Primitive) IndexCount() int {
	if p.prim.Indices == nil {
		return p.VertexCount()
	}
	if int(*p.prim.Indices) >= len(p.doc.Accessors) {
		return 0
	}
	return int(p.doc.Accessors[*p.prim.Indices].Count)
}

// Positions decodes the POSITION attribute into a flat xyz float32 slice
// of length 3 * VertexCount.
func (p *Primitive) Positions() ([]float32, error) {
	ai, ok := p.prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, ErrNoPosition
	}
	acc, err := p.accessor(int(ai))
	if err != nil {
		return nil, err
	}
	if acc.ComponentType != gltf.ComponentFloat || acc.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("POSITION accessor must be float vec3, got component %v type %v",
			acc.ComponentType, acc.Type)
	}

	data, stride, err := p.accessorBytes(acc, 12)
	if err != nil {
		return nil, fmt.Errorf("POSITION accessor: %w", err)
	}

	count := int(acc.Count)
	out := make([]float32, 3*count)
	for i := 0; i < count; i++ {
		off := i * stride
		out[i*3+0] = gomath.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
		out[i*3+1] = gomath.Float32frombits(binary.LittleEndian.Uint32(data[off+4:]))
		out[i*3+2] = gomath.Float32frombits(binary.LittleEndian.Uint32(data[off+8:]))
	}
	return out, nil
}

// Indices decodes the index accessor into uint32 values, widening ubyte and
// ushort components. A primitive without an index accessor gets implicit
// sequential indices 0..VertexCount-1, per glTF non-indexed semantics.
func (p *Primitive) Indices() ([]uint32, error) {
	if p.prim.Indices == nil {
		out := make([]uint32, p.VertexCount())
		for i := range out {
			out[i] = uint32(i)
		}
		return out, nil
	}

	acc, err := p.accessor(int(*p.prim.Indices))
	if err != nil {
		return nil, err
	}

	var size int
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", acc.ComponentType)
	}

	data, stride, err := p.accessorBytes(acc, size)
	if err != nil {
		return nil, fmt.Errorf("index accessor: %w", err)
	}

	count := int(acc.Count)
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		off := i * stride
		switch size {
		case 1:
			out[i] = uint32(data[off])
		case 2:
			out[i] = uint32(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			out[i] = binary.LittleEndian.Uint32(data[off:])
		}
	}
	return out, nil
}

func (p *Primitive) accessor(idx int) (*gltf.Accessor, error) {
	if idx >= len(p.doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", idx)
	}
	return p.doc.Accessors[idx], nil
}

// accessorBytes resolves an accessor down to its backing bytes and element
// stride. A bufferView stride of zero means tightly packed elements of
// elemSize bytes.
func (p *Primitive) accessorBytes(acc *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if acc.BufferView == nil {
		return nil, 0, ErrNoBufferView
	}
	if int(*acc.BufferView) >= len(p.doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view index %d out of range", *acc.BufferView)
	}
	view := p.doc.BufferViews[*acc.BufferView]
	if int(view.Buffer) >= len(p.doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer index %d out of range", view.Buffer)
	}
	buf := p.doc.Buffers[view.Buffer]

	start := int(view.ByteOffset) + int(acc.ByteOffset)
	stride := int(view.ByteStride)
	if stride == 0 {
		stride = elemSize
	}
	need := start + (int(acc.Count)-1)*stride + elemSize
	if acc.Count == 0 {
		need = start
	}
	if need > len(buf.Data) {
		return nil, 0, fmt.Errorf("accessor needs %d bytes, buffer has %d", need, len(buf.Data))
	}
	return buf.Data[start:], stride, nil
}
