package navmesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary format errors.
var (
	ErrInvalidMagic       = errors.New("invalid navmesh magic: expected 'NAVM'")
	ErrUnsupportedVersion = errors.New("unsupported navmesh version")
	ErrTruncated          = errors.New("truncated navmesh data")
)

const (
	binaryMagic   = "NAVM"
	binaryVersion = uint32(1)

	// Sanity cap for decode; a real mesh never gets close.
	maxDecodeElems = 1 << 28
)

// binaryHeader is the fixed-size part of the format, written little-endian
// directly after the 4-byte magic.
type binaryHeader struct {
	Version       uint32
	BMin          [3]float32
	BMax          [3]float32
	CellSize      float32
	CellHeight    float32
	VertexCount   uint32
	TriangleCount uint32
}

// EncodeBinary writes the mesh in the NAVM binary format: magic, header,
// vertex floats, triangle indices, all little-endian.
func EncodeBinary(w io.Writer, m *Mesh) error {
	if _, err := io.WriteString(w, binaryMagic); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	hdr := binaryHeader{
		Version:       binaryVersion,
		BMin:          m.BMin,
		BMax:          m.BMax,
		CellSize:      m.CellSize,
		CellHeight:    m.CellHeight,
		VertexCount:   uint32(m.VertexCount()),
		TriangleCount: uint32(m.TriangleCount()),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Vertices); err != nil {
		return fmt.Errorf("writing vertices: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Triangles); err != nil {
		return fmt.Errorf("writing triangles: %w", err)
	}
	return nil
}

// DecodeBinary reads a mesh written by EncodeBinary.
func DecodeBinary(r io.Reader) (*Mesh, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrTruncated
	}
	if string(magic[:]) != binaryMagic {
		return nil, ErrInvalidMagic
	}

	var hdr binaryHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, ErrTruncated
	}
	if hdr.Version != binaryVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	if hdr.VertexCount > maxDecodeElems || hdr.TriangleCount > maxDecodeElems {
		return nil, fmt.Errorf("implausible element counts: %d vertices, %d triangles",
			hdr.VertexCount, hdr.TriangleCount)
	}

	m := &Mesh{
		Vertices:   make([]float32, 3*hdr.VertexCount),
		Triangles:  make([]uint32, 3*hdr.TriangleCount),
		BMin:       hdr.BMin,
		BMax:       hdr.BMax,
		CellSize:   hdr.CellSize,
		CellHeight: hdr.CellHeight,
	}
	if err := binary.Read(r, binary.LittleEndian, m.Vertices); err != nil {
		return nil, ErrTruncated
	}
	if err := binary.Read(r, binary.LittleEndian, m.Triangles); err != nil {
		return nil, ErrTruncated
	}

	for _, idx := range m.Triangles {
		if idx >= hdr.VertexCount {
			return nil, fmt.Errorf("triangle index %d out of range (%d vertices)",
				idx, hdr.VertexCount)
		}
	}
	return m, nil
}
