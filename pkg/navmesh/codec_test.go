package navmesh

import (
	"bytes"
	"errors"
	"testing"
)

func sampleMesh() *Mesh {
	return &Mesh{
		Vertices:   []float32{0, 0, 0, 1, 0, 0, 0, 0, 1},
		Triangles:  []uint32{0, 1, 2},
		BMin:       [3]float32{0, 0, 0},
		BMax:       [3]float32{1, 0, 1},
		CellSize:   0.3,
		CellHeight: 0.2,
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	want := sampleMesh()

	var buf bytes.Buffer
	if err := EncodeBinary(&buf, want); err != nil {
		t.Fatalf("EncodeBinary failed: %v", err)
	}

	got, err := DecodeBinary(&buf)
	if err != nil {
		t.Fatalf("DecodeBinary failed: %v", err)
	}

	if len(got.Vertices) != len(want.Vertices) {
		t.Fatalf("got %d vertex floats, want %d", len(got.Vertices), len(want.Vertices))
	}
	for i := range want.Vertices {
		if got.Vertices[i] != want.Vertices[i] {
			t.Errorf("vertices[%d] = %v, want %v", i, got.Vertices[i], want.Vertices[i])
		}
	}
	for i := range want.Triangles {
		if got.Triangles[i] != want.Triangles[i] {
			t.Errorf("triangles[%d] = %d, want %d", i, got.Triangles[i], want.Triangles[i])
		}
	}
	if got.BMin != want.BMin || got.BMax != want.BMax {
		t.Errorf("bounds changed: got %v..%v, want %v..%v", got.BMin, got.BMax, want.BMin, want.BMax)
	}
	if got.CellSize != want.CellSize || got.CellHeight != want.CellHeight {
		t.Errorf("cell sizes changed: got %v/%v, want %v/%v",
			got.CellSize, got.CellHeight, want.CellSize, want.CellHeight)
	}
}

func TestDecodeInvalidMagic(t *testing.T) {
	data := []byte("XXXX and some trailing bytes")
	if _, err := DecodeBinary(bytes.NewReader(data)); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("got %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBinary(&buf, sampleMesh()); err != nil {
		t.Fatalf("EncodeBinary failed: %v", err)
	}
	data := buf.Bytes()

	for _, cut := range []int{0, 2, 4, 10, len(data) - 1} {
		if _, err := DecodeBinary(bytes.NewReader(data[:cut])); !errors.Is(err, ErrTruncated) {
			t.Errorf("cut at %d: got %v, want ErrTruncated", cut, err)
		}
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBinary(&buf, sampleMesh()); err != nil {
		t.Fatalf("EncodeBinary failed: %v", err)
	}
	data := buf.Bytes()
	data[4] = 99 // version field follows the magic

	if _, err := DecodeBinary(bytes.NewReader(data)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecodeRejectsOutOfRangeIndex(t *testing.T) {
	bad := sampleMesh()
	bad.Triangles = []uint32{0, 1, 7}

	var buf bytes.Buffer
	if err := EncodeBinary(&buf, bad); err != nil {
		t.Fatalf("EncodeBinary failed: %v", err)
	}
	if _, err := DecodeBinary(&buf); err == nil {
		t.Fatal("expected error for out-of-range triangle index")
	}
}
