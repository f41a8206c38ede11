package navmesh

import "errors"

// Build errors.
var (
	ErrNoGeometry        = errors.New("no input geometry")
	ErrNoWalkableSurface = errors.New("no walkable surface found")
	ErrGridTooLarge      = errors.New("heightfield grid exceeds cell limit")
)

// Mesh is a walkable-surface navigation mesh: a triangle list in world
// space. Indices in Triangles address Vertices as xyz float triples.
type Mesh struct {
	Vertices  []float32
	Triangles []uint32

	BMin, BMax [3]float32
	CellSize   float32
	CellHeight float32
}

// VertexCount returns the number of mesh vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of mesh triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Builder turns a flat triangle soup into a navigation mesh. positions
// holds xyz float triples in world space, indices is a triangle list over
// them. Implementations must reject empty input with ErrNoGeometry.
type Builder interface {
	Build(positions []float32, indices []uint32, s Settings) (*Mesh, error)
}
