package navmesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/navforge/pkg/math"
)

// VoxelBuilder builds navigation meshes by rasterizing the input triangles
// into a span heightfield, filtering spans against the agent's dimensions,
// and meshing the surviving walkable span tops.
type VoxelBuilder struct{}

// NewVoxelBuilder returns a ready-to-use builder. The builder is stateless;
// one instance can serve any number of Build calls.
func NewVoxelBuilder() *VoxelBuilder {
	return &VoxelBuilder{}
}

// Build implements Builder.
func (b *VoxelBuilder) Build(positions []float32, indices []uint32, s Settings) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build settings: %w", err)
	}
	if len(indices) == 0 || len(positions) == 0 {
		return nil, ErrNoGeometry
	}

	bmin, bmax := calcBounds(positions)

	width := int((bmax[0]-bmin[0])/s.CellSize + 0.5)
	depth := int((bmax[2]-bmin[2])/s.CellSize + 0.5)
	if width < 1 {
		width = 1
	}
	if depth < 1 {
		depth = 1
	}
	if width*depth > maxGridCells {
		return nil, fmt.Errorf("%w: %dx%d cells at cell_size %g",
			ErrGridTooLarge, width, depth, s.CellSize)
	}

	walkableHeightVox := int(gomath.Ceil(float64(s.AgentHeight / s.CellHeight)))
	climbVox := int(gomath.Floor(float64(s.AgentClimb / s.CellHeight)))
	radiusVox := int(gomath.Ceil(float64(s.AgentRadius / s.CellSize)))

	hf := newHeightfield(width, depth, bmin, bmax, s.CellSize, s.CellHeight)

	// Slope test against the face normal's vertical component.
	walkableThr := float32(gomath.Cos(float64(s.MaxSlopeDeg) / 180.0 * gomath.Pi))
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertexAt(positions, indices[i])
		v1 := vertexAt(positions, indices[i+1])
		v2 := vertexAt(positions, indices[i+2])
		hf.rasterizeTriangle(v0, v1, v2, triangleNormalY(v0, v1, v2) > walkableThr)
	}

	hf.filterLowHangingObstacles(climbVox)
	hf.filterLedgeSpans(walkableHeightVox, climbVox)
	hf.filterLowHeightSpans(walkableHeightVox)
	hf.erodeWalkableArea(radiusVox, climbVox)
	hf.removeIslands(s.MinRegionArea, climbVox)

	mesh := hf.buildMesh()
	if len(mesh.Triangles) == 0 {
		return nil, ErrNoWalkableSurface
	}
	return mesh, nil
}

// buildMesh emits one quad per walkable span top, with vertices
// deduplicated through a voxel-corner index map so adjacent cells at the
// same height share vertices.
func (hf *heightfield) buildMesh() *Mesh {
	type corner struct {
		x, y, z int
	}
	cornerIndex := make(map[corner]uint32)

	mesh := &Mesh{
		BMin:       hf.bmin,
		BMax:       hf.bmax,
		CellSize:   hf.cs,
		CellHeight: hf.ch,
	}

	vertexOf := func(c corner) uint32 {
		if idx, ok := cornerIndex[c]; ok {
			return idx
		}
		idx := uint32(len(mesh.Vertices) / 3)
		cornerIndex[c] = idx
		mesh.Vertices = append(mesh.Vertices,
			hf.bmin[0]+float32(c.x)*hf.cs,
			hf.bmin[1]+float32(c.y)*hf.ch,
			hf.bmin[2]+float32(c.z)*hf.cs,
		)
		return idx
	}

	for z := 0; z < hf.depth; z++ {
		for x := 0; x < hf.width; x++ {
			for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
				if !s.walkable {
					continue
				}
				y := s.max
				p00 := vertexOf(corner{x, y, z})
				p01 := vertexOf(corner{x, y, z + 1})
				p11 := vertexOf(corner{x + 1, y, z + 1})
				p10 := vertexOf(corner{x + 1, y, z})

				// Wound counter-clockwise seen from above (+Y normal).
				mesh.Triangles = append(mesh.Triangles,
					p00, p01, p11,
					p00, p11, p10,
				)
			}
		}
	}
	return mesh
}

func calcBounds(positions []float32) (bmin, bmax [3]float32) {
	bmin = [3]float32{positions[0], positions[1], positions[2]}
	bmax = bmin
	for i := 3; i+2 < len(positions); i += 3 {
		v := [3]float32{positions[i], positions[i+1], positions[i+2]}
		bmin = minv3(bmin, v)
		bmax = maxv3(bmax, v)
	}
	return bmin, bmax
}

func vertexAt(positions []float32, idx uint32) [3]float32 {
	return [3]float32{positions[idx*3], positions[idx*3+1], positions[idx*3+2]}
}

func triangleNormalY(v0, v1, v2 [3]float32) float32 {
	a := math.Vec3{X: v0[0], Y: v0[1], Z: v0[2]}
	b := math.Vec3{X: v1[0], Y: v1[1], Z: v1[2]}
	c := math.Vec3{X: v2[0], Y: v2[1], Z: v2[2]}
	return b.Sub(a).Cross(c.Sub(a)).Normalize().Y
}
