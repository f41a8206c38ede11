package extract

import (
	"errors"
	gomath "math"
	"sync"
)

// ErrTooManyVertices is returned when the summed vertex count of all
// collected primitives cannot be addressed by uint32 indices.
var ErrTooManyVertices = errors.New("total vertex count exceeds uint32 index range")

// Geometry is a flattened world-space triangle soup. Positions holds xyz
// float triples; every index addresses the shared position buffer.
type Geometry struct {
	Positions []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the soup.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles in the soup.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Flatten concatenates the collected primitives into one triangle soup.
//
// The work is done in two passes: a sizing pass sums vertex and index counts
// so the output buffers can be allocated exactly once, then a copy pass
// writes each primitive's world-transformed positions and offset-rebiased
// indices into its precomputed range. The pass order is the pair order both
// times, which keeps offsets and sizing in agreement.
func Flatten(pairs []Pair) (*Geometry, error) {
	return FlattenParallel(pairs, 1)
}

// FlattenParallel is Flatten with the copy pass fanned out over the given
// number of goroutines. Every primitive writes to a disjoint precomputed
// range, so no synchronization beyond the final join is needed. workers <= 1
// copies sequentially.
func FlattenParallel(pairs []Pair, workers int) (*Geometry, error) {
	totalVerts, totalIndices := flattenSizes(pairs)
	if err := checkIndexRange(totalVerts); err != nil {
		return nil, err
	}

	g := &Geometry{
		Positions: make([]float32, 3*totalVerts),
		Indices:   make([]uint32, totalIndices),
	}

	// Per-primitive output offsets, fixed ahead of the copy pass.
	vertOffsets := make([]uint32, len(pairs))
	indexOffsets := make([]int, len(pairs))
	var vertOffset uint32
	var indexOffset int
	for i, p := range pairs {
		vertOffsets[i] = vertOffset
		indexOffsets[i] = indexOffset
		vertOffset += uint32(len(p.Positions) / 3)
		indexOffset += len(p.Indices)
	}

	if workers <= 1 || len(pairs) < 2 {
		for i, p := range pairs {
			copyPair(g, p, vertOffsets[i], indexOffsets[i])
		}
		return g, nil
	}

	if workers > len(pairs) {
		workers = len(pairs)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(pairs); i += workers {
				copyPair(g, pairs[i], vertOffsets[i], indexOffsets[i])
			}
		}(w)
	}
	wg.Wait()
	return g, nil
}

// flattenSizes sums the output buffer sizes for the copy pass.
func flattenSizes(pairs []Pair) (totalVerts, totalIndices uint64) {
	for _, p := range pairs {
		totalVerts += uint64(len(p.Positions) / 3)
		totalIndices += uint64(len(p.Indices))
	}
	return totalVerts, totalIndices
}

// checkIndexRange rejects vertex totals that uint32 indices cannot address.
func checkIndexRange(totalVerts uint64) error {
	if totalVerts > gomath.MaxUint32 {
		return ErrTooManyVertices
	}
	return nil
}

// copyPair writes one primitive's transformed positions and rebiased indices
// into the pair's reserved output ranges.
func copyPair(g *Geometry, p Pair, vertOffset uint32, indexOffset int) {
	for i := 0; i+2 < len(p.Positions); i += 3 {
		pt := p.World.TransformPoint([3]float32{
			p.Positions[i], p.Positions[i+1], p.Positions[i+2],
		})
		out := int(vertOffset)*3 + i
		g.Positions[out] = pt[0]
		g.Positions[out+1] = pt[1]
		g.Positions[out+2] = pt[2]
	}
	for i, idx := range p.Indices {
		g.Indices[indexOffset+i] = vertOffset + idx
	}
}
