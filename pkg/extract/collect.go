// Package extract flattens a scene graph into a single world-space triangle
// soup: a depth-first collector pairs every triangle-mode primitive with its
// node's composed world transform, and a two-pass flattener concatenates the
// transformed positions and rebiased indices into exactly-sized buffers.
package extract

import (
	"fmt"

	"github.com/Faultbox/navforge/pkg/math"
	"github.com/Faultbox/navforge/pkg/scene"
)

// Pair is one collected primitive: its decoded geometry and the world
// transform of the node it was found on. Pairs only live for the duration
// of one extraction call.
type Pair struct {
	Positions []float32
	Indices   []uint32
	World     math.Mat4
}

// Collect walks the scene depth-first and returns every triangle-mode
// primitive paired with its node's world transform, in encounter order.
// Primitives with other topology modes are skipped without error. A scene
// with no triangle geometry yields an empty slice.
func Collect(s *scene.Scene) ([]Pair, error) {
	var pairs []Pair
	err := s.Walk(func(n *scene.Node) error {
		mesh, ok := n.Mesh()
		if !ok {
			return nil
		}
		for _, prim := range mesh.Primitives() {
			if !prim.IsTriangles() {
				continue
			}
			pos, err := prim.Positions()
			if err != nil {
				return fmt.Errorf("node %q: %w", n.Name(), err)
			}
			idx, err := prim.Indices()
			if err != nil {
				return fmt.Errorf("node %q: %w", n.Name(), err)
			}
			pairs = append(pairs, Pair{Positions: pos, Indices: idx, World: n.World()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
