package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/navforge/pkg/math"
)

// Scene is one scene of a document: a set of root nodes.
type Scene struct {
	doc   *gltf.Document
	scene *gltf.Scene
}

// Name returns the scene name, which may be empty.
func (s *Scene) Name() string {
	return s.scene.Name
}

// Walk traverses the scene depth-first, parent before children, children in
// declaration order. Each visited node carries its composed world transform
// (childWorld = parentWorld * childLocal). Returning a non-nil error from
// visit aborts the traversal and propagates the error.
func (s *Scene) Walk(visit func(*Node) error) error {
	onPath := make(map[uint32]bool)
	for _, root := range s.scene.Nodes {
		if err := s.walkNode(root, math.Identity(), onPath, visit); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) walkNode(idx uint32, parent math.Mat4, onPath map[uint32]bool, visit func(*Node) error) error {
	if int(idx) >= len(s.doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	// The node graph must be acyclic; bail out instead of recursing forever
	// on a malformed document.
	if onPath[idx] {
		return fmt.Errorf("node %d is part of a cycle", idx)
	}
	onPath[idx] = true
	defer delete(onPath, idx)

	gn := s.doc.Nodes[idx]
	world := parent.Mul(localMatrix(gn))

	if err := visit(&Node{doc: s.doc, node: gn, world: world}); err != nil {
		return err
	}
	for _, child := range gn.Children {
		if err := s.walkNode(child, world, onPath, visit); err != nil {
			return err
		}
	}
	return nil
}

// localMatrix returns the node's local transform. A node carries either an
// explicit matrix or a translation/rotation/scale triple; an explicit
// non-identity matrix wins, everything else goes through TRS composition.
func localMatrix(n *gltf.Node) math.Mat4 {
	var zero [16]float32
	if n.Matrix != zero && !isIdentity16(n.Matrix) {
		return math.Mat4(n.Matrix)
	}

	t := math.Vec3{
		X: n.Translation[0],
		Y: n.Translation[1],
		Z: n.Translation[2],
	}
	r := math.Quat{
		X: n.Rotation[0],
		Y: n.Rotation[1],
		Z: n.Rotation[2],
		W: n.Rotation[3],
	}
	if r == (math.Quat{}) {
		r = math.QuatIdentity()
	}
	s := math.Vec3{
		X: float32(n.Scale[0]),
		Y: float32(n.Scale[1]),
		Z: float32(n.Scale[2]),
	}
	if s == (math.Vec3{}) {
		s = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return math.Compose(t, r, s)
}

func isIdentity16(m [16]float32) bool {
	return m == [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Node is a visited scene node paired with its composed world transform.
type Node struct {
	doc   *gltf.Document
	node  *gltf.Node
	world math.Mat4
}

// Name returns the node name, which may be empty.
func (n *Node) Name() string {
	return n.node.Name
}

// World returns the node's composed world transform.
func (n *Node) World() math.Mat4 {
	return n.world
}

// Mesh returns the mesh attached to the node, if any.
func (n *Node) Mesh() (*Mesh, bool) {
	if n.node.Mesh == nil || int(*n.node.Mesh) >= len(n.doc.Meshes) {
		return nil, false
	}
	return &Mesh{doc: n.doc, mesh: n.doc.Meshes[*n.node.Mesh]}, true
}

// Mesh is an ordered list of primitives.
type Mesh struct {
	doc  *gltf.Document
	mesh *gltf.Mesh
}

// Name returns the mesh name, which may be empty.
func (m *Mesh) Name() string {
	return m.mesh.Name
}

// Primitives returns the mesh's primitives in declaration order.
func (m *Mesh) Primitives() []*Primitive {
	prims := make([]*Primitive, len(m.mesh.Primitives))
	for i, p := range m.mesh.Primitives {
		prims[i] = &Primitive{doc: m.doc, prim: p}
	}
	return prims
}
