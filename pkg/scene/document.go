// Package scene provides a read-only view over a glTF document: default
// scene resolution, depth-first traversal with composed world transforms,
// and decoding of the POSITION and index accessors extraction needs.
package scene

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
)

// Scene access errors.
var (
	ErrNoScene      = errors.New("document declares no scenes")
	ErrNoPosition   = errors.New("primitive has no POSITION attribute")
	ErrNoBufferView = errors.New("accessor has no buffer view")
)

// Document wraps a parsed glTF document.
type Document struct {
	doc *gltf.Document
}

// Open loads a .gltf or .glb file from disk.
func Open(path string) (*Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{doc: doc}, nil
}

// FromGLTF wraps an already-loaded glTF document.
func FromGLTF(doc *gltf.Document) *Document {
	return &Document{doc: doc}
}

// DefaultScene returns the document's default scene, or the first declared
// scene if none is marked default. A document with no scenes is an error.
func (d *Document) DefaultScene() (*Scene, error) {
	idx := uint32(0)
	if d.doc.Scene != nil {
		idx = *d.doc.Scene
	}
	if int(idx) >= len(d.doc.Scenes) {
		return nil, ErrNoScene
	}
	return &Scene{doc: d.doc, scene: d.doc.Scenes[idx]}, nil
}

// Stats summarizes document contents for inspection output.
type Stats struct {
	Scenes     int
	Nodes      int
	Meshes     int
	Primitives int
	Triangles  int
}

// Stats counts the document's scenes, nodes, meshes, triangle-mode
// primitives and triangles. Non-triangle primitives are counted as
// primitives but contribute no triangles.
func (d *Document) Stats() Stats {
	st := Stats{
		Scenes: len(d.doc.Scenes),
		Nodes:  len(d.doc.Nodes),
		Meshes: len(d.doc.Meshes),
	}
	for _, m := range d.doc.Meshes {
		st.Primitives += len(m.Primitives)
		for _, p := range m.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			prim := &Primitive{doc: d.doc, prim: p}
			st.Triangles += prim.IndexCount() / 3
		}
	}
	return st
}
