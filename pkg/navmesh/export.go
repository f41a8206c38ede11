package navmesh

import (
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportDocument builds a minimal glTF document around the mesh: exactly
// one node holding one mesh with one triangle-list primitive. Vertex order
// and index values are carried over unchanged, so the document round-trips
// back to the same triangle list.
func ExportDocument(m *Mesh) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "navforge"

	positions := make([][3]float32, m.VertexCount())
	for i := range positions {
		positions[i] = [3]float32{
			m.Vertices[i*3],
			m.Vertices[i*3+1],
			m.Vertices[i*3+2],
		}
	}
	indices := make([]uint32, len(m.Triangles))
	copy(indices, m.Triangles)

	posAccessor := modeler.WritePosition(doc, positions)
	idxAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
		},
		Indices: gltf.Index(uint32(idxAccessor)),
	}
	doc.Meshes = []*gltf.Mesh{{Name: "navmesh", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "navmesh", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc
}

// Save writes the mesh as a glTF scene document. Files ending in .glb get
// the binary container, everything else the JSON form.
func Save(m *Mesh, path string) error {
	doc := ExportDocument(m)
	if strings.HasSuffix(strings.ToLower(path), ".glb") {
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}
