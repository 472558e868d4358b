package mesh

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
)

// Vertex is one fully resolved vertex in the committed mesh.
type Vertex struct {
	Point     geom.Point
	Color     colors.RGBA
	TexCoords geom.Point2
}

// Mesh is the committed per-frame mesh: the flattened output of every
// resolved drawing, ready for upload. Vertices are untransformed; per-node
// transforms travel alongside in the frame's draw commands.
type Mesh struct {
	Points    []geom.Point
	Colors    []colors.RGBA
	TexCoords []geom.Point2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// PushVertex appends one vertex and returns its index.
func (m *Mesh) PushVertex(v Vertex) uint32 {
	i := uint32(len(m.Points))
	m.Points = append(m.Points, v.Point)
	m.Colors = append(m.Colors, v.Color)
	m.TexCoords = append(m.TexCoords, v.TexCoords)
	return i
}

// PushIndex appends one index.
func (m *Mesh) PushIndex(i uint32) {
	m.Indices = append(m.Indices, i)
}

// Clear resets the mesh while retaining capacity.
func (m *Mesh) Clear() {
	m.Points = m.Points[:0]
	m.Colors = m.Colors[:0]
	m.TexCoords = m.TexCoords[:0]
	m.Indices = m.Indices[:0]
}
