package primitive

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
)

// Mesh draws caller-supplied vertex data directly: a triangle list with
// optional per-vertex colors and texture coordinates, and an optional
// index list. With no indices the points are consumed three at a time.
type Mesh struct {
	Options
	points    []geom.Point
	colors    []colors.RGBA
	texCoords []geom.Point2
	indices   []int
}

// NewMesh creates an empty mesh primitive.
func NewMesh() *Mesh {
	return &Mesh{}
}

// SetPoints replaces the mesh's vertex positions.
func (m *Mesh) SetPoints(points ...geom.Point) {
	m.points = points
}

// SetColors replaces the mesh's per-vertex colors.
// Missing entries fall back to the resolved fill color.
func (m *Mesh) SetColors(cols ...colors.RGBA) {
	m.colors = cols
}

// SetTexCoords replaces the mesh's per-vertex texture coordinates.
func (m *Mesh) SetTexCoords(texCoords ...geom.Point2) {
	m.texCoords = texCoords
}

// SetIndices replaces the mesh's index list. Indices reference the
// primitive's own points.
func (m *Mesh) SetIndices(indices ...int) {
	m.indices = indices
}

// Kind implements Primitive.
func (m *Mesh) Kind() Kind {
	return KindMesh
}

// Drawn implements Primitive.
func (m *Mesh) Drawn(ctx *Context) (Drawn, error) {
	if len(m.points) < 3 {
		return Drawn{Spatial: m.spatial()}, nil
	}

	x, y, _, err := m.dims.Scalars(ctx)
	if err != nil {
		return Drawn{}, err
	}
	points := scaleToDimensions(m.points, x, y)

	fillColor, _ := m.fill(ctx.Theme, KindMesh)
	cols := make([]colors.RGBA, len(points))
	for i := range cols {
		if i < len(m.colors) {
			cols[i] = m.colors[i]
		} else {
			cols[i] = fillColor
		}
	}

	texCoords := m.texCoords
	if len(texCoords) < len(points) {
		texCoords = texCoordsFor(points)
	} else {
		texCoords = texCoords[:len(points)]
	}

	indices := m.indices
	if len(indices) == 0 {
		// No explicit indices: triangle list in point order, dropping
		// a trailing partial triangle.
		n := len(points) - len(points)%3
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
	} else {
		for _, i := range indices {
			if i < 0 || i >= len(points) {
				// Out-of-range indices would corrupt the shared mesh;
				// drop the whole contribution instead.
				return Drawn{Spatial: m.spatial()}, nil
			}
		}
	}

	vr, ir, err := ctx.Mesh.PushGeometry(points, cols, texCoords, indices)
	if err != nil {
		return Drawn{}, err
	}
	return Drawn{Spatial: m.spatial(), Vertices: vr, Indices: ir}, nil
}
