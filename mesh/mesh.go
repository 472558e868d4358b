// Package mesh provides the per-frame intermediary vertex store shared by
// all in-flight drawings, and the committed mesh produced at frame end.
//
// The intermediary mesh is append-only within a frame: ranges returned by
// PushVertexRange and PushIndices stay valid until Clear. Backing storage
// is amortized-doubling slices, so previously returned ranges never move.
package mesh

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
)

// Range is a half-open [Start, End) span into one of the intermediary
// mesh's attribute stores.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range spans no elements.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// VertexRanges locates one drawing's vertex attributes within the
// intermediary mesh. The draw context keeps the three stores parallel (one
// color and one texture coordinate per point), so all three ranges cover the
// same vertices and any attribute can be read back by point slot.
type VertexRanges struct {
	Points    Range
	Colors    Range
	TexCoords Range
}

// Intermediary is the shared scratch mesh that all pending drawings write
// into. It is owned by the enclosing draw context and reset once per frame.
type Intermediary struct {
	points    []geom.Point
	colors    []colors.RGBA
	texCoords []geom.Point2
	indices   []int
}

// NewIntermediary creates an empty intermediary mesh.
func NewIntermediary() *Intermediary {
	return &Intermediary{}
}

// PushVertexRange appends vertex attributes and returns the ranges at which
// they were stored. The store itself does not pad or truncate; callers that
// read attributes back by point slot must push one color and one texture
// coordinate per point.
func (m *Intermediary) PushVertexRange(points []geom.Point, cols []colors.RGBA, texCoords []geom.Point2) VertexRanges {
	var vr VertexRanges
	vr.Points.Start = len(m.points)
	m.points = append(m.points, points...)
	vr.Points.End = len(m.points)

	vr.Colors.Start = len(m.colors)
	m.colors = append(m.colors, cols...)
	vr.Colors.End = len(m.colors)

	vr.TexCoords.Start = len(m.texCoords)
	m.texCoords = append(m.texCoords, texCoords...)
	vr.TexCoords.End = len(m.texCoords)

	return vr
}

// PushIndices appends index values referencing previously pushed vertex
// slots and returns the range at which they were stored.
func (m *Intermediary) PushIndices(values ...int) Range {
	start := len(m.indices)
	m.indices = append(m.indices, values...)
	return Range{Start: start, End: len(m.indices)}
}

// Clear resets all stores to empty while retaining capacity.
// It is invoked once per frame before any drawing calls.
func (m *Intermediary) Clear() {
	m.points = m.points[:0]
	m.colors = m.colors[:0]
	m.texCoords = m.texCoords[:0]
	m.indices = m.indices[:0]
}

// Point returns the point at the given slot.
func (m *Intermediary) Point(i int) geom.Point {
	return m.points[i]
}

// Color returns the color at the given slot.
func (m *Intermediary) Color(i int) colors.RGBA {
	return m.colors[i]
}

// TexCoord returns the texture coordinate at the given slot.
func (m *Intermediary) TexCoord(i int) geom.Point2 {
	return m.texCoords[i]
}

// Index returns the index value at the given slot.
func (m *Intermediary) Index(i int) int {
	return m.indices[i]
}

// PointsLen returns the number of stored points.
func (m *Intermediary) PointsLen() int {
	return len(m.points)
}

// IndicesLen returns the number of stored indices.
func (m *Intermediary) IndicesLen() int {
	return len(m.indices)
}

// PointSlice returns the points within the given range.
// The returned slice aliases the store and stays valid for the frame.
func (m *Intermediary) PointSlice(r Range) []geom.Point {
	return m.points[r.Start:r.End]
}

// IndexSlice returns the index values within the given range.
// The returned slice aliases the store and stays valid for the frame.
func (m *Intermediary) IndexSlice(r Range) []int {
	return m.indices[r.Start:r.End]
}
