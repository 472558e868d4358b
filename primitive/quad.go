package primitive

import "github.com/gogpu/sketch/geom"

// Quad draws a four-cornered polygon. The default quad is a 100×100 square
// centered at the origin; explicit dimensions scale the corners about the
// quad's centroid before tessellation.
type Quad struct {
	Options
	corners [4]geom.Point
}

// NewQuad creates a quad with the default corners.
func NewQuad() *Quad {
	return &Quad{corners: [4]geom.Point{
		geom.Pt(-50, -50),
		geom.Pt(-50, 50),
		geom.Pt(50, 50),
		geom.Pt(50, -50),
	}}
}

// SetPoints uses the given four points as the quad's corners.
func (q *Quad) SetPoints(a, b, c, d geom.Point) {
	q.corners = [4]geom.Point{a, b, c, d}
}

// Kind implements Primitive.
func (q *Quad) Kind() Kind {
	return KindQuad
}

// Drawn implements Primitive.
func (q *Quad) Drawn(ctx *Context) (Drawn, error) {
	return drawOutline(ctx, &q.Options, KindQuad, q.corners[:])
}
