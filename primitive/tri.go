package primitive

import "github.com/gogpu/sketch/geom"

// Tri draws a triangle. The default triangle spans 100 units and points
// along the positive Y axis.
type Tri struct {
	Options
	points [3]geom.Point
}

// NewTri creates a triangle with the default points.
func NewTri() *Tri {
	return &Tri{points: [3]geom.Point{
		geom.Pt(-50, -50),
		geom.Pt(50, -50),
		geom.Pt(0, 50),
	}}
}

// SetPoints uses the given three points as the triangle's corners.
func (t *Tri) SetPoints(a, b, c geom.Point) {
	t.points = [3]geom.Point{a, b, c}
}

// Kind implements Primitive.
func (t *Tri) Kind() Kind {
	return KindTri
}

// Drawn implements Primitive.
func (t *Tri) Drawn(ctx *Context) (Drawn, error) {
	return drawOutline(ctx, &t.Options, KindTri, t.points[:])
}
