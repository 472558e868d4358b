package primitive

import "github.com/gogpu/sketch/geom"

// Polygon draws a closed polygon from an arbitrary point list.
// A polygon with fewer than three points resolves to an empty
// contribution rather than failing the frame.
type Polygon struct {
	Options
	points []geom.Point
}

// NewPolygon creates a polygon with the given points.
func NewPolygon(points ...geom.Point) *Polygon {
	return &Polygon{points: points}
}

// SetPoints replaces the polygon's points.
func (p *Polygon) SetPoints(points ...geom.Point) {
	p.points = points
}

// Kind implements Primitive.
func (p *Polygon) Kind() Kind {
	return KindPolygon
}

// Drawn implements Primitive.
func (p *Polygon) Drawn(ctx *Context) (Drawn, error) {
	if len(p.points) < 3 {
		return Drawn{Spatial: p.spatial()}, nil
	}
	return drawOutline(ctx, &p.Options, KindPolygon, p.points)
}
