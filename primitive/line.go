package primitive

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/tess"
)

// Line draws a stroked segment between two points. Lines have no fill;
// the stroke weight falls back to the theme's default when unset.
type Line struct {
	Options
	start, end geom.Point
	hasPoints  bool
}

// NewLine creates a line between the given points.
func NewLine(start, end geom.Point) *Line {
	return &Line{start: start, end: end, hasPoints: true}
}

// SetPoints replaces the line's endpoints.
func (l *Line) SetPoints(start, end geom.Point) {
	l.start, l.end = start, end
	l.hasPoints = true
}

// Kind implements Primitive.
func (l *Line) Kind() Kind {
	return KindLine
}

// Drawn implements Primitive.
func (l *Line) Drawn(ctx *Context) (Drawn, error) {
	if !l.hasPoints || l.start == l.end {
		return Drawn{Spatial: l.spatial()}, nil
	}

	x, y, _, err := l.dims.Scalars(ctx)
	if err != nil {
		return Drawn{}, err
	}
	outline := scaleToDimensions([]geom.Point{l.start, l.end}, x, y)

	color := ctx.Theme.StrokeColor(KindLine)
	if l.color != nil {
		color = *l.color
	} else if l.strokeColor != nil {
		color = *l.strokeColor
	}
	opts := tess.StrokeOptions{
		Weight: ctx.Theme.StrokeWeight,
		Cap:    l.strokeCap,
		Join:   l.strokeJoin,
	}
	if l.strokeWeight != nil {
		opts.Weight = *l.strokeWeight
	}

	points, indices := ctx.Tess.TessellateStroke(outline, opts)
	if len(points) == 0 {
		return Drawn{Spatial: l.spatial()}, nil
	}

	vr, ir, err := ctx.Mesh.PushGeometry(points, solidColors(color, len(points)), texCoordsFor(points), indices)
	if err != nil {
		return Drawn{}, err
	}
	return Drawn{Spatial: l.spatial(), Vertices: vr, Indices: ir}, nil
}
