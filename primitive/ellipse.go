package primitive

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// defaultEllipseResolution is the number of outline sections used when
// none is requested.
const defaultEllipseResolution = 32

// Ellipse draws an ellipse approximated by a regular outline centered at
// the origin. The default ellipse has a radius of 50 on both axes;
// explicit dimensions set the full extents per axis.
type Ellipse struct {
	Options
	radiusX, radiusY float64
	resolution       int
}

// NewEllipse creates an ellipse with the default radius and resolution.
func NewEllipse() *Ellipse {
	return &Ellipse{radiusX: 50, radiusY: 50, resolution: defaultEllipseResolution}
}

// SetRadius sets both radii to the same value.
func (e *Ellipse) SetRadius(r float64) {
	e.radiusX, e.radiusY = r, r
}

// SetRadii sets the two radii independently.
func (e *Ellipse) SetRadii(rx, ry float64) {
	e.radiusX, e.radiusY = rx, ry
}

// SetResolution sets the number of outline sections.
func (e *Ellipse) SetResolution(n int) {
	e.resolution = n
}

// Kind implements Primitive.
func (e *Ellipse) Kind() Kind {
	return KindEllipse
}

// Drawn implements Primitive.
func (e *Ellipse) Drawn(ctx *Context) (Drawn, error) {
	if e.radiusX <= 0 || e.radiusY <= 0 || e.resolution < 3 {
		return Drawn{Spatial: e.spatial()}, nil
	}
	outline := make([]geom.Point, e.resolution)
	step := 2 * math.Pi / float64(e.resolution)
	for i := range outline {
		sin, cos := math.Sincos(float64(i) * step)
		outline[i] = geom.Pt(cos*e.radiusX, sin*e.radiusY)
	}
	return drawOutline(ctx, &e.Options, KindEllipse, outline)
}
