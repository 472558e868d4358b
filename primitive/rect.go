package primitive

import "github.com/gogpu/sketch/geom"

// Rect draws an axis-aligned rectangle centered at the origin.
// The default rectangle is 100×100; explicit dimensions resize it.
type Rect struct {
	Options
	w, h float64
}

// NewRect creates a rectangle with the default extents.
func NewRect() *Rect {
	return &Rect{w: 100, h: 100}
}

// SetExtents sets the rectangle's width and height directly.
func (r *Rect) SetExtents(w, h float64) {
	r.w, r.h = w, h
}

// Kind implements Primitive.
func (r *Rect) Kind() Kind {
	return KindRect
}

// Drawn implements Primitive.
func (r *Rect) Drawn(ctx *Context) (Drawn, error) {
	if r.w <= 0 || r.h <= 0 {
		return Drawn{Spatial: r.spatial()}, nil
	}
	halfW, halfH := r.w/2, r.h/2
	outline := []geom.Point{
		geom.Pt(-halfW, -halfH),
		geom.Pt(-halfW, halfH),
		geom.Pt(halfW, halfH),
		geom.Pt(halfW, -halfH),
	}
	return drawOutline(ctx, &r.Options, KindRect, outline)
}
