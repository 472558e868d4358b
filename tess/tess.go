// Package tess converts primitive outlines into fillable and strokeable
// triangle meshes. The drawing core consumes it as an opaque service:
// points in, vertices and indices out.
package tess

import "github.com/gogpu/sketch/geom"

// LineCap determines how stroke endpoints are drawn.
type LineCap int

// Line cap styles.
const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin determines how stroke segments connect.
type LineJoin int

// Line join styles.
const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// StrokeOptions controls stroke tessellation.
type StrokeOptions struct {
	// Weight is the stroke width.
	Weight float64
	// Cap is the endpoint style. The built-in tessellator renders
	// butt caps; round and square are accepted and currently
	// approximated as butt.
	Cap LineCap
	// Join is the segment join style. The built-in tessellator renders
	// bevel-like joins.
	Join LineJoin
	// Closed connects the last point back to the first.
	Closed bool
}

// DefaultStrokeOptions returns stroke options with a weight of 1.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{Weight: 1}
}

// Tessellator produces triangle geometry from primitive outlines.
// Returned indices reference the returned vertex slice. Outlines with too
// few points yield nil slices rather than an error; an omitted shape is
// preferable to an aborted frame.
type Tessellator interface {
	// TessellateFill triangulates the interior of a closed outline.
	TessellateFill(outline []geom.Point) (vertices []geom.Point, indices []int)

	// TessellateStroke expands a polyline into stroke geometry.
	TessellateStroke(outline []geom.Point, opts StrokeOptions) (vertices []geom.Point, indices []int)
}

// Fan triangulates convex outlines with a triangle fan anchored at the
// first point. It is the default tessellator for the draw context; all
// built-in primitives emit convex or fan-safe outlines.
type Fan struct{}

// NewFan creates a fan tessellator.
func NewFan() *Fan {
	return &Fan{}
}

// TessellateFill implements Tessellator.
// For N points it generates N-2 triangles pivoting on the first point.
func (*Fan) TessellateFill(outline []geom.Point) ([]geom.Point, []int) {
	if len(outline) < 3 {
		return nil, nil
	}
	vertices := make([]geom.Point, len(outline))
	copy(vertices, outline)
	indices := make([]int, 0, (len(outline)-2)*3)
	for i := 1; i < len(outline)-1; i++ {
		indices = append(indices, 0, i, i+1)
	}
	return vertices, indices
}

// TessellateStroke implements Tessellator.
// Each segment becomes a quad offset by half the stroke weight along the
// segment normal.
func (*Fan) TessellateStroke(outline []geom.Point, opts StrokeOptions) ([]geom.Point, []int) {
	if len(outline) < 2 || opts.Weight <= 0 {
		return nil, nil
	}

	segments := len(outline) - 1
	if opts.Closed {
		segments++
	}

	half := opts.Weight / 2
	vertices := make([]geom.Point, 0, segments*4)
	indices := make([]int, 0, segments*6)

	for s := 0; s < segments; s++ {
		a := outline[s]
		b := outline[(s+1)%len(outline)]

		dir := b.Sub(a).XY().Normalize()
		if dir == (geom.Point2{}) {
			continue // zero-length segment
		}
		normal := geom.Pt2(-dir.Y, dir.X).Mul(half)
		offset := geom.Pt3(normal.X, normal.Y, 0)

		base := len(vertices)
		vertices = append(vertices,
			a.Add(offset),
			a.Sub(offset),
			b.Sub(offset),
			b.Add(offset),
		)
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return vertices, indices
}
