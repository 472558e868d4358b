package primitive

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/graph"
	"github.com/gogpu/sketch/mesh"
	"github.com/gogpu/sketch/tess"
	"github.com/gogpu/sketch/text"
)

// Drawn is the contract output of resolving a primitive: the node's final
// spatial properties plus the ranges at which the primitive's untransformed
// geometry was written into the intermediary mesh.
//
// Vertex positions are relative to the origin; displacement, rotation, and
// scaling happen later through the geometry graph.
type Drawn struct {
	Spatial  graph.Spatial
	Vertices mesh.VertexRanges
	Indices  mesh.Range
}

// Empty reports whether the drawn geometry contributes no vertices.
func (d Drawn) Empty() bool {
	return d.Vertices.Points.IsEmpty()
}

// MeshWriter is the primitive's write access to the intermediary mesh.
// The draw context implements it with a runtime-checked exclusive borrow:
// overlapping writes from unrelated call sites fail fast, sequential
// nested writes within one resolution chain succeed.
//
// Indices passed to PushGeometry are relative to the points slice given in
// the same call; the writer rebases them onto the intermediary store so
// that they always reference already-written vertex slots. The cols and
// texCoords slices must carry one entry per point; the writer rejects
// mismatched lengths so the attribute stores stay parallel.
type MeshWriter interface {
	PushGeometry(points []geom.Point, cols []colors.RGBA, texCoords []geom.Point2, indices []int) (mesh.VertexRanges, mesh.Range, error)
}

// Context is what a primitive needs to resolve itself: the theme for
// finish-time defaults, the tessellation service, mesh write access, and
// dimension lookups for sizing relative to other nodes.
//
// UntransformedDimension may re-enter the resolution engine: querying a
// node whose drawing has not finished forces it to finish first.
type Context struct {
	Theme *Theme
	Tess  tess.Tessellator
	Mesh  MeshWriter

	// Shaper and Atlas serve the text primitive. Both may be nil, in
	// which case text resolves to an empty contribution.
	Shaper *text.Shaper
	Atlas  *text.Atlas

	UntransformedDimension func(n graph.Index, axis geom.Axis) (float64, error)
}

// Primitive is implemented by every shape kind in the catalog.
type Primitive interface {
	// Kind identifies the shape family, used for theme lookups.
	Kind() Kind

	// Drawn consumes the accumulated properties and writes the resulting
	// untransformed geometry into the intermediary mesh. Primitives whose
	// required inputs are absent return an empty Drawn rather than an
	// error; omitting a shape is preferable to aborting the frame.
	Drawn(ctx *Context) (Drawn, error)
}

// scaleToDimensions scales the outline about its centroid so that its
// bounding box matches the requested extents. Axes scale independently —
// no aspect-ratio preservation, which is intentional. Scaling happens
// before tessellation because fill geometry and texture coordinates both
// derive from final vertex positions.
func scaleToDimensions(outline []geom.Point, x, y *float64) []geom.Point {
	if (x == nil && y == nil) || len(outline) == 0 {
		return outline
	}
	bounds := geom.BoundingRect(outline)
	centroid := geom.Centroid(outline)
	scale := geom.Pt3(1, 1, 1)
	if x != nil && bounds.W() != 0 {
		scale.X = *x / bounds.W()
	}
	if y != nil && bounds.H() != 0 {
		scale.Y = *y / bounds.H()
	}
	scaled := make([]geom.Point, len(outline))
	for i, p := range outline {
		scaled[i] = centroid.Add(p.Sub(centroid).MulElem(scale))
	}
	return scaled
}

// texCoordsFor derives texture coordinates by normalizing each vertex
// position within the outline's bounding rectangle.
func texCoordsFor(points []geom.Point) []geom.Point2 {
	if len(points) == 0 {
		return nil
	}
	bounds := geom.BoundingRect(points)
	w, h := bounds.W(), bounds.H()
	tex := make([]geom.Point2, len(points))
	for i, p := range points {
		var u, v float64
		if w != 0 {
			u = (p.X - bounds.MinX) / w
		}
		if h != 0 {
			v = (p.Y - bounds.MinY) / h
		}
		tex[i] = geom.Pt2(u, v)
	}
	return tex
}

// solidColors returns a color slice repeating c once per vertex.
func solidColors(c colors.RGBA, n int) []colors.RGBA {
	cols := make([]colors.RGBA, n)
	for i := range cols {
		cols[i] = c
	}
	return cols
}

// drawOutline resolves a closed-outline primitive: dimension scaling first,
// then fill and stroke tessellation, then one combined mesh write.
// It implements the shared path every polygon-style kind takes.
func drawOutline(ctx *Context, o *Options, kind Kind, outline []geom.Point) (Drawn, error) {
	x, y, _, err := o.dims.Scalars(ctx)
	if err != nil {
		return Drawn{}, err
	}
	outline = scaleToDimensions(outline, x, y)

	var (
		points  []geom.Point
		cols    []colors.RGBA
		indices []int
	)

	if fillColor, ok := o.fill(ctx.Theme, kind); ok {
		fillPoints, fillIndices := ctx.Tess.TessellateFill(outline)
		points = append(points, fillPoints...)
		cols = append(cols, solidColors(fillColor, len(fillPoints))...)
		indices = append(indices, fillIndices...)
	}

	if strokeColor, strokeOpts, ok := o.stroke(ctx.Theme, kind); ok {
		strokeOpts.Closed = true
		strokePoints, strokeIndices := ctx.Tess.TessellateStroke(outline, strokeOpts)
		base := len(points)
		points = append(points, strokePoints...)
		cols = append(cols, solidColors(strokeColor, len(strokePoints))...)
		for _, i := range strokeIndices {
			indices = append(indices, base+i)
		}
	}

	if len(points) == 0 {
		return Drawn{Spatial: o.spatial()}, nil
	}

	vr, ir, err := ctx.Mesh.PushGeometry(points, cols, texCoordsFor(points), indices)
	if err != nil {
		return Drawn{}, err
	}
	return Drawn{Spatial: o.spatial(), Vertices: vr, Indices: ir}, nil
}
