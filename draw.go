package sketch

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/graph"
	"github.com/gogpu/sketch/mesh"
	"github.com/gogpu/sketch/primitive"
	"github.com/gogpu/sketch/render"
	"github.com/gogpu/sketch/tess"
	"github.com/gogpu/sketch/text"
)

// Option configures a Draw context at construction.
type Option func(*options)

type options struct {
	theme  *primitive.Theme
	tess   tess.Tessellator
	shaper *text.Shaper
	atlas  *text.Atlas
}

func defaultOptions() options {
	return options{
		theme:  primitive.DefaultTheme(),
		tess:   tess.NewFan(),
		shaper: text.NewShaper(),
		atlas:  text.NewAtlas(1024, 1024),
	}
}

// WithTheme sets the theme supplying finish-time defaults. The theme is
// read-only once the context is constructed.
func WithTheme(t *primitive.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithTessellator sets the tessellation service primitives resolve with.
func WithTessellator(t tess.Tessellator) Option {
	return func(o *options) {
		o.tess = t
	}
}

// WithTextShaper sets the shaping service behind the Text primitive.
func WithTextShaper(s *text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithGlyphAtlas sets the glyph atlas Text draws texture coordinates from.
func WithGlyphAtlas(a *text.Atlas) Option {
	return func(o *options) {
		o.atlas = a
	}
}

// Draw is a deferred drawing context. Primitive calls return handles whose
// property setters may run in any order; geometry resolves lazily on
// Finish, on a dimension query, or at Frame.
//
// Draw is not safe for concurrent use.
type Draw struct {
	state *state
}

// New creates a drawing context.
func New(opts ...Option) *Draw {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Draw{state: newState(o.theme, o.tess, o.shaper, o.atlas)}
}

// Reset clears the context for the next frame. All handles and node
// indices from the previous frame become invalid.
func (d *Draw) Reset() {
	d.state.reset()
}

// Quad starts drawing a quad, by default a 100x100 square centered at the
// origin.
func (d *Draw) Quad() *QuadDrawing {
	p := primitive.NewQuad()
	return &QuadDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Rect starts drawing an axis-aligned rectangle, by default 100x100
// centered at the origin.
func (d *Draw) Rect() *RectDrawing {
	p := primitive.NewRect()
	return &RectDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Tri starts drawing a triangle.
func (d *Draw) Tri() *TriDrawing {
	p := primitive.NewTri()
	return &TriDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Polygon starts drawing a polygon from the given outline. Fewer than
// three points resolve to an empty contribution.
func (d *Draw) Polygon(points ...geom.Point) *PolygonDrawing {
	p := primitive.NewPolygon(points...)
	return &PolygonDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Line starts drawing a stroked line segment.
func (d *Draw) Line(start, end geom.Point) *LineDrawing {
	p := primitive.NewLine(start, end)
	return &LineDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Ellipse starts drawing an ellipse, by default a circle of radius 50.
func (d *Draw) Ellipse() *EllipseDrawing {
	p := primitive.NewEllipse()
	return &EllipseDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Path starts drawing a path built from move/line/close events.
func (d *Draw) Path() *PathDrawing {
	p := primitive.NewPath()
	return &PathDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Mesh starts drawing caller-supplied vertex data.
func (d *Draw) Mesh() *MeshDrawing {
	p := primitive.NewMesh()
	return &MeshDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

// Text starts drawing a shaped string. A font face must be set for the
// text to produce geometry.
func (d *Draw) Text(value string) *TextDrawing {
	p := primitive.NewText(value)
	return &TextDrawing{drawing: d.newDrawing(p, &p.Options), prim: p}
}

func (d *Draw) newDrawing(p primitive.Primitive, o *primitive.Options) drawing {
	return drawing{state: d.state, node: d.state.register(p), opts: o}
}

// Dimension returns a node's geometry extent along the axis before any
// graph transform, finishing the node's drawing first if necessary.
// Querying a node the graph does not contain returns ErrNodeNotFound.
func (d *Draw) Dimension(n graph.Index, axis geom.Axis) (float64, error) {
	return d.state.untransformedDimension(n, axis)
}

// TransformedDimension is Dimension scaled by the node's composed graph
// scale along the axis.
func (d *Draw) TransformedDimension(n graph.Index, axis geom.Axis) (float64, error) {
	return d.state.transformedDimension(n, axis)
}

// Frame finishes every remaining drawing and flattens the frame: one
// committed mesh of untransformed vertices plus per-node draw commands in
// drawing order, each carrying the node's composed transform and its index
// sub-range.
//
// Frame does not reset the context; call Reset before the next frame.
func (d *Draw) Frame() (*render.Frame, error) {
	if err := d.state.resolveAll(); err != nil {
		return nil, err
	}

	frame := &render.Frame{}
	for _, n := range d.state.order {
		geometry, ok := d.state.drawn[n]
		if !ok || geometry.indices.IsEmpty() {
			continue
		}

		transform, err := d.state.graph.NodeTransform(n)
		if err != nil {
			return nil, err
		}

		// Copy the node's vertices, remapping its intermediary indices
		// onto the committed mesh.
		base := uint32(frame.Mesh.VertexCount())
		points := geometry.vertices.Points
		for i := points.Start; i < points.End; i++ {
			frame.Mesh.PushVertex(mesh.Vertex{
				Point:     d.state.scratch.Point(i),
				Color:     d.state.scratch.Color(i),
				TexCoords: d.state.scratch.TexCoord(i),
			})
		}

		start := len(frame.Mesh.Indices)
		for _, idx := range d.state.scratch.IndexSlice(geometry.indices) {
			frame.Mesh.PushIndex(base + uint32(idx-points.Start))
		}

		frame.Commands = append(frame.Commands, render.DrawCommand{
			Transform: transform,
			Indices:   mesh.Range{Start: start, End: len(frame.Mesh.Indices)},
		})
	}
	return frame, nil
}
