package sketch

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/graph"
	"github.com/gogpu/sketch/primitive"
	"github.com/gogpu/sketch/tess"
	"github.com/gogpu/sketch/text"
)

// drawing is the core every primitive handle embeds: the node the drawing
// occupies, its property record, and the context state it resolves
// against. Setters apply only while the drawing is pending; once finished
// the geometry is committed and further setter calls are ignored.
type drawing struct {
	state *state
	node  graph.Index
	opts  *primitive.Options
}

// Node returns the drawing's geometry graph node.
func (d *drawing) Node() graph.Index {
	return d.node
}

// Finish resolves the drawing now instead of at the frame flatten.
// Finishing twice is a no-op.
func (d *drawing) Finish() error {
	return d.state.resolve(d.node)
}

// pendingOpts returns the property record while the drawing is still
// unresolved, nil afterwards.
func (d *drawing) pendingOpts() *primitive.Options {
	if _, ok := d.state.pending[d.node]; !ok {
		return nil
	}
	return d.opts
}

func (d *drawing) setPosition(p geom.Point) {
	if o := d.pendingOpts(); o != nil {
		o.SetPosition(p)
	}
}

func (d *drawing) setOrientation(v geom.Point) {
	if o := d.pendingOpts(); o != nil {
		o.SetOrientation(v)
	}
}

func (d *drawing) setDimension(axis geom.Axis, dim primitive.Dimension) {
	if o := d.pendingOpts(); o != nil {
		o.SetDimension(axis, dim)
	}
}

func (d *drawing) setColor(c colors.RGBA) {
	if o := d.pendingOpts(); o != nil {
		o.SetColor(c)
	}
}

func (d *drawing) setFillColor(c colors.RGBA) {
	if o := d.pendingOpts(); o != nil {
		o.SetFillColor(c)
	}
}

func (d *drawing) setNoFill() {
	if o := d.pendingOpts(); o != nil {
		o.SetNoFill()
	}
}

func (d *drawing) setStrokeColor(c colors.RGBA) {
	if o := d.pendingOpts(); o != nil {
		o.SetStrokeColor(c)
	}
}

func (d *drawing) setStrokeWeight(w float64) {
	if o := d.pendingOpts(); o != nil {
		o.SetStrokeWeight(w)
	}
}

func (d *drawing) setStrokeCap(c tess.LineCap) {
	if o := d.pendingOpts(); o != nil {
		o.SetStrokeCap(c)
	}
}

func (d *drawing) setStrokeJoin(j tess.LineJoin) {
	if o := d.pendingOpts(); o != nil {
		o.SetStrokeJoin(j)
	}
}

// mutate runs f against the concrete primitive while the drawing is still
// pending.
func (d *drawing) mutate(f func()) {
	if d.pendingOpts() != nil {
		f()
	}
}

// QuadDrawing is the deferred builder for a quad.
type QuadDrawing struct {
	drawing
	prim *primitive.Quad
}

// XY positions the quad.
func (q *QuadDrawing) XY(x, y float64) *QuadDrawing {
	q.setPosition(geom.Pt(x, y))
	return q
}

// XYZ positions the quad in three dimensions.
func (q *QuadDrawing) XYZ(x, y, z float64) *QuadDrawing {
	q.setPosition(geom.Pt3(x, y, z))
	return q
}

// Rotate sets the quad's rotation about the z axis in radians.
func (q *QuadDrawing) Rotate(radians float64) *QuadDrawing {
	q.setOrientation(geom.Pt3(0, 0, radians))
	return q
}

// W requests the quad's width.
func (q *QuadDrawing) W(w float64) *QuadDrawing {
	q.setDimension(geom.AxisX, primitive.Absolute(w))
	return q
}

// H requests the quad's height.
func (q *QuadDrawing) H(h float64) *QuadDrawing {
	q.setDimension(geom.AxisY, primitive.Absolute(h))
	return q
}

// WH requests both extents.
func (q *QuadDrawing) WH(w, h float64) *QuadDrawing {
	return q.W(w).H(h)
}

// WidthOfNode sizes the quad's width relative to another node's
// untransformed width, forcing that node's resolution.
func (q *QuadDrawing) WidthOfNode(n graph.Index, multiplier float64) *QuadDrawing {
	q.setDimension(geom.AxisX, primitive.RelativeTo(n, multiplier))
	return q
}

// HeightOfNode sizes the quad's height relative to another node's
// untransformed height.
func (q *QuadDrawing) HeightOfNode(n graph.Index, multiplier float64) *QuadDrawing {
	q.setDimension(geom.AxisY, primitive.RelativeTo(n, multiplier))
	return q
}

// Color sets the primary color, taking precedence over fill and stroke
// colors.
func (q *QuadDrawing) Color(c colors.RGBA) *QuadDrawing {
	q.setColor(c)
	return q
}

// RGB sets the primary color from components.
func (q *QuadDrawing) RGB(r, g, b float64) *QuadDrawing {
	return q.Color(colors.RGB(r, g, b))
}

// FillColor sets the fill color.
func (q *QuadDrawing) FillColor(c colors.RGBA) *QuadDrawing {
	q.setFillColor(c)
	return q
}

// NoFill disables the fill contribution.
func (q *QuadDrawing) NoFill() *QuadDrawing {
	q.setNoFill()
	return q
}

// Stroke sets the stroke color and enables stroking.
func (q *QuadDrawing) Stroke(c colors.RGBA) *QuadDrawing {
	q.setStrokeColor(c)
	return q
}

// StrokeWeight sets the stroke width and enables stroking.
func (q *QuadDrawing) StrokeWeight(w float64) *QuadDrawing {
	q.setStrokeWeight(w)
	return q
}

// Points replaces the quad's four corners.
func (q *QuadDrawing) Points(a, b, c, d geom.Point) *QuadDrawing {
	q.mutate(func() { q.prim.SetPoints(a, b, c, d) })
	return q
}

// RectDrawing is the deferred builder for an axis-aligned rectangle.
type RectDrawing struct {
	drawing
	prim *primitive.Rect
}

// XY positions the rectangle.
func (r *RectDrawing) XY(x, y float64) *RectDrawing {
	r.setPosition(geom.Pt(x, y))
	return r
}

// Rotate sets the rectangle's rotation about the z axis in radians.
func (r *RectDrawing) Rotate(radians float64) *RectDrawing {
	r.setOrientation(geom.Pt3(0, 0, radians))
	return r
}

// WH sets the rectangle's natural extents.
func (r *RectDrawing) WH(w, h float64) *RectDrawing {
	r.mutate(func() { r.prim.SetExtents(w, h) })
	return r
}

// W requests the rectangle's width.
func (r *RectDrawing) W(w float64) *RectDrawing {
	r.setDimension(geom.AxisX, primitive.Absolute(w))
	return r
}

// H requests the rectangle's height.
func (r *RectDrawing) H(h float64) *RectDrawing {
	r.setDimension(geom.AxisY, primitive.Absolute(h))
	return r
}

// WidthOfNode sizes the rectangle's width relative to another node.
func (r *RectDrawing) WidthOfNode(n graph.Index, multiplier float64) *RectDrawing {
	r.setDimension(geom.AxisX, primitive.RelativeTo(n, multiplier))
	return r
}

// Color sets the primary color.
func (r *RectDrawing) Color(c colors.RGBA) *RectDrawing {
	r.setColor(c)
	return r
}

// RGB sets the primary color from components.
func (r *RectDrawing) RGB(red, green, blue float64) *RectDrawing {
	return r.Color(colors.RGB(red, green, blue))
}

// NoFill disables the fill contribution.
func (r *RectDrawing) NoFill() *RectDrawing {
	r.setNoFill()
	return r
}

// Stroke sets the stroke color and enables stroking.
func (r *RectDrawing) Stroke(c colors.RGBA) *RectDrawing {
	r.setStrokeColor(c)
	return r
}

// StrokeWeight sets the stroke width and enables stroking.
func (r *RectDrawing) StrokeWeight(w float64) *RectDrawing {
	r.setStrokeWeight(w)
	return r
}

// TriDrawing is the deferred builder for a triangle.
type TriDrawing struct {
	drawing
	prim *primitive.Tri
}

// XY positions the triangle.
func (t *TriDrawing) XY(x, y float64) *TriDrawing {
	t.setPosition(geom.Pt(x, y))
	return t
}

// Rotate sets the triangle's rotation about the z axis in radians.
func (t *TriDrawing) Rotate(radians float64) *TriDrawing {
	t.setOrientation(geom.Pt3(0, 0, radians))
	return t
}

// WH requests both extents.
func (t *TriDrawing) WH(w, h float64) *TriDrawing {
	t.setDimension(geom.AxisX, primitive.Absolute(w))
	t.setDimension(geom.AxisY, primitive.Absolute(h))
	return t
}

// Color sets the primary color.
func (t *TriDrawing) Color(c colors.RGBA) *TriDrawing {
	t.setColor(c)
	return t
}

// RGB sets the primary color from components.
func (t *TriDrawing) RGB(r, g, b float64) *TriDrawing {
	return t.Color(colors.RGB(r, g, b))
}

// Stroke sets the stroke color and enables stroking.
func (t *TriDrawing) Stroke(c colors.RGBA) *TriDrawing {
	t.setStrokeColor(c)
	return t
}

// Points replaces the triangle's corners.
func (t *TriDrawing) Points(a, b, c geom.Point) *TriDrawing {
	t.mutate(func() { t.prim.SetPoints(a, b, c) })
	return t
}

// PolygonDrawing is the deferred builder for a polygon.
type PolygonDrawing struct {
	drawing
	prim *primitive.Polygon
}

// XY positions the polygon.
func (p *PolygonDrawing) XY(x, y float64) *PolygonDrawing {
	p.setPosition(geom.Pt(x, y))
	return p
}

// Rotate sets the polygon's rotation about the z axis in radians.
func (p *PolygonDrawing) Rotate(radians float64) *PolygonDrawing {
	p.setOrientation(geom.Pt3(0, 0, radians))
	return p
}

// W requests the polygon's width.
func (p *PolygonDrawing) W(w float64) *PolygonDrawing {
	p.setDimension(geom.AxisX, primitive.Absolute(w))
	return p
}

// H requests the polygon's height.
func (p *PolygonDrawing) H(h float64) *PolygonDrawing {
	p.setDimension(geom.AxisY, primitive.Absolute(h))
	return p
}

// Color sets the primary color.
func (p *PolygonDrawing) Color(c colors.RGBA) *PolygonDrawing {
	p.setColor(c)
	return p
}

// RGB sets the primary color from components.
func (p *PolygonDrawing) RGB(r, g, b float64) *PolygonDrawing {
	return p.Color(colors.RGB(r, g, b))
}

// NoFill disables the fill contribution.
func (p *PolygonDrawing) NoFill() *PolygonDrawing {
	p.setNoFill()
	return p
}

// Stroke sets the stroke color and enables stroking.
func (p *PolygonDrawing) Stroke(c colors.RGBA) *PolygonDrawing {
	p.setStrokeColor(c)
	return p
}

// StrokeWeight sets the stroke width and enables stroking.
func (p *PolygonDrawing) StrokeWeight(w float64) *PolygonDrawing {
	p.setStrokeWeight(w)
	return p
}

// Points replaces the polygon's outline.
func (p *PolygonDrawing) Points(points ...geom.Point) *PolygonDrawing {
	p.mutate(func() { p.prim.SetPoints(points...) })
	return p
}

// LineDrawing is the deferred builder for a line segment.
type LineDrawing struct {
	drawing
	prim *primitive.Line
}

// XY positions the line.
func (l *LineDrawing) XY(x, y float64) *LineDrawing {
	l.setPosition(geom.Pt(x, y))
	return l
}

// Color sets the line's color.
func (l *LineDrawing) Color(c colors.RGBA) *LineDrawing {
	l.setColor(c)
	return l
}

// RGB sets the line's color from components.
func (l *LineDrawing) RGB(r, g, b float64) *LineDrawing {
	return l.Color(colors.RGB(r, g, b))
}

// Weight sets the line's stroke width.
func (l *LineDrawing) Weight(w float64) *LineDrawing {
	l.setStrokeWeight(w)
	return l
}

// Caps sets the line's endpoint style.
func (l *LineDrawing) Caps(c tess.LineCap) *LineDrawing {
	l.setStrokeCap(c)
	return l
}

// Points replaces the line's endpoints.
func (l *LineDrawing) Points(start, end geom.Point) *LineDrawing {
	l.mutate(func() { l.prim.SetPoints(start, end) })
	return l
}

// EllipseDrawing is the deferred builder for an ellipse.
type EllipseDrawing struct {
	drawing
	prim *primitive.Ellipse
}

// XY positions the ellipse.
func (e *EllipseDrawing) XY(x, y float64) *EllipseDrawing {
	e.setPosition(geom.Pt(x, y))
	return e
}

// Radius sets both radii, making the ellipse a circle.
func (e *EllipseDrawing) Radius(r float64) *EllipseDrawing {
	e.mutate(func() { e.prim.SetRadius(r) })
	return e
}

// Radii sets the two radii independently.
func (e *EllipseDrawing) Radii(rx, ry float64) *EllipseDrawing {
	e.mutate(func() { e.prim.SetRadii(rx, ry) })
	return e
}

// Resolution sets the number of outline segments.
func (e *EllipseDrawing) Resolution(n int) *EllipseDrawing {
	e.mutate(func() { e.prim.SetResolution(n) })
	return e
}

// W requests the ellipse's width.
func (e *EllipseDrawing) W(w float64) *EllipseDrawing {
	e.setDimension(geom.AxisX, primitive.Absolute(w))
	return e
}

// H requests the ellipse's height.
func (e *EllipseDrawing) H(h float64) *EllipseDrawing {
	e.setDimension(geom.AxisY, primitive.Absolute(h))
	return e
}

// WidthOfNode sizes the ellipse's width relative to another node.
func (e *EllipseDrawing) WidthOfNode(n graph.Index, multiplier float64) *EllipseDrawing {
	e.setDimension(geom.AxisX, primitive.RelativeTo(n, multiplier))
	return e
}

// Color sets the primary color.
func (e *EllipseDrawing) Color(c colors.RGBA) *EllipseDrawing {
	e.setColor(c)
	return e
}

// RGB sets the primary color from components.
func (e *EllipseDrawing) RGB(r, g, b float64) *EllipseDrawing {
	return e.Color(colors.RGB(r, g, b))
}

// NoFill disables the fill contribution.
func (e *EllipseDrawing) NoFill() *EllipseDrawing {
	e.setNoFill()
	return e
}

// Stroke sets the stroke color and enables stroking.
func (e *EllipseDrawing) Stroke(c colors.RGBA) *EllipseDrawing {
	e.setStrokeColor(c)
	return e
}

// StrokeWeight sets the stroke width and enables stroking.
func (e *EllipseDrawing) StrokeWeight(w float64) *EllipseDrawing {
	e.setStrokeWeight(w)
	return e
}

// PathDrawing is the deferred builder for a path.
type PathDrawing struct {
	drawing
	prim *primitive.Path
}

// XY positions the path.
func (p *PathDrawing) XY(x, y float64) *PathDrawing {
	p.setPosition(geom.Pt(x, y))
	return p
}

// Rotate sets the path's rotation about the z axis in radians.
func (p *PathDrawing) Rotate(radians float64) *PathDrawing {
	p.setOrientation(geom.Pt3(0, 0, radians))
	return p
}

// MoveTo starts a new subpath at the point.
func (p *PathDrawing) MoveTo(pt geom.Point) *PathDrawing {
	p.mutate(func() { p.prim.MoveTo(pt) })
	return p
}

// LineTo extends the current subpath to the point.
func (p *PathDrawing) LineTo(pt geom.Point) *PathDrawing {
	p.mutate(func() { p.prim.LineTo(pt) })
	return p
}

// Close closes the current subpath.
func (p *PathDrawing) Close() *PathDrawing {
	p.mutate(func() { p.prim.Close() })
	return p
}

// W requests the path's width.
func (p *PathDrawing) W(w float64) *PathDrawing {
	p.setDimension(geom.AxisX, primitive.Absolute(w))
	return p
}

// H requests the path's height.
func (p *PathDrawing) H(h float64) *PathDrawing {
	p.setDimension(geom.AxisY, primitive.Absolute(h))
	return p
}

// Color sets the primary color.
func (p *PathDrawing) Color(c colors.RGBA) *PathDrawing {
	p.setColor(c)
	return p
}

// RGB sets the primary color from components.
func (p *PathDrawing) RGB(r, g, b float64) *PathDrawing {
	return p.Color(colors.RGB(r, g, b))
}

// NoFill disables the fill contribution.
func (p *PathDrawing) NoFill() *PathDrawing {
	p.setNoFill()
	return p
}

// Stroke sets the stroke color and enables stroking.
func (p *PathDrawing) Stroke(c colors.RGBA) *PathDrawing {
	p.setStrokeColor(c)
	return p
}

// StrokeWeight sets the stroke width and enables stroking.
func (p *PathDrawing) StrokeWeight(w float64) *PathDrawing {
	p.setStrokeWeight(w)
	return p
}

// Join sets the stroke join style.
func (p *PathDrawing) Join(j tess.LineJoin) *PathDrawing {
	p.setStrokeJoin(j)
	return p
}

// MeshDrawing is the deferred builder for caller-supplied vertex data.
type MeshDrawing struct {
	drawing
	prim *primitive.Mesh
}

// XY positions the mesh.
func (m *MeshDrawing) XY(x, y float64) *MeshDrawing {
	m.setPosition(geom.Pt(x, y))
	return m
}

// XYZ positions the mesh in three dimensions.
func (m *MeshDrawing) XYZ(x, y, z float64) *MeshDrawing {
	m.setPosition(geom.Pt3(x, y, z))
	return m
}

// Rotate sets the mesh's rotation about the z axis in radians.
func (m *MeshDrawing) Rotate(radians float64) *MeshDrawing {
	m.setOrientation(geom.Pt3(0, 0, radians))
	return m
}

// Points replaces the mesh's vertex positions.
func (m *MeshDrawing) Points(points ...geom.Point) *MeshDrawing {
	m.mutate(func() { m.prim.SetPoints(points...) })
	return m
}

// Colors replaces the mesh's per-vertex colors.
func (m *MeshDrawing) Colors(cols ...colors.RGBA) *MeshDrawing {
	m.mutate(func() { m.prim.SetColors(cols...) })
	return m
}

// TexCoords replaces the mesh's per-vertex texture coordinates.
func (m *MeshDrawing) TexCoords(texCoords ...geom.Point2) *MeshDrawing {
	m.mutate(func() { m.prim.SetTexCoords(texCoords...) })
	return m
}

// Indices replaces the mesh's index list.
func (m *MeshDrawing) Indices(indices ...int) *MeshDrawing {
	m.mutate(func() { m.prim.SetIndices(indices...) })
	return m
}

// Color sets the fallback color for vertices without explicit colors.
func (m *MeshDrawing) Color(c colors.RGBA) *MeshDrawing {
	m.setColor(c)
	return m
}

// TextDrawing is the deferred builder for a shaped string.
type TextDrawing struct {
	drawing
	prim *primitive.Text
}

// XY positions the text's baseline origin.
func (t *TextDrawing) XY(x, y float64) *TextDrawing {
	t.setPosition(geom.Pt(x, y))
	return t
}

// Rotate sets the text's rotation about the z axis in radians.
func (t *TextDrawing) Rotate(radians float64) *TextDrawing {
	t.setOrientation(geom.Pt3(0, 0, radians))
	return t
}

// Face sets the font face used for shaping.
func (t *TextDrawing) Face(face *text.Face) *TextDrawing {
	t.mutate(func() { t.prim.SetFace(face) })
	return t
}

// FontSize sets the font size, keeping the current face's font.
func (t *TextDrawing) FontSize(size float64) *TextDrawing {
	t.mutate(func() { t.prim.SetFontSize(size) })
	return t
}

// RightToLeft sets the base direction for bidirectional segmentation.
func (t *TextDrawing) RightToLeft() *TextDrawing {
	t.mutate(func() { t.prim.SetBaseDirection(text.DirectionRTL) })
	return t
}

// W requests the text's width.
func (t *TextDrawing) W(w float64) *TextDrawing {
	t.setDimension(geom.AxisX, primitive.Absolute(w))
	return t
}

// Color sets the text color.
func (t *TextDrawing) Color(c colors.RGBA) *TextDrawing {
	t.setColor(c)
	return t
}

// RGB sets the text color from components.
func (t *TextDrawing) RGB(r, g, b float64) *TextDrawing {
	return t.Color(colors.RGB(r, g, b))
}
