package primitive

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/graph"
	"github.com/gogpu/sketch/tess"
)

// Dimension describes one requested extent of a drawing along an axis.
// It is either an absolute length or a length relative to another node's
// untransformed extent along the same axis.
type Dimension struct {
	// Scalar is the absolute length, or the multiplier when relative.
	Scalar float64
	// Node is the node whose extent the dimension is relative to.
	Node graph.Index
	// Relative selects between absolute and relative interpretation.
	Relative bool
}

// Absolute returns an absolute dimension of the given length.
func Absolute(s float64) Dimension {
	return Dimension{Scalar: s}
}

// RelativeTo returns a dimension equal to the untransformed extent of the
// given node scaled by the multiplier.
func RelativeTo(n graph.Index, multiplier float64) Dimension {
	return Dimension{Scalar: multiplier, Node: n, Relative: true}
}

// Dimensions holds the optional per-axis dimension requests of a drawing.
// A nil entry means the axis keeps the shape's natural extent.
type Dimensions struct {
	X, Y, Z *Dimension
}

// Scalars resolves the dimension requests into concrete lengths using the
// context for relative lookups. Resolving a relative dimension forces the
// referenced node's drawing to finish first.
func (d Dimensions) Scalars(ctx *Context) (x, y, z *float64, err error) {
	resolve := func(dim *Dimension, axis geom.Axis) (*float64, error) {
		if dim == nil {
			return nil, nil
		}
		if !dim.Relative {
			v := dim.Scalar
			return &v, nil
		}
		base, err := ctx.UntransformedDimension(dim.Node, axis)
		if err != nil {
			return nil, err
		}
		v := base * dim.Scalar
		return &v, nil
	}
	if x, err = resolve(d.X, geom.AxisX); err != nil {
		return nil, nil, nil, err
	}
	if y, err = resolve(d.Y, geom.AxisY); err != nil {
		return nil, nil, nil, err
	}
	if z, err = resolve(d.Z, geom.AxisZ); err != nil {
		return nil, nil, nil, err
	}
	return x, y, z, nil
}

// Options is the property record common to every primitive kind: spatial
// placement, dimensions, fill and stroke styling. Each field is unset until
// a setter runs; unset fields take finish-time defaults. Setters are
// overwrite-last-wins, never accumulating.
//
// Primitive types embed Options, which also provides the setter methods the
// drawing handles dispatch through.
type Options struct {
	position    *geom.Point
	orientation *geom.Point
	dims        Dimensions

	color       *colors.RGBA
	fillColor   *colors.RGBA
	noFill      bool
	strokeColor *colors.RGBA

	strokeWeight *float64
	strokeCap    tess.LineCap
	strokeJoin   tess.LineJoin
	strokeSet    bool
}

// SetPosition records the drawing's position.
func (o *Options) SetPosition(p geom.Point) {
	o.position = &p
}

// SetOrientation records the drawing's orientation as euler angles.
func (o *Options) SetOrientation(v geom.Point) {
	o.orientation = &v
}

// SetDimension records a requested extent along one axis.
func (o *Options) SetDimension(axis geom.Axis, d Dimension) {
	switch axis {
	case geom.AxisX:
		o.dims.X = &d
	case geom.AxisY:
		o.dims.Y = &d
	case geom.AxisZ:
		o.dims.Z = &d
	}
}

// SetColor records the drawing's primary color, which takes precedence
// over fill and stroke colors.
func (o *Options) SetColor(c colors.RGBA) {
	o.color = &c
}

// SetFillColor records the fill color.
func (o *Options) SetFillColor(c colors.RGBA) {
	o.fillColor = &c
	o.noFill = false
}

// SetNoFill disables the fill contribution entirely.
func (o *Options) SetNoFill() {
	o.noFill = true
}

// SetStrokeColor records the stroke color and enables stroking.
func (o *Options) SetStrokeColor(c colors.RGBA) {
	o.strokeColor = &c
	o.strokeSet = true
}

// SetStrokeWeight records the stroke width and enables stroking.
func (o *Options) SetStrokeWeight(w float64) {
	o.strokeWeight = &w
	o.strokeSet = true
}

// SetStrokeCap records the stroke endpoint style.
func (o *Options) SetStrokeCap(c tess.LineCap) {
	o.strokeCap = c
}

// SetStrokeJoin records the stroke join style.
func (o *Options) SetStrokeJoin(j tess.LineJoin) {
	o.strokeJoin = j
}

// spatial returns the resolved spatial properties for the graph node.
func (o *Options) spatial() graph.Spatial {
	s := graph.DefaultSpatial()
	if o.position != nil {
		s.Position = *o.position
	}
	if o.orientation != nil {
		s.Orientation = *o.orientation
	}
	return s
}

// fill resolves the fill color with the documented precedence:
// explicit color, then explicit fill color, then the theme default for the
// kind. The second result is false when the fill is disabled.
func (o *Options) fill(theme *Theme, kind Kind) (colors.RGBA, bool) {
	if o.noFill {
		return colors.RGBA{}, false
	}
	if o.color != nil {
		return *o.color, true
	}
	if o.fillColor != nil {
		return *o.fillColor, true
	}
	return theme.FillColor(kind), true
}

// stroke resolves the stroke color and tessellation options. The second
// result is false when no stroke property was set.
func (o *Options) stroke(theme *Theme, kind Kind) (colors.RGBA, tess.StrokeOptions, bool) {
	if !o.strokeSet {
		return colors.RGBA{}, tess.StrokeOptions{}, false
	}
	c := theme.StrokeColor(kind)
	if o.strokeColor != nil {
		c = *o.strokeColor
	} else if o.color != nil {
		c = *o.color
	}
	opts := tess.StrokeOptions{
		Weight: theme.StrokeWeight,
		Cap:    o.strokeCap,
		Join:   o.strokeJoin,
	}
	if o.strokeWeight != nil {
		opts.Weight = *o.strokeWeight
	}
	return c, opts, true
}
