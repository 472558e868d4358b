package primitive

import (
	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
)

// PathVerb identifies one path event.
type PathVerb int

// Path event verbs.
const (
	VerbMoveTo PathVerb = iota
	VerbLineTo
	VerbClose
)

// PathEvent is one entry in a path's event list.
type PathEvent struct {
	Verb  PathVerb
	Point geom.Point
}

// Path draws an arbitrary sequence of subpaths. Closed subpaths are filled
// (and stroked, when stroke properties are set); open subpaths are only
// stroked. Paths with no usable subpath resolve to an empty contribution.
type Path struct {
	Options
	events []PathEvent
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(pt geom.Point) {
	p.events = append(p.events, PathEvent{Verb: VerbMoveTo, Point: pt})
}

// LineTo extends the current subpath with a line to the given point.
func (p *Path) LineTo(pt geom.Point) {
	p.events = append(p.events, PathEvent{Verb: VerbLineTo, Point: pt})
}

// Close marks the current subpath as closed.
func (p *Path) Close() {
	p.events = append(p.events, PathEvent{Verb: VerbClose})
}

// Kind implements Primitive.
func (p *Path) Kind() Kind {
	return KindPath
}

// subpath is one flattened run of path points.
type subpath struct {
	points []geom.Point
	closed bool
}

// subpaths splits the event list into flattened runs.
func (p *Path) subpaths() []subpath {
	var subs []subpath
	var cur subpath
	flush := func() {
		if len(cur.points) > 0 {
			subs = append(subs, cur)
		}
		cur = subpath{}
	}
	for _, ev := range p.events {
		switch ev.Verb {
		case VerbMoveTo:
			flush()
			cur.points = append(cur.points, ev.Point)
		case VerbLineTo:
			cur.points = append(cur.points, ev.Point)
		case VerbClose:
			cur.closed = true
			flush()
		}
	}
	flush()
	return subs
}

// Drawn implements Primitive.
func (p *Path) Drawn(ctx *Context) (Drawn, error) {
	subs := p.subpaths()
	if len(subs) == 0 {
		return Drawn{Spatial: p.spatial()}, nil
	}

	x, y, _, err := p.dims.Scalars(ctx)
	if err != nil {
		return Drawn{}, err
	}
	if x != nil || y != nil {
		// Scale all subpaths about the combined centroid so the whole
		// path keeps its internal proportions per axis.
		var all []geom.Point
		for _, s := range subs {
			all = append(all, s.points...)
		}
		scaled := scaleToDimensions(all, x, y)
		off := 0
		for i := range subs {
			n := len(subs[i].points)
			subs[i].points = scaled[off : off+n]
			off += n
		}
	}

	fillColor, hasFill := p.fill(ctx.Theme, KindPath)
	strokeColor, strokeOpts, hasStroke := p.stroke(ctx.Theme, KindPath)

	var (
		points  []geom.Point
		cols    []colors.RGBA
		indices []int
	)

	for _, s := range subs {
		if s.closed && hasFill {
			fillPoints, fillIndices := ctx.Tess.TessellateFill(s.points)
			base := len(points)
			points = append(points, fillPoints...)
			cols = append(cols, solidColors(fillColor, len(fillPoints))...)
			for _, i := range fillIndices {
				indices = append(indices, base+i)
			}
		}
		if hasStroke || !s.closed {
			color := strokeColor
			opts := strokeOpts
			if !hasStroke {
				// Open subpaths with no stroke set still stroke with
				// theme defaults, otherwise they would vanish.
				color = ctx.Theme.StrokeColor(KindPath)
				opts.Weight = ctx.Theme.StrokeWeight
			}
			opts.Closed = s.closed
			strokePoints, strokeIndices := ctx.Tess.TessellateStroke(s.points, opts)
			base := len(points)
			points = append(points, strokePoints...)
			cols = append(cols, solidColors(color, len(strokePoints))...)
			for _, i := range strokeIndices {
				indices = append(indices, base+i)
			}
		}
	}

	if len(points) == 0 {
		return Drawn{Spatial: p.spatial()}, nil
	}

	vr, ir, err := ctx.Mesh.PushGeometry(points, cols, texCoordsFor(points), indices)
	if err != nil {
		return Drawn{}, err
	}
	return Drawn{Spatial: p.spatial(), Vertices: vr, Indices: ir}, nil
}
