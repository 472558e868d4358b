package primitive

import (
	"math"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/text"
)

// descentRatio approximates how far below the baseline a glyph box
// extends, as a fraction of the font size.
const descentRatio = 0.25

// Text draws a shaped string as one textured quad per glyph. Glyph
// positions come from the shaping service; texture coordinates come from
// the glyph atlas. Text with no face or an empty string resolves to an
// empty contribution.
type Text struct {
	Options
	value string
	face  *text.Face
	base  text.Direction
}

// NewText creates a text primitive for the given string.
func NewText(value string) *Text {
	return &Text{value: value}
}

// SetValue replaces the string.
func (t *Text) SetValue(value string) {
	t.value = value
}

// SetFace sets the font face used for shaping.
func (t *Text) SetFace(face *text.Face) {
	t.face = face
}

// SetFontSize sets the font size, keeping the current face's font.
func (t *Text) SetFontSize(size float64) {
	if t.face != nil {
		t.face = t.face.WithSize(size)
	}
}

// SetBaseDirection sets the base direction for bidirectional segmentation.
func (t *Text) SetBaseDirection(d text.Direction) {
	t.base = d
}

// Kind implements Primitive.
func (t *Text) Kind() Kind {
	return KindText
}

// Drawn implements Primitive.
func (t *Text) Drawn(ctx *Context) (Drawn, error) {
	if t.value == "" || t.face == nil || ctx.Shaper == nil {
		return Drawn{Spatial: t.spatial()}, nil
	}

	size := t.face.Size()
	color, hasFill := t.fill(ctx.Theme, KindText)
	if !hasFill {
		return Drawn{Spatial: t.spatial()}, nil
	}

	var (
		points    []geom.Point
		texCoords []geom.Point2
		indices   []int
	)

	var penX float64
	for _, run := range text.Segment(t.value, t.base) {
		glyphs := ctx.Shaper.Shape(run.Text, t.face, run.Direction)
		for _, g := range glyphs {
			w := g.XAdvance
			if w <= 0 {
				continue
			}

			uv := text.UVRect{MaxU: 1, MaxV: 1}
			if ctx.Atlas != nil {
				if r, ok := ctx.Atlas.Reserve(g.ID, int(math.Ceil(w)), int(math.Ceil(size))); ok {
					uv = r
				}
			}

			x0 := penX + g.X
			y0 := g.Y - size*descentRatio
			x1 := x0 + w
			y1 := y0 + size

			base := len(points)
			points = append(points,
				geom.Pt(x0, y0),
				geom.Pt(x0, y1),
				geom.Pt(x1, y1),
				geom.Pt(x1, y0),
			)
			texCoords = append(texCoords,
				geom.Pt2(uv.MinU, uv.MaxV),
				geom.Pt2(uv.MinU, uv.MinV),
				geom.Pt2(uv.MaxU, uv.MinV),
				geom.Pt2(uv.MaxU, uv.MaxV),
			)
			indices = append(indices,
				base, base+1, base+2,
				base, base+2, base+3,
			)
		}
		for _, g := range glyphs {
			penX += g.XAdvance
		}
	}

	if len(points) == 0 {
		return Drawn{Spatial: t.spatial()}, nil
	}

	x, y, _, err := t.dims.Scalars(ctx)
	if err != nil {
		return Drawn{}, err
	}
	points = scaleToDimensions(points, x, y)

	vr, ir, err := ctx.Mesh.PushGeometry(points, solidColors(color, len(points)), texCoords, indices)
	if err != nil {
		return Drawn{}, err
	}
	return Drawn{Spatial: t.spatial(), Vertices: vr, Indices: ir}, nil
}
