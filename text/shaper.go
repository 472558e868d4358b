// Package text provides the shaping service behind the Text primitive:
// font parsing, HarfBuzz shaping via go-text/typesetting, bidirectional
// run segmentation, and a shelf-packed glyph atlas for texture coordinates.
//
// Rasterization and font file discovery are out of scope; callers supply
// raw font bytes and the rendering backend owns atlas pixel uploads.
package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Direction is the text layout direction.
type Direction int

// Layout directions.
const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// Glyph is one positioned glyph produced by shaping.
// Positions are in the same units as the requested font size, with the pen
// starting at the origin on the baseline.
type Glyph struct {
	ID       GlyphID
	Cluster  int
	X, Y     float64
	XAdvance float64
}

// Face is a parsed font at a specific size, ready for shaping.
type Face struct {
	font *font.Font
	size float64
}

// ParseFace parses TTF/OTF font bytes at the given size.
func ParseFace(data []byte, size float64) (*Face, error) {
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Face{font: parsed.Font, size: size}, nil
}

// Size returns the face's font size.
func (f *Face) Size() float64 {
	return f.size
}

// WithSize returns a face sharing the same font at a different size.
func (f *Face) WithSize(size float64) *Face {
	return &Face{font: f.font, size: size}
}

// Shaper converts text into positioned glyphs using HarfBuzz shaping.
// It is safe for concurrent use; the underlying HarfbuzzShaper instances
// are pooled because they carry per-call mutable state.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes one run of text with the given face and direction.
// The text should already be split into single-direction runs; use
// Segment for mixed-direction input.
func (s *Shaper) Shape(text string, face *Face, dir Direction) []Glyph {
	if text == "" || face == nil {
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(face.font),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs
// before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs accumulates pen positions over the shaped glyphs.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]Glyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			ID:       GlyphID(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
