package primitive

import "github.com/gogpu/sketch/colors"

// Theme holds the default styling read whenever a drawing's property is
// left unset at resolution time: per-kind fill and stroke colors and the
// fallback stroke weight.
//
// A Theme is supplied once at draw-context construction and must not be
// mutated afterwards within a frame.
type Theme struct {
	// FillColors maps a primitive kind to its default fill color.
	// Kinds without an entry fall back to DefaultFill.
	FillColors map[Kind]colors.RGBA

	// StrokeColors maps a primitive kind to its default stroke color.
	// Kinds without an entry fall back to DefaultStroke.
	StrokeColors map[Kind]colors.RGBA

	// DefaultFill is the fill color for kinds missing from FillColors.
	DefaultFill colors.RGBA

	// DefaultStroke is the stroke color for kinds missing from StrokeColors.
	DefaultStroke colors.RGBA

	// StrokeWeight is the fallback stroke width.
	StrokeWeight float64
}

// DefaultTheme returns the stock theme: white fill, black stroke,
// stroke weight 1.
func DefaultTheme() *Theme {
	return &Theme{
		FillColors:    map[Kind]colors.RGBA{},
		StrokeColors:  map[Kind]colors.RGBA{},
		DefaultFill:   colors.White,
		DefaultStroke: colors.Black,
		StrokeWeight:  1,
	}
}

// FillColor returns the theme's fill color for the given kind.
func (t *Theme) FillColor(k Kind) colors.RGBA {
	if c, ok := t.FillColors[k]; ok {
		return c
	}
	return t.DefaultFill
}

// StrokeColor returns the theme's stroke color for the given kind.
func (t *Theme) StrokeColor(k Kind) colors.RGBA {
	if c, ok := t.StrokeColors[k]; ok {
		return c
	}
	return t.DefaultStroke
}
