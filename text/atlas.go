package text

// UVRect is a normalized texture-coordinate rectangle within the atlas.
type UVRect struct {
	MinU, MinV, MaxU, MaxV float64
}

// Atlas assigns glyphs to regions of a texture using shelf packing.
// The atlas only reserves space and hands out texture coordinates; pixel
// uploads belong to the rendering backend.
type Atlas struct {
	width   int
	height  int
	padding int
	shelves []shelf
	regions map[GlyphID]UVRect
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int // top of the shelf
	height int // tallest item placed so far
	x      int // next free slot
}

// NewAtlas creates an atlas of the given pixel dimensions.
func NewAtlas(width, height int) *Atlas {
	return &Atlas{
		width:   width,
		height:  height,
		padding: 1,
		regions: make(map[GlyphID]UVRect),
	}
}

// Lookup returns the region previously reserved for the glyph.
func (a *Atlas) Lookup(id GlyphID) (UVRect, bool) {
	r, ok := a.regions[id]
	return r, ok
}

// Reserve finds or allocates a region of the given pixel size for the
// glyph and returns its normalized texture coordinates. It reports false
// when the atlas is full.
func (a *Atlas) Reserve(id GlyphID, w, h int) (UVRect, bool) {
	if r, ok := a.regions[id]; ok {
		return r, true
	}
	x, y, ok := a.allocate(w, h)
	if !ok {
		return UVRect{}, false
	}
	r := UVRect{
		MinU: float64(x) / float64(a.width),
		MinV: float64(y) / float64(a.height),
		MaxU: float64(x+w) / float64(a.width),
		MaxV: float64(y+h) / float64(a.height),
	}
	a.regions[id] = r
	return r, true
}

// allocate finds space for a w×h rectangle: first shelf that fits, else a
// new shelf below the last one.
func (a *Atlas) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding
	if paddedW > a.width {
		return -1, -1, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width || h > s.height {
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		return x, y, true
	}

	// Start a new shelf below the last one.
	bottom := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		bottom = last.y + last.height + a.padding
	}
	if bottom+paddedH > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: bottom, height: h, x: paddedW})
	return 0, bottom, true
}
