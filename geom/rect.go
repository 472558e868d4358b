package geom

// Rect is an axis-aligned bounding rectangle on the Z=0 plane.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns a rectangle that contains nothing.
// Unioning any point into it yields that point.
func EmptyRect() Rect {
	inf := 1e308
	return Rect{MinX: inf, MinY: inf, MaxX: -inf, MaxY: -inf}
}

// IsEmpty reports whether the rectangle contains nothing.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// W returns the rectangle's width, or zero when empty.
func (r Rect) W() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// H returns the rectangle's height, or zero when empty.
func (r Rect) H() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// UnionPoint expands the rectangle to include the given point.
func (r Rect) UnionPoint(x, y float64) Rect {
	if x < r.MinX {
		r.MinX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y > r.MaxY {
		r.MaxY = y
	}
	return r
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(s Rect) Rect {
	if s.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return s
	}
	r = r.UnionPoint(s.MinX, s.MinY)
	return r.UnionPoint(s.MaxX, s.MaxY)
}

// BoundingRect returns the bounding rectangle of a point set.
// An empty point set yields an empty rectangle.
func BoundingRect(points []Point) Rect {
	r := EmptyRect()
	for _, p := range points {
		r = r.UnionPoint(p.X, p.Y)
	}
	return r
}

// Centroid returns the average of the given points.
// An empty point set yields the origin.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}
