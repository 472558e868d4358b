package geom

import "math"

// Point represents a 3D point or vector.
// Drawing primitives that are naturally 2D leave Z at zero.
type Point struct {
	X, Y, Z float64
}

// Point2 represents a 2D point, used for texture coordinates and
// flat primitive outlines.
type Point2 struct {
	X, Y float64
}

// Pt is a convenience function to create a Point on the Z=0 plane.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 is a convenience function to create a Point.
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Pt2 is a convenience function to create a Point2.
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// XY returns the 2D projection of the point.
func (p Point) XY() Point2 {
	return Point2{X: p.X, Y: p.Y}
}

// Point returns the Point2 lifted onto the Z=0 plane.
func (p Point2) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// MulElem returns the element-wise product of two points.
func (p Point) MulElem(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return p.Mul(1 / length)
}

// Axis selects one coordinate axis of a point.
type Axis int

// The three coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// Component returns the point's coordinate along the axis.
func (p Point) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Add returns the sum of two 2D points.
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two 2D points.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the 2D point scaled by a scalar.
func (p Point2) Mul(s float64) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// MulElem returns the element-wise product of two 2D points.
func (p Point2) MulElem(q Point2) Point2 {
	return Point2{X: p.X * q.X, Y: p.Y * q.Y}
}

// Length returns the length of the 2D vector.
func (p Point2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns a 2D unit vector in the same direction.
func (p Point2) Normalize() Point2 {
	length := p.Length()
	if length == 0 {
		return Point2{}
	}
	return Point2{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the 2D point rotated by angle radians around the origin.
func (p Point2) Rotate(angle float64) Point2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
