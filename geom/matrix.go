package geom

import "math"

// Mat4 is a row-major 4x4 affine transform matrix.
// It composes translation, rotation, and scale for graph nodes.
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a translation matrix.
func Translate(v Point) Mat4 {
	m := Identity()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// Scale returns a per-axis scale matrix.
func Scale(v Point) Mat4 {
	m := Identity()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// RotateX returns a rotation matrix around the X axis (radians).
func RotateX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[1][1], m[1][2] = cos, -sin
	m[2][1], m[2][2] = sin, cos
	return m
}

// RotateY returns a rotation matrix around the Y axis (radians).
func RotateY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][2] = cos, sin
	m[2][0], m[2][2] = -sin, cos
	return m
}

// RotateZ returns a rotation matrix around the Z axis (radians).
func RotateZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return m
}

// Euler returns the combined rotation for the given euler angles,
// applied in Z, then Y, then X order.
func Euler(v Point) Mat4 {
	return RotateX(v.X).Multiply(RotateY(v.Y)).Multiply(RotateZ(v.Z))
}

// Multiply returns m ⋅ n.
func (m Mat4) Multiply(n Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// TransformPoint applies the affine transform to a point.
func (m Mat4) TransformPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformVector applies the transform's rotation and scale to a
// direction vector, ignoring translation.
func (m Mat4) TransformVector(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// IsIdentity reports whether the matrix is the identity transform.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}
