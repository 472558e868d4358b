package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsApproxEq(a, b Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestPointOps(t *testing.T) {
	a := Pt3(1, 2, 3)
	b := Pt3(4, 5, 6)

	if got := a.Add(b); !pointsApproxEq(got, Pt3(5, 7, 9)) {
		t.Errorf("Add = %+v, want {5 7 9}", got)
	}
	if got := b.Sub(a); !pointsApproxEq(got, Pt3(3, 3, 3)) {
		t.Errorf("Sub = %+v, want {3 3 3}", got)
	}
	if got := a.Mul(2); !pointsApproxEq(got, Pt3(2, 4, 6)) {
		t.Errorf("Mul = %+v, want {2 4 6}", got)
	}
	if got := a.MulElem(b); !pointsApproxEq(got, Pt3(4, 10, 18)) {
		t.Errorf("MulElem = %+v, want {4 10 18}", got)
	}
	if got := a.Dot(b); !approxEq(got, 32) {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := Pt3(3, 4, 0).Length(); !approxEq(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(Pt(3, 4)); !approxEq(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt3(10, 0, 0).Normalize(); !pointsApproxEq(got, Pt3(1, 0, 0)) {
		t.Errorf("Normalize = %+v, want {1 0 0}", got)
	}
}

func TestAxisComponent(t *testing.T) {
	p := Pt3(1, 2, 3)
	tests := []struct {
		axis Axis
		want float64
	}{
		{AxisX, 1},
		{AxisY, 2},
		{AxisZ, 3},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			if got := p.Component(tt.axis); got != tt.want {
				t.Errorf("Component(%v) = %v, want %v", tt.axis, got, tt.want)
			}
		})
	}
}

func TestMat4Identity(t *testing.T) {
	p := Pt3(1, 2, 3)
	if got := Identity().TransformPoint(p); !pointsApproxEq(got, p) {
		t.Errorf("Identity().TransformPoint(%+v) = %+v", p, got)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(Pt(1, 0)).IsIdentity() {
		t.Error("Translate.IsIdentity() = true")
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate(Pt3(10, 20, 30))
	if got := m.TransformPoint(Pt3(1, 1, 1)); !pointsApproxEq(got, Pt3(11, 21, 31)) {
		t.Errorf("TransformPoint = %+v, want {11 21 31}", got)
	}
	// Vectors ignore translation.
	if got := m.TransformVector(Pt3(1, 1, 1)); !pointsApproxEq(got, Pt3(1, 1, 1)) {
		t.Errorf("TransformVector = %+v, want {1 1 1}", got)
	}
}

func TestMat4Scale(t *testing.T) {
	m := Scale(Pt3(2, 3, 4))
	if got := m.TransformPoint(Pt3(1, 1, 1)); !pointsApproxEq(got, Pt3(2, 3, 4)) {
		t.Errorf("TransformPoint = %+v, want {2 3 4}", got)
	}
}

func TestMat4RotateZ(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	if got := m.TransformPoint(Pt(1, 0)); !pointsApproxEq(got, Pt(0, 1)) {
		t.Errorf("RotateZ(pi/2) of (1,0) = %+v, want (0,1)", got)
	}
}

func TestMat4Compose(t *testing.T) {
	// Translate then scale: scale applies first when scale is on the right.
	m := Translate(Pt(10, 0)).Multiply(Scale(Pt3(2, 2, 1)))
	if got := m.TransformPoint(Pt(1, 1)); !pointsApproxEq(got, Pt(12, 2)) {
		t.Errorf("composed transform = %+v, want (12,2)", got)
	}
}

func TestEulerOrder(t *testing.T) {
	// A pure Z rotation through Euler must match RotateZ.
	angle := math.Pi / 3
	a := Euler(Pt3(0, 0, angle)).TransformPoint(Pt(1, 2))
	b := RotateZ(angle).TransformPoint(Pt(1, 2))
	if !pointsApproxEq(a, b) {
		t.Errorf("Euler z-only = %+v, RotateZ = %+v", a, b)
	}
}

func TestBoundingRect(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Rect
	}{
		{"empty", nil, EmptyRect()},
		{"single", []Point{Pt(1, 2)}, Rect{1, 2, 1, 2}},
		{"square", []Point{Pt(-50, -50), Pt(-50, 50), Pt(50, 50), Pt(50, -50)}, Rect{-50, -50, 50, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingRect(tt.points)
			if tt.want.IsEmpty() {
				if !got.IsEmpty() {
					t.Errorf("BoundingRect = %+v, want empty", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("BoundingRect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{MinX: -50, MinY: -25, MaxX: 50, MaxY: 25}
	if got := r.W(); !approxEq(got, 100) {
		t.Errorf("W = %v, want 100", got)
	}
	if got := r.H(); !approxEq(got, 50) {
		t.Errorf("H = %v, want 50", got)
	}
	if got := EmptyRect().W(); got != 0 {
		t.Errorf("empty W = %v, want 0", got)
	}
}

func TestCentroid(t *testing.T) {
	square := []Point{Pt(-50, -50), Pt(-50, 50), Pt(50, 50), Pt(50, -50)}
	if got := Centroid(square); !pointsApproxEq(got, Point{}) {
		t.Errorf("Centroid = %+v, want origin", got)
	}
	if got := Centroid(nil); !pointsApproxEq(got, Point{}) {
		t.Errorf("Centroid(nil) = %+v, want origin", got)
	}
}

func TestPoint2Rotate(t *testing.T) {
	got := Pt2(1, 0).Rotate(math.Pi / 2)
	if !approxEq(got.X, 0) || !approxEq(got.Y, 1) {
		t.Errorf("Rotate = %+v, want (0,1)", got)
	}
}
