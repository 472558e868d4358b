package tess

import (
	"testing"

	"github.com/gogpu/sketch/geom"
)

func TestFillTriangleCount(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		wantTris  int
		wantVerts int
	}{
		{"triangle", 3, 1, 3},
		{"quad", 4, 2, 4},
		{"hexagon", 6, 4, 6},
	}
	fan := NewFan()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := outlinePoints(tt.points)
			verts, indices := fan.TessellateFill(outline)
			if len(verts) != tt.wantVerts {
				t.Errorf("vertices = %d, want %d", len(verts), tt.wantVerts)
			}
			if len(indices) != tt.wantTris*3 {
				t.Errorf("indices = %d, want %d", len(indices), tt.wantTris*3)
			}
			for _, i := range indices {
				if i < 0 || i >= len(verts) {
					t.Errorf("index %d out of range [0,%d)", i, len(verts))
				}
			}
		})
	}
}

func TestFillDegenerate(t *testing.T) {
	fan := NewFan()
	for n := 0; n < 3; n++ {
		verts, indices := fan.TessellateFill(outlinePoints(n))
		if verts != nil || indices != nil {
			t.Errorf("%d points: got %d verts %d indices, want nil", n, len(verts), len(indices))
		}
	}
}

func TestStrokeSegmentQuads(t *testing.T) {
	fan := NewFan()
	outline := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	verts, indices := fan.TessellateStroke(outline, StrokeOptions{Weight: 2})
	if len(verts) != 4 {
		t.Fatalf("vertices = %d, want 4", len(verts))
	}
	if len(indices) != 6 {
		t.Fatalf("indices = %d, want 6", len(indices))
	}

	// A horizontal segment of weight 2 offsets vertices one unit along Y.
	for _, v := range verts {
		if v.Y != 1 && v.Y != -1 {
			t.Errorf("vertex %+v not offset by half weight", v)
		}
	}
}

func TestStrokeClosedAddsSegment(t *testing.T) {
	fan := NewFan()
	outline := outlinePoints(4)

	open, _ := fan.TessellateStroke(outline, StrokeOptions{Weight: 1})
	closed, _ := fan.TessellateStroke(outline, StrokeOptions{Weight: 1, Closed: true})
	if len(closed) != len(open)+4 {
		t.Errorf("closed stroke vertices = %d, want %d", len(closed), len(open)+4)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	fan := NewFan()
	if v, _ := fan.TessellateStroke([]geom.Point{geom.Pt(1, 1)}, StrokeOptions{Weight: 1}); v != nil {
		t.Errorf("single point stroke = %d vertices, want nil", len(v))
	}
	if v, _ := fan.TessellateStroke(outlinePoints(4), StrokeOptions{Weight: 0}); v != nil {
		t.Errorf("zero weight stroke = %d vertices, want nil", len(v))
	}
	// Coincident points produce no segment geometry.
	same := []geom.Point{geom.Pt(5, 5), geom.Pt(5, 5)}
	if v, _ := fan.TessellateStroke(same, StrokeOptions{Weight: 1}); len(v) != 0 {
		t.Errorf("degenerate segment = %d vertices, want 0", len(v))
	}
}

func TestDefaultStrokeOptions(t *testing.T) {
	opts := DefaultStrokeOptions()
	if opts.Weight != 1 {
		t.Errorf("Weight = %v, want 1", opts.Weight)
	}
	if opts.Cap != LineCapButt || opts.Join != LineJoinMiter {
		t.Errorf("defaults = %+v, want butt cap, miter join", opts)
	}
}

// outlinePoints returns the first n points of a fixed test outline.
func outlinePoints(n int) []geom.Point {
	square := []geom.Point{
		geom.Pt(-10, -10), geom.Pt(10, -10), geom.Pt(10, 10), geom.Pt(-10, 10),
		geom.Pt(-10, 0), geom.Pt(0, -10),
	}
	if n > len(square) {
		n = len(square)
	}
	return square[:n]
}
