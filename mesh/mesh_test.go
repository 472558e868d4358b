package mesh

import (
	"testing"

	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantLen int
		empty   bool
	}{
		{"empty", Range{}, 0, true},
		{"single", Range{Start: 0, End: 1}, 1, false},
		{"offset", Range{Start: 5, End: 9}, 4, false},
		{"inverted", Range{Start: 3, End: 1}, -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.wantLen {
				t.Errorf("Len = %d, want %d", got, tt.wantLen)
			}
			if got := tt.r.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestPushVertexRange(t *testing.T) {
	m := NewIntermediary()

	first := m.PushVertexRange(
		[]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)},
		[]colors.RGBA{colors.Red, colors.Red},
		[]geom.Point2{geom.Pt2(0, 0), geom.Pt2(1, 0)},
	)
	if first.Points != (Range{Start: 0, End: 2}) {
		t.Errorf("first points range = %+v, want [0,2)", first.Points)
	}

	second := m.PushVertexRange([]geom.Point{geom.Pt(2, 2)}, nil, nil)
	if second.Points != (Range{Start: 2, End: 3}) {
		t.Errorf("second points range = %+v, want [2,3)", second.Points)
	}
	if !second.Colors.IsEmpty() {
		t.Errorf("second colors range = %+v, want empty", second.Colors)
	}

	// Earlier ranges must survive later pushes.
	if got := m.Point(first.Points.Start); got != geom.Pt(0, 0) {
		t.Errorf("Point(0) = %+v after second push", got)
	}
	if got := m.Color(first.Colors.Start); got != colors.Red {
		t.Errorf("Color(0) = %+v after second push", got)
	}
}

func TestPushIndices(t *testing.T) {
	m := NewIntermediary()
	r1 := m.PushIndices(0, 1, 2)
	r2 := m.PushIndices(3, 4, 5)
	if r1 != (Range{Start: 0, End: 3}) {
		t.Errorf("first index range = %+v, want [0,3)", r1)
	}
	if r2 != (Range{Start: 3, End: 6}) {
		t.Errorf("second index range = %+v, want [3,6)", r2)
	}
	got := m.IndexSlice(r2)
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("IndexSlice = %v, want [3 4 5]", got)
	}
}

func TestClear(t *testing.T) {
	m := NewIntermediary()
	m.PushVertexRange([]geom.Point{geom.Pt(1, 1)}, []colors.RGBA{colors.Blue}, []geom.Point2{geom.Pt2(0, 0)})
	m.PushIndices(0)
	m.Clear()

	if m.PointsLen() != 0 || m.IndicesLen() != 0 {
		t.Errorf("after Clear: points %d indices %d, want 0 0", m.PointsLen(), m.IndicesLen())
	}

	// Ranges restart at zero after clearing.
	vr := m.PushVertexRange([]geom.Point{geom.Pt(2, 2)}, nil, nil)
	if vr.Points.Start != 0 {
		t.Errorf("points range after Clear starts at %d, want 0", vr.Points.Start)
	}
	ir := m.PushIndices(0)
	if ir.Start != 0 {
		t.Errorf("index range after Clear starts at %d, want 0", ir.Start)
	}
}

func TestCommittedMesh(t *testing.T) {
	var m Mesh
	i := m.PushVertex(Vertex{Point: geom.Pt(1, 2), Color: colors.Green, TexCoords: geom.Pt2(0.5, 0.5)})
	if i != 0 {
		t.Errorf("first vertex index = %d, want 0", i)
	}
	j := m.PushVertex(Vertex{Point: geom.Pt(3, 4)})
	if j != 1 {
		t.Errorf("second vertex index = %d, want 1", j)
	}
	m.PushIndex(0)
	m.PushIndex(1)

	if m.VertexCount() != 2 {
		t.Errorf("VertexCount = %d, want 2", m.VertexCount())
	}
	if len(m.Indices) != 2 {
		t.Errorf("indices = %d, want 2", len(m.Indices))
	}

	m.Clear()
	if m.VertexCount() != 0 || len(m.Indices) != 0 {
		t.Error("Clear left data behind")
	}
}
