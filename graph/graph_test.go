package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/sketch/geom"
)

const epsilon = 1e-9

func pointsApproxEq(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestNewGraph(t *testing.T) {
	g := New()
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1 (root)", g.Len())
	}
	if !g.Contains(Root) {
		t.Error("Contains(Root) = false")
	}
	p, err := g.Parent(Root)
	if err != nil {
		t.Fatalf("Parent(Root): %v", err)
	}
	if p != -1 {
		t.Errorf("root parent = %d, want -1", p)
	}
}

func TestAddNode(t *testing.T) {
	g := New()
	a, err := g.AddNode(Root)
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	b, err := g.AddNode(a)
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if a == Root || b == Root || a == b {
		t.Errorf("indices not distinct: a=%d b=%d", a, b)
	}

	parent, err := g.Parent(b)
	if err != nil {
		t.Fatalf("Parent: %v", err)
	}
	if parent != a {
		t.Errorf("Parent(b) = %d, want %d", parent, a)
	}

	ra, _ := g.Rank(a)
	rb, _ := g.Rank(b)
	if rb <= ra {
		t.Errorf("ranks not in creation order: a=%d b=%d", ra, rb)
	}
}

func TestAddNodeUnknownParent(t *testing.T) {
	g := New()
	if _, err := g.AddNode(42); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("AddNode(42) error = %v, want ErrNodeNotFound", err)
	}
}

func TestNodeLookupErrors(t *testing.T) {
	g := New()
	if _, err := g.NodeProperties(7); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("NodeProperties error = %v, want ErrNodeNotFound", err)
	}
	if _, err := g.NodeTransform(-1); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("NodeTransform error = %v, want ErrNodeNotFound", err)
	}
	if err := g.SetNodeProperties(7, DefaultSpatial()); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("SetNodeProperties error = %v, want ErrNodeNotFound", err)
	}
}

func TestNodeTransformComposition(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Root)
	b, _ := g.AddNode(a)

	sa := DefaultSpatial()
	sa.Position = geom.Pt(10, 0)
	if err := g.SetNodeProperties(a, sa); err != nil {
		t.Fatalf("SetNodeProperties: %v", err)
	}

	sb := DefaultSpatial()
	sb.Position = geom.Pt(0, 5)
	if err := g.SetNodeProperties(b, sb); err != nil {
		t.Fatalf("SetNodeProperties: %v", err)
	}

	m, err := g.NodeTransform(b)
	if err != nil {
		t.Fatalf("NodeTransform: %v", err)
	}
	got := m.TransformPoint(geom.Point{})
	if !pointsApproxEq(got, geom.Pt(10, 5)) {
		t.Errorf("composed origin = %+v, want (10,5)", got)
	}
}

func TestComposedScale(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Root)
	b, _ := g.AddNode(a)

	sa := DefaultSpatial()
	sa.Scale = geom.Pt3(2, 2, 1)
	g.SetNodeProperties(a, sa)

	sb := DefaultSpatial()
	sb.Scale = geom.Pt3(3, 1, 1)
	g.SetNodeProperties(b, sb)

	s, err := g.ComposedScale(b)
	if err != nil {
		t.Fatalf("ComposedScale: %v", err)
	}
	if !pointsApproxEq(s, geom.Pt3(6, 2, 1)) {
		t.Errorf("ComposedScale = %+v, want (6,2,1)", s)
	}
}

func TestSpatialTransformOrder(t *testing.T) {
	// Scale applies before translation: a unit point scales to 2 then
	// moves by 10.
	s := DefaultSpatial()
	s.Position = geom.Pt(10, 0)
	s.Scale = geom.Pt3(2, 1, 1)
	got := s.Transform().TransformPoint(geom.Pt(1, 0))
	if !pointsApproxEq(got, geom.Pt(12, 0)) {
		t.Errorf("transform = %+v, want (12,0)", got)
	}
}

func TestReset(t *testing.T) {
	g := New()
	g.AddNode(Root)
	g.AddNode(Root)
	g.Reset()
	if g.Len() != 1 {
		t.Errorf("Len after Reset = %d, want 1", g.Len())
	}
	if g.Contains(2) {
		t.Error("Contains(2) = true after Reset")
	}
}
