package sketch

import (
	"fmt"
	"math"

	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/graph"
	"github.com/gogpu/sketch/mesh"
	"github.com/gogpu/sketch/primitive"
	"github.com/gogpu/sketch/tess"
	"github.com/gogpu/sketch/text"
)

// drawnGeometry records where a finished drawing's geometry landed in the
// intermediary mesh.
type drawnGeometry struct {
	vertices mesh.VertexRanges
	indices  mesh.Range
}

// state holds everything a Draw context defers: the geometry graph, the
// shared intermediary mesh, the primitives waiting to be resolved, and the
// geometry of those already resolved.
type state struct {
	graph   *graph.Graph
	scratch *mesh.Intermediary

	// borrowed guards the intermediary mesh. PushGeometry holds the
	// borrow only for the duration of the write; dimension lookups that
	// re-enter resolution happen before any write starts, so nested
	// resolution never observes the borrow held.
	borrowed bool

	theme  *primitive.Theme
	tess   tess.Tessellator
	shaper *text.Shaper
	atlas  *text.Atlas

	pending map[graph.Index]primitive.Primitive
	drawn   map[graph.Index]drawnGeometry
	order   []graph.Index
}

func newState(theme *primitive.Theme, tessellator tess.Tessellator, shaper *text.Shaper, atlas *text.Atlas) *state {
	return &state{
		graph:   graph.New(),
		scratch: mesh.NewIntermediary(),
		theme:   theme,
		tess:    tessellator,
		shaper:  shaper,
		atlas:   atlas,
		pending: make(map[graph.Index]primitive.Primitive),
		drawn:   make(map[graph.Index]drawnGeometry),
	}
}

// reset prepares the state for the next frame, retaining allocations.
func (s *state) reset() {
	s.graph.Reset()
	s.scratch.Clear()
	s.borrowed = false
	for n := range s.pending {
		delete(s.pending, n)
	}
	for n := range s.drawn {
		delete(s.drawn, n)
	}
	s.order = s.order[:0]
}

// register adds a graph node for a new drawing and queues its primitive.
func (s *state) register(p primitive.Primitive) graph.Index {
	// The root always exists, so adding a child of it cannot fail.
	n, _ := s.graph.AddNode(graph.Root)
	s.pending[n] = p
	s.order = append(s.order, n)
	return n
}

// context assembles the resolution context handed to primitives.
func (s *state) context() *primitive.Context {
	return &primitive.Context{
		Theme:                  s.theme,
		Tess:                   s.tess,
		Mesh:                   s,
		Shaper:                 s.shaper,
		Atlas:                  s.atlas,
		UntransformedDimension: s.untransformedDimension,
	}
}

// PushGeometry implements primitive.MeshWriter with a runtime-checked
// exclusive borrow of the intermediary mesh. Indices arrive relative to the
// call's points slice and are rebased onto the store before writing.
//
// The attribute stores stay parallel: every push carries one color and one
// texture coordinate per point, so the flatten can read all three by point
// slot. Mismatched lengths are rejected.
func (s *state) PushGeometry(points []geom.Point, cols []colors.RGBA, texCoords []geom.Point2, indices []int) (mesh.VertexRanges, mesh.Range, error) {
	if len(cols) != len(points) || len(texCoords) != len(points) {
		return mesh.VertexRanges{}, mesh.Range{}, fmt.Errorf(
			"sketch: attribute slices must match points: %d points, %d colors, %d tex coords",
			len(points), len(cols), len(texCoords))
	}
	if s.borrowed {
		return mesh.VertexRanges{}, mesh.Range{}, ErrScratchInUse
	}
	s.borrowed = true
	defer func() { s.borrowed = false }()

	vr := s.scratch.PushVertexRange(points, cols, texCoords)
	rebased := make([]int, len(indices))
	for i, idx := range indices {
		rebased[i] = vr.Points.Start + idx
	}
	ir := s.scratch.PushIndices(rebased...)
	return vr, ir, nil
}

// resolve finishes the drawing at the given node, if one is still pending.
// The primitive leaves the pending set before it runs, so a re-entrant
// dimension query cannot resolve the same node twice. Resolving an already
// finished node is a no-op; resolving an unknown node is an error.
func (s *state) resolve(n graph.Index) error {
	if _, ok := s.drawn[n]; ok {
		return nil
	}
	p, ok := s.pending[n]
	if !ok {
		if !s.graph.Contains(n) {
			return fmt.Errorf("sketch: resolve node %d: %w", n, ErrNodeNotFound)
		}
		return nil
	}
	delete(s.pending, n)

	d, err := p.Drawn(s.context())
	if err != nil {
		return fmt.Errorf("sketch: resolve node %d: %w", n, err)
	}
	if err := s.graph.SetNodeProperties(n, d.Spatial); err != nil {
		return fmt.Errorf("sketch: resolve node %d: %w", n, err)
	}
	s.drawn[n] = drawnGeometry{vertices: d.Vertices, indices: d.Indices}
	return nil
}

// resolveAll finishes every remaining drawing in creation order.
func (s *state) resolveAll() error {
	for _, n := range s.order {
		if err := s.resolve(n); err != nil {
			return err
		}
	}
	return nil
}

// untransformedDimension returns the node's geometry extent along the axis
// before any graph transform, finishing the node's drawing first if needed.
// Nodes with no geometry have zero extent.
func (s *state) untransformedDimension(n graph.Index, axis geom.Axis) (float64, error) {
	if err := s.resolve(n); err != nil {
		return 0, err
	}
	d, ok := s.drawn[n]
	if !ok || d.vertices.Points.IsEmpty() {
		return 0, nil
	}
	min, max := math.Inf(1), math.Inf(-1)
	for i := d.vertices.Points.Start; i < d.vertices.Points.End; i++ {
		v := s.scratch.Point(i).Component(axis)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return max - min, nil
}

// transformedDimension is the extent of the node's geometry along the axis
// under the graph's composed rotation and scale. Rotation can move one raw
// axis onto another, so the extent is measured from the transformed points
// rather than scaled from the untransformed one. Translation does not affect
// extents and is ignored.
func (s *state) transformedDimension(n graph.Index, axis geom.Axis) (float64, error) {
	if err := s.resolve(n); err != nil {
		return 0, err
	}
	d, ok := s.drawn[n]
	if !ok || d.vertices.Points.IsEmpty() {
		return 0, nil
	}
	m, err := s.graph.NodeTransform(n)
	if err != nil {
		return 0, err
	}
	min, max := math.Inf(1), math.Inf(-1)
	for i := d.vertices.Points.Start; i < d.vertices.Points.End; i++ {
		v := m.TransformVector(s.scratch.Point(i)).Component(axis)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return max - min, nil
}
