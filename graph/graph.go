// Package graph implements the geometry graph: an arena-backed tree of
// transform nodes. Parent transforms compose into children. Nodes are only
// ever created as children of existing nodes (or the root), so the graph is
// acyclic by construction; nothing is deleted mid-frame and the whole arena
// is reset between frames.
package graph

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch/geom"
)

// ErrNodeNotFound is returned when an index does not refer to a node in
// the graph. This indicates a programming error, not a runtime condition.
var ErrNodeNotFound = errors.New("graph: node not found")

// Index identifies a node within a Graph.
type Index int

// Root is the index of the implicit root node every graph starts with.
const Root Index = 0

// Spatial holds a node's local transform properties.
type Spatial struct {
	Position    geom.Point
	Orientation geom.Point // euler angles in radians
	Scale       geom.Point
}

// DefaultSpatial returns spatial properties with unit scale and no
// translation or rotation.
func DefaultSpatial() Spatial {
	return Spatial{Scale: geom.Pt3(1, 1, 1)}
}

// Transform returns the local transform matrix for the properties,
// applying scale, then rotation, then translation.
func (s Spatial) Transform() geom.Mat4 {
	m := geom.Translate(s.Position)
	m = m.Multiply(geom.Euler(s.Orientation))
	return m.Multiply(geom.Scale(s.Scale))
}

type node struct {
	parent  Index
	spatial Spatial
	rank    int
}

// Graph is an append-only arena of transform nodes.
type Graph struct {
	nodes []node
}

// New creates a graph containing only the root node.
func New() *Graph {
	g := &Graph{}
	g.Reset()
	return g
}

// Reset clears the graph back to a lone root node, retaining capacity.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.nodes = append(g.nodes, node{parent: -1, spatial: DefaultSpatial()})
}

// Len returns the number of nodes in the graph, including the root.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Contains reports whether the index refers to a node in the graph.
func (g *Graph) Contains(i Index) bool {
	return i >= 0 && int(i) < len(g.nodes)
}

// AddNode appends a new node under the given parent and returns its index.
// The node starts with default spatial properties (unit scale).
// Adding under an unknown parent returns ErrNodeNotFound.
func (g *Graph) AddNode(parent Index) (Index, error) {
	if !g.Contains(parent) {
		return 0, fmt.Errorf("%w: parent %d", ErrNodeNotFound, parent)
	}
	i := Index(len(g.nodes))
	g.nodes = append(g.nodes, node{
		parent:  parent,
		spatial: DefaultSpatial(),
		rank:    len(g.nodes),
	})
	return i, nil
}

// Parent returns the parent index of the given node.
// The root's parent is -1.
func (g *Graph) Parent(i Index) (Index, error) {
	if !g.Contains(i) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	return g.nodes[i].parent, nil
}

// Rank returns the node's draw-order rank (creation order).
func (g *Graph) Rank(i Index) (int, error) {
	if !g.Contains(i) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	return g.nodes[i].rank, nil
}

// SetNodeProperties stores the node's resolved spatial properties.
func (g *Graph) SetNodeProperties(i Index, s Spatial) error {
	if !g.Contains(i) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	g.nodes[i].spatial = s
	return nil
}

// NodeProperties returns the node's spatial properties.
func (g *Graph) NodeProperties(i Index) (Spatial, error) {
	if !g.Contains(i) {
		return Spatial{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	return g.nodes[i].spatial, nil
}

// LocalTransform returns the node's local transform matrix.
func (g *Graph) LocalTransform(i Index) (geom.Mat4, error) {
	if !g.Contains(i) {
		return geom.Mat4{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	return g.nodes[i].spatial.Transform(), nil
}

// NodeTransform returns the node's composed transform: the product of every
// ancestor's local transform down to and including the node itself.
func (g *Graph) NodeTransform(i Index) (geom.Mat4, error) {
	if !g.Contains(i) {
		return geom.Mat4{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	m := g.nodes[i].spatial.Transform()
	for p := g.nodes[i].parent; p >= 0; p = g.nodes[p].parent {
		m = g.nodes[p].spatial.Transform().Multiply(m)
	}
	return m, nil
}

// ComposedScale returns the product of the node's scale with every
// ancestor's scale, per axis. Used to derive transformed dimensions
// from untransformed ones.
func (g *Graph) ComposedScale(i Index) (geom.Point, error) {
	if !g.Contains(i) {
		return geom.Point{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	s := g.nodes[i].spatial.Scale
	for p := g.nodes[i].parent; p >= 0; p = g.nodes[p].parent {
		s = s.MulElem(g.nodes[p].spatial.Scale)
	}
	return s, nil
}
