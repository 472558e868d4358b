// Package primitive implements the shape catalog of the drawing toolkit.
//
// Each primitive kind is a property record plus a Drawn method that turns
// the accumulated properties into untransformed vertex and index data in the
// intermediary mesh. New kinds are added by implementing the Primitive
// interface; the graph, mesh, and resolution engine never change per kind.
package primitive

// Kind identifies one primitive shape family.
type Kind int

// The built-in primitive kinds.
const (
	KindQuad Kind = iota
	KindRect
	KindTri
	KindPolygon
	KindLine
	KindEllipse
	KindPath
	KindMesh
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindQuad:
		return "quad"
	case KindRect:
		return "rect"
	case KindTri:
		return "tri"
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	case KindPath:
		return "path"
	case KindMesh:
		return "mesh"
	case KindText:
		return "text"
	}
	return "unknown"
}
