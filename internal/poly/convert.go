// Package poly implements the geometric core of the visibility-graph
// pathfinder: the vertex/edge/polygon model, the pseudo-angle and
// "lies behind" predicates, and the find_visible set-elimination algorithm.
// It has no notion of a path query or a search algorithm; that lives one
// level up, in the graph package and the root package.
package poly

import "github.com/fzipp/geom"

// Point is the absolute (x, y) coordinate type used at the package boundary.
// It is kept independent of the root package's polyvis.Point so that poly
// has no import-cycle dependency on it; the root package converts between
// the two at the boundary.
type Point struct {
	X, Y float64
}

// toVec converts a Point to a geom.Vec2, as the teacher's convert.go does
// for its own point type.
func toVec(p Point) geom.Vec2 {
	return geom.Vec2{X: float32(p.X), Y: float32(p.Y)}
}
