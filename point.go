// Package polyvis finds the shortest Euclidean path between two points in a
// two-dimensional polygonal environment made of one outer boundary polygon
// and zero or more interior hole polygons.
//
// It follows the approach of Vinther, Strand-Holm & Afshani ("Pathfinding
// in Two-dimensional Worlds"): continuous pathfinding is reduced to graph
// search over a precomputed visibility graph of the polygons' reflex
// ("extremity") vertices. A query connects its start and goal points to
// that graph and runs a heuristic shortest-path search over the result.
//
// A typical use:
//
//	var env polyvis.Environment
//	err := env.Store(boundary, holes, polyvis.WithValidation())
//	path, dist, err := env.FindShortestPath(start, goal)
//
// Store implicitly resets any previous preprocessing; FindShortestPath
// triggers Prepare automatically the first time it is called.
package polyvis

import "fmt"

// Point is an absolute coordinate in the plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
