package poly

// Edge is an ordered pair of polygon-adjacent vertices: V1 is the vertex the
// edge starts at (in the polygon's cyclic order), V2 the one it ends at.
type Edge struct {
	V1, V2 *PolygonVertex
}

// Length returns the edge's Euclidean length.
func (e *Edge) Length() float64 {
	dx := e.V2.coords.X - e.V1.coords.X
	dy := e.V2.coords.Y - e.V1.coords.Y
	return hypotF(dx, dy)
}
