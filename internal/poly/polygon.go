package poly

import "errors"

// Validation errors for Store's optional polygon check. These are wrapped
// with coordinate/position detail by the root package before being surfaced
// as polyvis.ErrBadPolygon.
var (
	ErrTooFewVertices   = errors.New("poly: polygon needs at least 3 vertices")
	ErrDuplicateVertex  = errors.New("poly: polygon has two identical consecutive vertices")
	ErrDegenerate       = errors.New("poly: polygon vertices are collinear (zero area)")
	ErrWrongOrientation = errors.New("poly: polygon has the wrong winding order")
	ErrSelfIntersecting = errors.New("poly: polygon is self-intersecting")
)

// Polygon is a cyclic sequence of at least three non-collinear, distinct
// vertices, together with its edge list and extremity list. Boundary
// polygons are wound counter-clockwise, holes clockwise; that orientation
// is what IsExtremity's classification relies on.
type Polygon struct {
	vertices    []*PolygonVertex
	edges       []*Edge
	extremities []*PolygonVertex
	isHole      bool
}

// NewPolygon builds a Polygon from its ordered vertex coordinates, wiring
// up the cyclic edge list and classifying extremities. org is the shared
// origin state every produced vertex will read from.
func NewPolygon(coords []Point, isHole bool, org *OriginState) *Polygon {
	n := len(coords)
	p := &Polygon{isHole: isHole}
	p.vertices = make([]*PolygonVertex, n)
	p.edges = make([]*Edge, n)

	for i, c := range coords {
		p.vertices[i] = &PolygonVertex{Vertex: NewVertex(c, org)}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		e := &Edge{V1: p.vertices[i], V2: p.vertices[j]}
		p.edges[i] = e
		p.vertices[i].edge2 = e
		p.vertices[j].edge1 = e
	}
	for i, v := range p.vertices {
		prev := p.vertices[(i-1+n)%n]
		next := p.vertices[(i+1)%n]
		v.isExtremity = isReflexFromTraversableSide(prev.coords, v.coords, next.coords)
		if v.isExtremity {
			p.extremities = append(p.extremities, v)
		}
	}
	return p
}

// isReflexFromTraversableSide implements the classification of spec section
// 4.2: a vertex is an extremity iff its interior angle on the traversable
// side exceeds 180 degrees.
//
// Given the mandated orientation (boundary CCW, holes CW), the same sign
// test works for both: a positive cross product of the incident edges
// means convex for a CCW-wound contour and reflex for a CW-wound one. For a
// hole, "reflex as seen from inside the hole" is exactly "convex as seen
// from the traversable area wrapped around the outside of it" and vice
// versa, so the two sign flips (orientation, and which side is
// traversable) cancel and the boundary's test applies unchanged.
func isReflexFromTraversableSide(prev, v, next Point) bool {
	return cross2(prev, v, next) < 0
}

// Vertices returns the polygon's vertices in cyclic order.
func (p *Polygon) Vertices() []*PolygonVertex { return p.vertices }

// Edges returns the polygon's edges in cyclic order.
func (p *Polygon) Edges() []*Edge { return p.edges }

// Extremities returns the polygon's reflex (from the traversable side)
// vertices.
func (p *Polygon) Extremities() []*PolygonVertex { return p.extremities }

// IsHole reports whether this polygon is a hole rather than the boundary.
func (p *Polygon) IsHole() bool { return p.isHole }

// Coordinates returns the polygon's vertex coordinates in cyclic order.
func (p *Polygon) Coordinates() []Point {
	out := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Coordinates()
	}
	return out
}

// Validate checks the structural invariants spec.md requires of a polygon:
// at least 3 vertices, no two identical consecutive vertices, non-zero
// area (not all collinear), the winding order matching isHole, and no
// self-intersection.
func Validate(coords []Point, isHole bool) error {
	n := len(coords)
	if n < 3 {
		return ErrTooFewVertices
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if coords[i] == coords[j] {
			return ErrDuplicateVertex
		}
	}
	area := signedArea(coords)
	if area == 0 {
		return ErrDegenerate
	}
	if isHole && area > 0 {
		return ErrWrongOrientation
	}
	if !isHole && area < 0 {
		return ErrWrongOrientation
	}
	if selfIntersects(coords) {
		return ErrSelfIntersecting
	}
	return nil
}

// signedArea is twice the polygon's signed area (shoelace formula):
// positive for counter-clockwise winding, negative for clockwise.
func signedArea(coords []Point) float64 {
	n := len(coords)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += coords[i].X*coords[j].Y - coords[j].X*coords[i].Y
	}
	return sum
}

// selfIntersects checks all pairs of non-adjacent edges for a proper
// intersection. O(n^2), acceptable for the polygon sizes this algorithm
// targets; only run when validation is requested.
func selfIntersects(coords []Point) bool {
	n := len(coords)
	for i := 0; i < n; i++ {
		a1, a2 := coords[i], coords[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1, b2 := coords[j], coords[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func orientSign(a, b, c Point) float64 {
	return cross2(a, b, c)
}

func onSegmentPt(p, a, b Point) bool {
	return onSegment(p.X, p.Y, a.X, a.Y, b.X, b.Y)
}

// segmentsIntersect reports whether closed segments a1-a2 and b1-b2 properly
// cross or touch, using the standard orientation test.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	o1 := orientSign(a1, a2, b1)
	o2 := orientSign(a1, a2, b2)
	o3 := orientSign(b1, b2, a1)
	o4 := orientSign(b1, b2, a2)

	if ((o1 > 0) != (o2 > 0)) && o1 != 0 && o2 != 0 &&
		((o3 > 0) != (o4 > 0)) && o3 != 0 && o4 != 0 {
		return true
	}
	if o1 == 0 && onSegmentPt(b1, a1, a2) {
		return true
	}
	if o2 == 0 && onSegmentPt(b2, a1, a2) {
		return true
	}
	if o3 == 0 && onSegmentPt(a1, b1, b2) {
		return true
	}
	if o4 == 0 && onSegmentPt(a2, b1, b2) {
		return true
	}
	return false
}
