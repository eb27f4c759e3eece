package poly

import (
	"math"

	"github.com/fzipp/geom"
)

// OriginState is the process-wide (per environment) notion of the current
// query origin that Translate shifts. It is shared by pointer among every
// Vertex belonging to an environment plus any free query vertices created
// for a single FindShortestPath call, so that moving the origin is O(1)
// regardless of how many vertices exist: each vertex lazily notices its
// cached generation is stale the next time it is read, exactly the "dirty
// flag" lazy-recompute scheme the spec describes, without the O(n) eager
// sweep the reference implementation performs on every translate.
type OriginState struct {
	point Point
	gen   uint64
}

// NewOriginState returns an OriginState fixed at the zero point.
func NewOriginState() *OriginState {
	return &OriginState{}
}

// Set moves the origin and invalidates every vertex that refers to this
// state.
func (o *OriginState) Set(p Point) {
	o.point = p
	o.gen++
}

// Node is the common read interface of a point usable by the visibility
// engine: either a free query vertex or a polygon-owned one. It corresponds
// to the "Vertex = Free(coords) | OnPolygon(...)" tagged variant the spec
// describes; here it is modelled as an interface with two implementers
// instead, which is the idiomatic Go equivalent.
type Node interface {
	Coordinates() Point
	Translated() geom.Vec2
	Distance() float64
	Angle() (float64, bool)
}

// Vertex is a free point: it has coordinates and an origin-relative view,
// but no polygon membership. Query start/goal points are represented this
// way.
type Vertex struct {
	coords Point
	org    *OriginState
	gen    uint64
	tv     geom.Vec2
	dist   float64
	ang    float64
	angOK  bool
}

// NewVertex creates a free vertex bound to the given origin state.
func NewVertex(coords Point, org *OriginState) *Vertex {
	return &Vertex{coords: coords, org: org, gen: org.gen - 1}
}

func (v *Vertex) refresh() {
	if v.gen == v.org.gen {
		return
	}
	v.tv = toVec(Point{X: v.coords.X - v.org.point.X, Y: v.coords.Y - v.org.point.Y})
	v.dist = math.Hypot(float64(v.tv.X), float64(v.tv.Y))
	v.ang, v.angOK = PseudoAngle(v.tv)
	v.gen = v.org.gen
}

// Coordinates returns the vertex's absolute position.
func (v *Vertex) Coordinates() Point { return v.coords }

// Translated returns the position relative to the current query origin.
func (v *Vertex) Translated() geom.Vec2 { v.refresh(); return v.tv }

// Distance returns the Euclidean distance to the current query origin.
func (v *Vertex) Distance() float64 { v.refresh(); return v.dist }

// Angle returns the pseudo-angle relative to the current query origin, and
// false if this vertex currently coincides with the origin.
func (v *Vertex) Angle() (float64, bool) { v.refresh(); return v.ang, v.angOK }

// PolygonVertex refines Vertex with the two incident edges of its owning
// polygon's cyclic vertex order and whether it is an extremity (a reflex
// vertex seen from the traversable side, see IsExtremity).
type PolygonVertex struct {
	*Vertex
	edge1, edge2 *Edge
	isExtremity  bool
}

// Edge1 is the incident edge ending at this vertex.
func (pv *PolygonVertex) Edge1() *Edge { return pv.edge1 }

// Edge2 is the incident edge starting at this vertex.
func (pv *PolygonVertex) Edge2() *Edge { return pv.edge2 }

// IsExtremity reports whether this vertex is a candidate bend point: its
// interior angle on the traversable side exceeds 180 degrees.
func (pv *PolygonVertex) IsExtremity() bool { return pv.isExtremity }

// Neighbours returns the two polygon-adjacent vertices, in (previous, next)
// cyclic order.
func (pv *PolygonVertex) Neighbours() (prev, next *PolygonVertex) {
	return pv.edge1.V1, pv.edge2.V2
}
