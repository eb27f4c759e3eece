package polyvis

import (
	"math"

	"github.com/nav2d/polyvis/internal/graph"
	"github.com/nav2d/polyvis/internal/poly"
)

// Environment holds a stored polygonal map (one boundary, zero or more
// holes) together with its precomputed visibility graph. The zero value is
// a valid, empty Environment: Store must be called before Prepare or
// FindShortestPath will do anything useful.
type Environment struct {
	origin *poly.OriginState

	boundary *poly.Polygon
	holes    []*poly.Polygon

	boundaryCoords []poly.Point
	holeCoords     [][]poly.Point

	allEdges       []*poly.Edge
	allExtremities []*poly.PolygonVertex

	bounds rect

	graph    *graph.Graph[poly.Node]
	prepared bool
}

// Store loads a new map, replacing any previously stored one and discarding
// any prior preprocessing. boundary must be wound counter-clockwise and each
// hole clockwise; with WithValidation, Store checks this (and the other
// structural invariants in internal/poly.Validate) and returns ErrBadPolygon
// wrapping the specific violation instead of building an unusable graph.
func (e *Environment) Store(boundary []Point, holes [][]Point, opts ...StoreOption) error {
	var o StoreOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.Validate {
		if err := poly.Validate(toPolyPoints(boundary), false); err != nil {
			return badPolygonf("boundary", 0, err)
		}
		for i, h := range holes {
			if err := poly.Validate(toPolyPoints(h), true); err != nil {
				return badPolygonf("hole", i, err)
			}
		}
	}

	e.origin = poly.NewOriginState()
	e.boundary = poly.NewPolygon(toPolyPoints(boundary), false, e.origin)
	e.holes = make([]*poly.Polygon, len(holes))
	e.boundaryCoords = e.boundary.Coordinates()
	e.holeCoords = make([][]poly.Point, len(holes))

	e.allEdges = append([]*poly.Edge{}, e.boundary.Edges()...)
	e.allExtremities = append([]*poly.PolygonVertex{}, e.boundary.Extremities()...)

	all := make([][]Point, 0, len(holes)+1)
	all = append(all, boundary)
	for i, h := range holes {
		hp := poly.NewPolygon(toPolyPoints(h), true, e.origin)
		e.holes[i] = hp
		e.holeCoords[i] = hp.Coordinates()
		e.allEdges = append(e.allEdges, hp.Edges()...)
		e.allExtremities = append(e.allExtremities, hp.Extremities()...)
		all = append(all, h)
	}
	e.bounds = boundingRect(all)

	e.graph = nil
	e.prepared = false
	return nil
}

func (e *Environment) edgeSet() map[*poly.Edge]struct{} {
	s := make(map[*poly.Edge]struct{}, len(e.allEdges))
	for _, ed := range e.allEdges {
		s[ed] = struct{}{}
	}
	return s
}

func (e *Environment) extremityNodeSet(exclude *poly.PolygonVertex) map[poly.Node]struct{} {
	s := make(map[poly.Node]struct{}, len(e.allExtremities))
	for _, x := range e.allExtremities {
		if x == exclude {
			continue
		}
		s[x] = struct{}{}
	}
	return s
}

// Translate moves the environment's shared query origin, the reference
// point every stored vertex's Distance and Angle are computed relative to.
// Prepare and FindShortestPath call this themselves as needed; it is
// exported because some callers may want to pre-warm the origin state.
func (e *Environment) Translate(origin Point) {
	e.origin.Set(toPolyPoint(origin))
}

// Graph exposes the preprocessed visibility graph, for callers that want to
// inspect it directly (e.g. to render it). It returns ErrNotPrepared if
// Prepare has not run yet.
func (e *Environment) Graph() (*graph.Graph[poly.Node], error) {
	if !e.prepared {
		return nil, ErrNotPrepared
	}
	return e.graph, nil
}

// Prepare builds the visibility graph among every extremity of every stored
// polygon. It implements spec section 4.5: for each extremity in turn, the
// query origin is moved to it, its polygon-adjacent neighbours are recorded
// directly, Property One removes from consideration every extremity lying in
// the cone opposite its interior angle (a shortest path never bends at x and
// then next at such an extremity), and FindVisible resolves everyone else.
//
// FindShortestPath calls Prepare automatically on first use; calling it
// again after Store rebuilds the graph from scratch.
func (e *Environment) Prepare() error {
	if e.boundary == nil {
		return ErrNoPolygons
	}

	g := graph.New[poly.Node]()
	remaining := make(map[*poly.PolygonVertex]struct{}, len(e.allExtremities))
	for _, x := range e.allExtremities {
		remaining[x] = struct{}{}
	}

	for len(remaining) > 0 {
		var x *poly.PolygonVertex
		for k := range remaining {
			x = k
			break
		}
		delete(remaining, x)

		e.origin.Set(x.Coordinates())

		// candidates starts as every extremity not yet processed, mirroring
		// the reference's extremities_to_check.copy(): x has just been
		// popped from remaining, so remaining already excludes it.
		candidates := make(map[poly.Node]struct{}, len(remaining))
		for k := range remaining {
			candidates[poly.Node(k)] = struct{}{}
		}

		visible := map[poly.Node]float64{}
		prev, next := x.Neighbours()
		if _, ok := candidates[poly.Node(prev)]; ok {
			visible[poly.Node(prev)] = prev.Distance()
			delete(candidates, poly.Node(prev))
		}
		if _, ok := candidates[poly.Node(next)]; ok {
			visible[poly.Node(next)] = next.Distance()
			delete(candidates, poly.Node(next))
		}

		phi1, ok1 := prev.Angle()
		phi2, ok2 := next.Angle()
		if ok1 && ok2 {
			removeCandidatesInRange(candidates, phi1, phi2, true)

			// Property One: a vertex lying in the cone directly behind x
			// (opposite its own interior angle) is never the next bend of a
			// shortest path through x. This is checked against every
			// extremity, not just the unprocessed ones, since it may remove
			// a graph edge to x that an earlier extremity's processing added.
			r1, r2 := poly.RotateHalf(phi1), poly.RotateHalf(phi2)
			others := make([]poly.Node, 0, len(e.allExtremities))
			for _, o := range e.allExtremities {
				if o == x {
					continue
				}
				others = append(others, poly.Node(o))
			}
			behind := poly.WithinRange(r1, r2, others, true)
			if len(behind) > 0 {
				g.RemoveMultipleUndirectedEdges(poly.Node(x), behind)
				for _, b := range behind {
					delete(candidates, b)
				}
			}
		}

		visiblePairs := poly.FindVisible(candidates, e.edgeSetExcluding(x))
		for _, vp := range visiblePairs {
			visible[vp.Node] = vp.Dist
		}
		g.AddMultipleUndirectedEdges(poly.Node(x), visible)
	}

	e.graph = g
	e.prepared = true
	return nil
}

func (e *Environment) edgeSetExcluding(x *poly.PolygonVertex) map[*poly.Edge]struct{} {
	s := e.edgeSet()
	delete(s, x.Edge1())
	delete(s, x.Edge2())
	return s
}

// removeCandidatesInRange discards every candidate whose pseudo-angle falls
// within the interior cone spanned by phi1/phi2: those extremities are
// occluded through x's own polygon at x and can never be visible from it, no
// matter what FindVisible would conclude from intervening edges.
func removeCandidatesInRange(candidates map[poly.Node]struct{}, phi1, phi2 float64, lessThan180 bool) {
	keys := make([]poly.Node, 0, len(candidates))
	for c := range candidates {
		keys = append(keys, c)
	}
	inRange := poly.WithinRange(phi1, phi2, keys, lessThan180)
	for _, c := range inRange {
		delete(candidates, c)
	}
}

// withinMap reports whether p lies within the boundary polygon and outside
// every hole, per spec section 4.6: the boundary's own border counts as
// inside, a hole's border counts as outside (so a path may run along either
// without being rejected, but cannot continue into a hole's interior).
func (e *Environment) withinMap(p Point) bool {
	if !e.bounds.contains(p) {
		return false
	}
	if !poly.InsidePolygon(p.X, p.Y, e.boundaryCoords, true) {
		return false
	}
	for _, hc := range e.holeCoords {
		if poly.InsidePolygon(p.X, p.Y, hc, false) {
			return false
		}
	}
	return true
}

// FindShortestPath returns the shortest polygon-respecting path from start
// to goal, and its Euclidean length. It auto-prepares the environment on
// first use. It returns ErrOutOfMap if either point lies outside the
// boundary or inside a hole, and ErrNoPath if both points are valid but no
// path connects them.
func (e *Environment) FindShortestPath(start, goal Point) ([]Point, float64, error) {
	if e.boundary == nil {
		return nil, 0, ErrNoPolygons
	}
	if !e.withinMap(start) {
		return nil, 0, outOfMapf(start)
	}
	if !e.withinMap(goal) {
		return nil, 0, outOfMapf(goal)
	}
	if start == goal {
		return []Point{start, goal}, 0, nil
	}
	if !e.prepared {
		if err := e.Prepare(); err != nil {
			return nil, 0, err
		}
	}

	startV := poly.NewVertex(toPolyPoint(start), e.origin)
	goalV := poly.NewVertex(toPolyPoint(goal), e.origin)
	tempGraph := e.graph.ShallowClone()

	e.origin.Set(toPolyPoint(start))
	startCandidates := e.extremityNodeSet(nil)
	startCandidates[poly.Node(goalV)] = struct{}{}
	startVisible := poly.FindVisible(startCandidates, e.edgeSet())
	for _, vp := range startVisible {
		if vp.Node == poly.Node(goalV) {
			return []Point{start, goal}, vp.Dist, nil
		}
		tempGraph.AddDirectedEdge(vp.Node, poly.Node(startV), vp.Dist)
	}

	e.origin.Set(toPolyPoint(goal))
	goalCandidates := e.extremityNodeSet(nil)
	goalVisible := poly.FindVisible(goalCandidates, e.edgeSet())
	pairs := make(map[poly.Node]float64, len(goalVisible))
	for _, vp := range goalVisible {
		pairs[vp.Node] = vp.Dist
	}
	tempGraph.AddMultipleDirectedEdges(poly.Node(goalV), pairs)

	heuristic := func(a, b poly.Node) float64 {
		pa, pb := a.Coordinates(), b.Coordinates()
		return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
	}

	// Run goal -> start: every edge added above to reach startV is directed
	// into it, so a search starting at startV would have nowhere to go.
	// Running the search in reverse and reversing the result exploits the
	// one-way edges fully, per spec section 4.7.
	nodes, dist, ok := graph.ModifiedAStar[poly.Node](tempGraph, poly.Node(goalV), poly.Node(startV), heuristic)
	if !ok {
		return nil, 0, ErrNoPath
	}

	path := make([]Point, len(nodes))
	for i, n := range nodes {
		path[len(nodes)-1-i] = Point(n.Coordinates())
	}
	return path, dist, nil
}
