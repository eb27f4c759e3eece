package poly

import "math"

// VisiblePair is one result of FindVisible: a candidate node found visible
// from the query origin, and its distance to it.
type VisiblePair struct {
	Node Node
	Dist float64
}

// FindVisible implements the set-elimination visibility algorithm of spec
// section 4.4. The environment must already have been translated to the
// query origin (every node's Translated/Distance/Angle are relative to it).
//
// candidates is consumed: FindVisible both reads and mutates it, eliminating
// occluded vertices as it goes, exactly like the reference algorithm's
// vertex_candidates set. edges is likewise drained as it is checked. Callers
// must pass sets they do not need afterwards.
func FindVisible(candidates map[Node]struct{}, edges map[*Edge]struct{}) []VisiblePair {
	if len(candidates) == 0 {
		return nil
	}

	priority := map[*Edge]struct{}{}

	for len(candidates) > 0 && len(edges) > 0 {
		e := popEdge(priority, edges)

		toCheck := make(map[Node]struct{}, len(candidates))
		for c := range candidates {
			if c == Node(e.V1) || c == Node(e.V2) {
				continue
			}
			toCheck[c] = struct{}{}
		}
		if len(toCheck) == 0 {
			continue
		}

		v1, v2, rangeLess180 := directionalPair(e, candidates, edges, priority)

		phi1, ok1 := v1.Angle()
		phi2, ok2 := v2.Angle()
		if !ok1 || !ok2 {
			// v1 or v2 coincides with the origin itself; nothing has a
			// well-defined angular position relative to it to compare
			// against, so this edge cannot eliminate anyone.
			continue
		}
		restrictToRange(toCheck, phi1, phi2, rangeLess180)
		if len(toCheck) == 0 {
			continue
		}

		dMax := math.Max(v1.Distance(), v2.Distance())
		dMin := math.Min(v1.Distance(), v2.Distance())
		behind := map[Node]struct{}{}
		front := map[Node]struct{}{}
		for c := range toCheck {
			d := c.Distance()
			switch {
			case d > dMax:
				behind[c] = struct{}{}
				delete(toCheck, c)
			case d < dMin:
				front[c] = struct{}{}
				delete(toCheck, c)
			}
		}

		if len(toCheck) > 0 {
			p1, p2 := v1.Translated(), v2.Translated()
			for c := range toCheck {
				if LiesBehind(p1, p2, c.Translated()) {
					behind[c] = struct{}{}
				} else {
					front[c] = struct{}{}
				}
			}
		}

		for c := range behind {
			delete(candidates, c)
		}
		for c := range front {
			if pv, ok := c.(*PolygonVertex); ok {
				promoteIfPending(priority, edges, pv.edge1)
				promoteIfPending(priority, edges, pv.edge2)
			}
		}
	}

	out := make([]VisiblePair, 0, len(candidates))
	for c := range candidates {
		out = append(out, VisiblePair{Node: c, Dist: c.Distance()})
	}
	return out
}

// directionalPair resolves step 3 of the algorithm: the ordinary case uses
// the edge's own two endpoints; the degenerate case (the query origin
// coincides with one endpoint) substitutes that endpoint's two polygon
// neighbours and discards its other incident edge, since a zero-length
// visibility edge cannot be reported.
func directionalPair(e *Edge, candidates map[Node]struct{}, edges, priority map[*Edge]struct{}) (v1, v2 *PolygonVertex, rangeLess180 bool) {
	switch {
	case e.V1.Distance() == 0:
		delete(candidates, Node(e.V1))
		n1, n2 := e.V1.Neighbours()
		other := e.V1.edge1
		delete(edges, other)
		delete(priority, other)
		return n1, n2, e.V1.IsExtremity()
	case e.V2.Distance() == 0:
		delete(candidates, Node(e.V2))
		n1, n2 := e.V2.Neighbours()
		other := e.V2.edge2
		delete(edges, other)
		delete(priority, other)
		return n1, n2, e.V2.IsExtremity()
	default:
		return e.V1, e.V2, true
	}
}

// restrictToRange keeps in toCheck only the nodes whose angle falls inside
// the arc from phi1 to phi2 (see WithinRange); everything else is dropped
// from this edge's check -- not from the global candidate set, since a
// vertex outside an edge's angular range is simply not occluded by it and
// remains a candidate for later edges.
func restrictToRange(toCheck map[Node]struct{}, phi1, phi2 float64, lessThan180 bool) {
	keys := make([]Node, 0, len(toCheck))
	for c := range toCheck {
		keys = append(keys, c)
	}
	keep := WithinRange(phi1, phi2, keys, lessThan180)
	keepSet := make(map[Node]struct{}, len(keep))
	for _, c := range keep {
		keepSet[c] = struct{}{}
	}
	for c := range toCheck {
		if _, ok := keepSet[c]; !ok {
			delete(toCheck, c)
		}
	}
}

func promoteIfPending(priority, edges map[*Edge]struct{}, e *Edge) {
	if e == nil {
		return
	}
	if _, pending := edges[e]; pending {
		priority[e] = struct{}{}
	}
}

// popEdge removes and returns one edge from edges, preferring one from
// priority if available.
func popEdge(priority, edges map[*Edge]struct{}) *Edge {
	for e := range priority {
		delete(priority, e)
		delete(edges, e)
		return e
	}
	for e := range edges {
		delete(edges, e)
		return e
	}
	return nil
}
