// Package graph implements the directed, Euclidean-heuristic weighted graph
// the visibility pathfinder builds during preprocessing, plus the modified
// A* search run per query. It is deliberately generic over the node key
// type so the geometry package (poly) does not need to depend on it.
package graph

// Graph is a directed weighted graph specialized for the pathfinder: every
// node maps to the set of (neighbour, distance) pairs it has a directed edge
// to. Weights are expected to be non-negative Euclidean distances, but the
// graph itself does not enforce that; it only stores what it is given.
//
// Unlike the teacher's unweighted graph (which recomputes edge cost from
// node coordinates via a caller-supplied distance function), this graph
// stores weights explicitly: the Property One pruning step removes specific
// weighted undirected edges that an earlier step added, which requires the
// graph to know what it is removing independent of any coordinate lookup.
type Graph[K comparable] struct {
	adj map[K]map[K]float64
}

// New returns an empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{adj: make(map[K]map[K]float64)}
}

func (g *Graph[K]) ensure(k K) map[K]float64 {
	m, ok := g.adj[k]
	if !ok {
		m = make(map[K]float64)
		g.adj[k] = m
	}
	return m
}

// AddDirectedEdge adds a one-way edge u -> v with the given weight,
// overwriting any existing weight for that edge.
func (g *Graph[K]) AddDirectedEdge(u, v K, weight float64) {
	g.ensure(u)[v] = weight
	g.ensure(v) // v must also be a known node, even with no outgoing edges
}

// AddMultipleDirectedEdges adds edges u -> v for every (v, weight) pair.
func (g *Graph[K]) AddMultipleDirectedEdges(u K, pairs map[K]float64) {
	for v, w := range pairs {
		g.AddDirectedEdge(u, v, w)
	}
}

// AddUndirectedEdge adds edges in both directions with the same weight.
func (g *Graph[K]) AddUndirectedEdge(u, v K, weight float64) {
	g.AddDirectedEdge(u, v, weight)
	g.AddDirectedEdge(v, u, weight)
}

// AddMultipleUndirectedEdges adds an undirected edge between u and every
// node in pairs, each with its given weight.
func (g *Graph[K]) AddMultipleUndirectedEdges(u K, pairs map[K]float64) {
	for v, w := range pairs {
		g.AddUndirectedEdge(u, v, w)
	}
}

// RemoveMultipleUndirectedEdges removes any edge between u and each node in
// vs, in both directions. Removing an edge that does not exist is a no-op.
func (g *Graph[K]) RemoveMultipleUndirectedEdges(u K, vs []K) {
	for _, v := range vs {
		if adj, ok := g.adj[u]; ok {
			delete(adj, v)
		}
		if adj, ok := g.adj[v]; ok {
			delete(adj, u)
		}
	}
}

// NeighboursOf returns the nodes u has a directed edge to, with their
// weights.
func (g *Graph[K]) NeighboursOf(u K) map[K]float64 {
	return g.adj[u]
}

// Neighbours returns just the neighbour keys of u, satisfying the Graph
// interface github.com/fzipp/astar.FindPath expects of its graph argument.
func (g *Graph[K]) Neighbours(u K) []K {
	adj := g.adj[u]
	out := make([]K, 0, len(adj))
	for v := range adj {
		out = append(out, v)
	}
	return out
}

// Weight returns the stored weight of edge u -> v and whether it exists.
func (g *Graph[K]) Weight(u, v K) (float64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// OutDegree returns the number of outgoing edges of u, used as the modified
// A* search's tie-break signal.
func (g *Graph[K]) OutDegree(u K) int {
	return len(g.adj[u])
}

// ShallowClone duplicates the outer node map and each node's adjacency set,
// so that mutating the clone (adding or removing edges) never affects g.
// The weights themselves are immutable floats and are shared by value, so
// this is cheap: it is a full duplicate of the map structure, not of any
// larger owned data.
func (g *Graph[K]) ShallowClone() *Graph[K] {
	c := New[K]()
	for k, adj := range g.adj {
		cp := make(map[K]float64, len(adj))
		for v, w := range adj {
			cp[v] = w
		}
		c.adj[k] = cp
	}
	return c
}
