package graph

import "github.com/fzipp/astar"

// tieBreakEpsilon nudges the heuristic by a vanishingly small, out-degree
// proportional amount so that among several equally-short frontier nodes
// the search favours the one with fewer outgoing edges first. This mirrors
// the reference algorithm's documented (but not semantically required)
// tie-break of smaller g, then smaller out-degree: astar.FindPath exposes
// no explicit tie-break hook, so the bias is folded into the heuristic
// instead. It is kept far below any real distance in this domain so it
// never makes the heuristic overestimate in a way that would matter.
const tieBreakEpsilon = 1e-9

// ModifiedAStar runs A* search on g from start to goal, using heuristic as
// the (admissible, since it is Euclidean distance on an undirected metric)
// estimate of remaining distance. It reports ok = false if goal is
// unreachable from start.
//
// The search engine itself is github.com/fzipp/astar.FindPath; Graph
// already satisfies its Graph[K] interface via Neighbours.
func ModifiedAStar[K comparable](g *Graph[K], start, goal K, heuristic func(a, b K) float64) (path []K, distance float64, ok bool) {
	cost := func(a, b K) float64 {
		if w, found := g.Weight(a, b); found {
			return w
		}
		return heuristic(a, b)
	}
	biasedHeuristic := func(a, b K) float64 {
		return heuristic(a, b) + tieBreakEpsilon*float64(g.OutDegree(a))
	}

	nodes := astar.FindPath[K](g, start, goal, cost, biasedHeuristic)
	if len(nodes) == 0 {
		return nil, 0, false
	}
	return nodes, pathLength(g, nodes), true
}

func pathLength[K comparable](g *Graph[K], nodes []K) float64 {
	var total float64
	for i := 0; i+1 < len(nodes); i++ {
		w, _ := g.Weight(nodes[i], nodes[i+1])
		total += w
	}
	return total
}
