package polyvis

import "github.com/nav2d/polyvis/internal/poly"

func toPolyPoint(p Point) poly.Point {
	return poly.Point{X: p.X, Y: p.Y}
}

func toPolyPoints(ps []Point) []poly.Point {
	out := make([]poly.Point, len(ps))
	for i, p := range ps {
		out[i] = toPolyPoint(p)
	}
	return out
}
