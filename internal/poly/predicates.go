package poly

import "github.com/fzipp/geom"

func cross(a, b geom.Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// LiesBehind decides, given that q, p1, p2 are all translated relative to
// the query origin (0,0) and that q's pseudo-angle lies strictly between
// those of p1 and p2, whether the ray from the origin through q intersects
// the segment p1-p2 strictly before reaching q.
//
// It finds the point s*q at which the ray meets the line through p1, p2,
// by solving the 2x2 linear system
//
//	s*q - t*(p2-p1) = p1
//
// for s (t, the position along the segment, is not needed: the angular
// precondition already guarantees the ray crosses the segment's span).
// q lies behind the segment exactly when that crossing happens closer to
// the origin than q itself, i.e. s < 1. A point exactly on the segment
// (s == 1) is treated as being in front, per the "in front" convention for
// boundary cases.
func LiesBehind(p1, p2, q geom.Vec2) bool {
	d := geom.Vec2{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	det := cross(d, q)
	if det == 0 {
		// p1-p2 is parallel to the ray towards q; with q strictly between
		// p1 and p2 angularly this should not happen for a non-degenerate
		// polygon. Treat as not occluding.
		return false
	}
	s := cross(d, p1) / det
	return s < 1
}

// InsidePolygon is a standard even-odd ray-casting point-in-polygon test.
// Points exactly on the boundary return borderValue instead of being
// resolved by the (numerically unstable) crossing count.
func InsidePolygon(x, y float64, vertices []Point, borderValue bool) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := vertices[i].X, vertices[i].Y
		xj, yj := vertices[j].X, vertices[j].Y
		if onSegment(x, y, xi, yi, xj, yj) {
			return borderValue
		}
		if (yi > y) != (yj > y) {
			xIntersect := xj + (y-yj)*(xi-xj)/(yi-yj)
			if x < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// onSegment reports whether (x, y) lies on the closed segment (xi,yi)-(xj,yj).
func onSegment(x, y, xi, yi, xj, yj float64) bool {
	crossVal := (x-xi)*(yj-yi) - (y-yi)*(xj-xi)
	if crossVal != 0 {
		return false
	}
	minX, maxX := xi, xj
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := yi, yj
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}
