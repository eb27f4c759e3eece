package polyvis

import "math"

// rect is an axis-aligned bounding box, used to cheaply reject query points
// that cannot possibly lie within the map before running the full
// ray-casting point-in-polygon test. Adapted from the teacher's spatial
// index (index.go): that file's quadTree supported arbitrary point-set
// range queries, which nothing here needs -- the only spatial query this
// pathfinder ever runs is "is this one point inside the map", so the
// quadTree itself was dropped (see DESIGN.md) and only the bounding
// rectangle survives, repurposed as Environment's fast-reject.
type rect struct {
	min, max Point
}

func (r rect) contains(p Point) bool {
	return p.X >= r.min.X && p.X <= r.max.X && p.Y >= r.min.Y && p.Y <= r.max.Y
}

// boundingRect returns the smallest axis-aligned rectangle containing every
// vertex of every given polygon.
func boundingRect(polygons [][]Point) rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly {
			if p.X < minX {
				minX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if minX == math.Inf(1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	return rect{min: Point{minX, minY}, max: Point{maxX, maxY}}
}
