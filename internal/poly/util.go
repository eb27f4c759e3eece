package poly

import "math"

func hypotF(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// cross2 is the 2-D scalar cross product of (b-a) and (c-b), i.e. the
// z-component of (b-a) x (c-b).
func cross2(a, b, c Point) float64 {
	ex, ey := b.X-a.X, b.Y-a.Y
	fx, fy := c.X-b.X, c.Y-b.Y
	return ex*fy - ey*fx
}
