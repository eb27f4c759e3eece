package poly

import (
	"math"

	"github.com/fzipp/geom"
)

// PseudoAngle maps a translated (origin-relative) vector to a pseudo-angle
// phi in [0, 4), a cheap surrogate for atan2 that is strictly monotone in
// the true angle and increases counter-clockwise. The second return value
// is false when v is the zero vector, i.e. the point coincides with the
// origin and has no defined angular position.
func PseudoAngle(v geom.Vec2) (phi float64, ok bool) {
	x, y := float64(v.X), float64(v.Y)
	if x == 0 && y == 0 {
		return 0, false
	}
	a := x / (math.Abs(x) + math.Abs(y))
	switch {
	case x >= 0 && y >= 0: // quadrant I
		return 1 - a, true
	case x < 0 && y >= 0: // quadrant II
		return 1 + (-a), true
	case x < 0 && y < 0: // quadrant III
		return 3 - a, true
	default: // quadrant IV: x >= 0, y < 0
		return 3 + (-a), true
	}
}

// RotateHalf rotates a pseudo-angle by 180 degrees (mod 4).
func RotateHalf(phi float64) float64 {
	return mod4(phi + 2)
}

func mod4(phi float64) float64 {
	m := math.Mod(phi, 4)
	if m < 0 {
		m += 4
	}
	return m
}

// ccwDist is the counter-clockwise angular distance from a to b, in [0, 4).
func ccwDist(a, b float64) float64 {
	return mod4(b - a)
}

// WithinRange returns the subset of candidates whose pseudo-angle lies
// strictly between phi1 and phi2 going counter-clockwise.
//
// When lessThan180 is true, "between" means inside whichever of the two
// complementary arcs bounded by phi1 and phi2 is shorter than 2 (180
// degrees) -- the arc is picked automatically, the caller does not need to
// know in advance which of phi1, phi2 starts it. When lessThan180 is false
// the forward arc phi1 -> phi2 (as given) is used, whatever its length;
// FindVisible passes false when the query origin coincides with a polygon
// vertex that is not an extremity.
//
// Candidates with an undefined angle (same position as the query origin)
// never match and are silently skipped.
func WithinRange(phi1, phi2 float64, candidates []Node, lessThan180 bool) []Node {
	lo, span := phi1, ccwDist(phi1, phi2)
	if lessThan180 && span > 2 {
		lo, span = phi2, 4-span
	}
	var out []Node
	for _, c := range candidates {
		a, ok := c.Angle()
		if !ok {
			continue
		}
		d := ccwDist(lo, a)
		if d > 0 && d < span {
			out = append(out, c)
		}
	}
	return out
}
