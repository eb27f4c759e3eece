package polyvis

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Environment's public operations. Use
// errors.Is to test for a specific kind; the wrapping errors returned by
// Store and FindShortestPath add coordinate/index detail via fmt.Errorf's
// %w verb, following the style of katalvlaran/lvlath's sentinel errors.
var (
	// ErrBadPolygon is returned by Store (with WithValidation) when a
	// polygon has fewer than three vertices, self-intersects, or does not
	// match the required winding order (boundary counter-clockwise, holes
	// clockwise).
	ErrBadPolygon = errors.New("polyvis: invalid polygon")

	// ErrOutOfMap is returned by FindShortestPath when start or goal does
	// not lie within the boundary polygon, or lies inside a hole.
	ErrOutOfMap = errors.New("polyvis: point lies outside the map")

	// ErrNoPath is returned by FindShortestPath when start and goal are
	// both valid map points but no path connects them (e.g. they lie in
	// disconnected regions).
	ErrNoPath = errors.New("polyvis: no path exists between start and goal")

	// ErrNotPrepared is returned by operations that require Prepare to have
	// run first and do not run it implicitly themselves.
	ErrNotPrepared = errors.New("polyvis: environment has not been prepared")

	// ErrNoPolygons is returned by operations that require Store to have
	// been called first.
	ErrNoPolygons = errors.New("polyvis: no polygons have been loaded")
)

func badPolygonf(kind string, index int, cause error) error {
	return fmt.Errorf("%s polygon #%d: %w: %w", kind, index, cause, ErrBadPolygon)
}

func outOfMapf(p Point) error {
	return fmt.Errorf("point %v: %w", p, ErrOutOfMap)
}
