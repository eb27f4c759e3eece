// Package testdata loads the grid-world fixture used by the package-level
// end-to-end tests and rasterizes its obstacle cells into a boundary plus
// hole polygons. It mirrors the rasterization helper the reference
// implementation stubs out (`store_gridworld`, never implemented there
// because the original library excludes grid I/O from its own scope, same
// as this one) but is confined to test code: the core library never reads a
// grid, a file, or YAML.
package testdata

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nav2d/polyvis"
)

// Fixture is the parsed shape of a grid-world YAML file: an integer-cell
// grid of the given size, a list of obstacle cells, and the accept/reject
// query cases to run against it.
type Fixture struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Obstacles [][2]int   `yaml:"obstacles"`
	Accept    []Accept   `yaml:"accept"`
	Reject    []Reject   `yaml:"reject"`
}

// Accept is a query expected to succeed, with its expected result.
type Accept struct {
	Start    [2]float64   `yaml:"start"`
	Goal     [2]float64   `yaml:"goal"`
	Path     [][2]float64 `yaml:"path"`
	Distance float64      `yaml:"distance"`
}

// Reject is a query expected to fail with ErrOutOfMap.
type Reject struct {
	Start [2]float64 `yaml:"start"`
	Goal  [2]float64 `yaml:"goal"`
}

// Load reads and parses a grid-world fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Pt converts a [2]float64 fixture coordinate to a polyvis.Point.
func Pt(c [2]float64) polyvis.Point {
	return polyvis.Pt(c[0], c[1])
}

// Path converts a fixture path to a []polyvis.Point.
func Path(cs [][2]float64) []polyvis.Point {
	out := make([]polyvis.Point, len(cs))
	for i, c := range cs {
		out[i] = Pt(c)
	}
	return out
}

// Rasterize converts the fixture's obstacle cells into a boundary polygon
// (the full grid rectangle, wound counter-clockwise) and a set of hole
// polygons, one per 4-connected run of obstacle cells, each wound clockwise.
func (f *Fixture) Rasterize() (boundary []polyvis.Point, holes [][]polyvis.Point) {
	w, h := float64(f.Width), float64(f.Height)
	boundary = []polyvis.Point{
		polyvis.Pt(0, 0),
		polyvis.Pt(w, 0),
		polyvis.Pt(w, h),
		polyvis.Pt(0, h),
	}
	return boundary, mergeCells(f.Obstacles)
}

// mergeCells traces the outline of each 4-connected run of unit grid cells
// into a closed polygon. Each cell contributes its four unit edges, wound
// clockwise; an edge shared by two adjacent obstacle cells is internal and
// cancels out, leaving only the boundary edges of the union, which chain
// head-to-tail into one clockwise loop per connected region. This assumes
// the obstacle layout does not pinch two regions together at a single
// shared corner, which holds for this fixture's obstacle cells.
func mergeCells(cells [][2]int) [][]polyvis.Point {
	present := map[[2]polyvis.Point]bool{}
	toggle := func(a, b polyvis.Point) {
		rev := [2]polyvis.Point{b, a}
		if present[rev] {
			delete(present, rev)
			return
		}
		present[[2]polyvis.Point{a, b}] = true
	}
	for _, c := range cells {
		x, y := float64(c[0]), float64(c[1])
		p00 := polyvis.Pt(x, y)
		p01 := polyvis.Pt(x, y+1)
		p11 := polyvis.Pt(x+1, y+1)
		p10 := polyvis.Pt(x+1, y)
		// Clockwise winding per cell: (x,y) -> (x,y+1) -> (x+1,y+1) -> (x+1,y).
		toggle(p00, p01)
		toggle(p01, p11)
		toggle(p11, p10)
		toggle(p10, p00)
	}

	next := make(map[polyvis.Point]polyvis.Point, len(present))
	for e := range present {
		next[e[0]] = e[1]
	}

	var loops [][]polyvis.Point
	visited := map[polyvis.Point]bool{}
	for start := range next {
		if visited[start] {
			continue
		}
		var loop []polyvis.Point
		cur := start
		for !visited[cur] {
			visited[cur] = true
			loop = append(loop, cur)
			cur = next[cur]
		}
		loops = append(loops, loop)
	}
	return loops
}
