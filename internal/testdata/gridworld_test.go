package testdata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nav2d/polyvis/internal/testdata"
)

func TestLoadRasterize(t *testing.T) {
	f, err := testdata.Load("gridworld.yaml")
	require.NoError(t, err)
	require.Equal(t, 19, f.Width)
	require.Equal(t, 10, f.Height)
	require.NotEmpty(t, f.Obstacles)

	boundary, holes := f.Rasterize()
	require.Len(t, boundary, 4)
	require.NotEmpty(t, holes)

	var total int
	for _, h := range holes {
		require.GreaterOrEqual(t, len(h), 4, "every hole is at least a unit square")
		total += len(h)
	}
	require.LessOrEqual(t, total, len(f.Obstacles)*4,
		"adjacent obstacle cells share edges, which cancel out of the merged outlines")
	require.Less(t, len(holes), len(f.Obstacles),
		"several obstacle cells are adjacent and merge into fewer hole polygons")
}
