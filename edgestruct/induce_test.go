package edgestruct_test

import (
	"testing"

	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/edgestruct"
	"github.com/katalvlaran/meshtopo/internal/meshtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInduce_InteriorRegion_NoShrink detects a 3x4 node sub-region well
// inside a padded 9x9 lattice, so none of its bordering edges touch the
// lattice's true perimeter. Every horizontal/vertical edge in the strip's
// full candidate rectangle must then resolve as internal, leaving the
// strip exactly as large as the candidate: a 3x3 horizontal strip and a
// 2x4 vertical strip, matching a pure rectangular grid's counts
// (rows x (cols-1) and (rows-1) x cols with nothing trimmed).
func TestInduce_InteriorRegion_NoShrink(t *testing.T) {
	rel := meshtest.NewGrid(9, 9)
	d := detect.New(rel, nil)

	region, err := d.DetectRegionFrom(meshtest.NodeAt(9, 4, 4), 3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, region.Rows())
	require.Equal(t, 4, region.Cols())

	h, v, err := edgestruct.Induce(rel, region)
	require.NoError(t, err)

	assert.Equal(t, edgestruct.Horizontal, h.Dir)
	assert.Equal(t, 3, h.Rows())
	assert.Equal(t, 3, h.Cols())
	assert.Equal(t, 0, h.RowStart)
	assert.Equal(t, 3, h.RowFinish)
	assert.Equal(t, 0, h.ColStart)
	assert.Equal(t, 3, h.ColFinish)

	assert.Equal(t, edgestruct.Vertical, v.Dir)
	assert.Equal(t, 2, v.Rows())
	assert.Equal(t, 4, v.Cols())
}

// TestInduce_FullGrid_ShrinksToInterior detects the entirety of a standalone
// 4x5 grid, whose outermost horizontal-edge rows and vertical-edge columns
// are genuine border edges (touching the true perimeter). Border-shrinking
// must strip exactly those, leaving a (rows-2) x (cols-1) horizontal strip
// and a (rows-1) x (cols-2) vertical strip.
func TestInduce_FullGrid_ShrinksToInterior(t *testing.T) {
	rel := meshtest.NewGrid(4, 5)
	d := detect.New(rel, nil)

	region, err := d.DetectRegionFrom(meshtest.NodeAt(5, 1, 1), 100, 100)
	require.NoError(t, err)
	require.Equal(t, 4, region.Rows())
	require.Equal(t, 5, region.Cols())

	h, v, err := edgestruct.Induce(rel, region)
	require.NoError(t, err)

	assert.Equal(t, 2, h.Rows()) // rows(4) - 2
	assert.Equal(t, 4, h.Cols()) // cols(5) - 1

	assert.Equal(t, 3, v.Rows()) // rows(4) - 1
	assert.Equal(t, 3, v.Cols()) // cols(5) - 2
}

// TestInduce_EveryEdgeIsDistinctAndCompassConsistent checks the two
// structural guarantees Induce is supposed to provide regardless of strip
// size: every edge id appears exactly once across the whole strip, and
// every edge's own node-/cell-compass agrees with the strip's recorded
// compass (otherwise Induce itself would have already failed).
func TestInduce_EveryEdgeIsDistinctAndCompassConsistent(t *testing.T) {
	rel := meshtest.NewGrid(6, 6)
	d := detect.New(rel, nil)

	region, err := d.DetectRegionFrom(meshtest.NodeAt(6, 2, 2), 100, 100)
	require.NoError(t, err)

	h, v, err := edgestruct.Induce(rel, region)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, strip := range []*edgestruct.EdgeRegion{h, v} {
		for r := 0; r < strip.Rows(); r++ {
			for c := 0; c < strip.Cols(); c++ {
				id := int(strip.At(r, c))
				assert.False(t, seen[id], "edge id %d appears in both strips", id)
				seen[id] = true
			}
		}
	}
}
