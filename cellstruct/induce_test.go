package cellstruct_test

import (
	"testing"

	"github.com/katalvlaran/meshtopo/cellstruct"
	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/internal/meshtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInduce_FullGrid checks that a node region covering a plain 4x5 grid
// induces a cell region matching the fixture's own NW/NE/SW/SE node-slot
// ordering exactly: since meshtest.NewGrid stores every cell's nodes in
// that same order, the compass established from the seed window must come
// out as the identity {0,1,2,3}.
func TestInduce_FullGrid(t *testing.T) {
	rel := meshtest.NewGrid(4, 5)
	d := detect.New(rel, nil)
	region, err := d.DetectRegionFrom(meshtest.NodeAt(5, 1, 1), 100, 100)
	require.NoError(t, err)
	require.Equal(t, 4, region.Rows())
	require.Equal(t, 5, region.Cols())

	cr, err := cellstruct.Induce(rel, region)
	require.NoError(t, err)
	require.NotNil(t, cr)

	assert.Equal(t, cellstruct.Compass{0, 1, 2, 3}, cr.Compass)
	// A 4x5 node region has (4-1) x (5-1) = 3x4 cells.
	assert.Equal(t, 3, cr.Rows())
	assert.Equal(t, 4, cr.Cols())
	assert.Equal(t, 0, cr.RowStart)
	assert.Equal(t, 3, cr.RowFinish)
	assert.Equal(t, 0, cr.ColStart)
	assert.Equal(t, 4, cr.ColFinish)

	// Every cell id in the induced region must be distinct.
	seen := make(map[int]bool)
	for r := 0; r < cr.Rows(); r++ {
		for c := 0; c < cr.Cols(); c++ {
			id := int(cr.Cells[r][c])
			assert.False(t, seen[id], "cell id %d repeated in induced region", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 12)
}

// TestInduce_NoCellsAtAll exercises ErrNoCommonCell: a node region backed
// by a Relations with zero cells can never have an inducible cell
// structure, since no 2x2 window has any incident cell at all.
func TestInduce_NoCellsAtAll(t *testing.T) {
	rel, _ := meshtest.NewTwoGridsSharedNode(4)
	d := detect.New(rel, nil)
	region, err := d.DetectRegionFrom(meshtest.NodeAt(4, 1, 1), 100, 100)
	require.NoError(t, err)
	require.Equal(t, 0, rel.NumCells())

	_, err = cellstruct.Induce(rel, region)
	require.Error(t, err)
	assert.ErrorIs(t, err, cellstruct.ErrNoCommonCell)
}
