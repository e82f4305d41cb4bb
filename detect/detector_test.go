package detect_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/internal/meshtest"
	"github.com/katalvlaran/meshtopo/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectRegionFrom_FullGrid grows a single region from an interior seed
// of a plain 3x4 grid and expects it to cover every node: a rectangular
// lattice with no holes and no boundary obstruction should detect as one
// maximal region equal to the whole grid.
func TestDetectRegionFrom_FullGrid(t *testing.T) {
	rel := meshtest.NewGrid(3, 4)
	d := detect.New(rel, nil)

	seed := meshtest.NodeAt(4, 1, 1) // an interior node (degree 4)
	region, err := d.DetectRegionFrom(seed, 100, 100)
	require.NoError(t, err)
	require.NotNil(t, region)

	assert.Equal(t, 3, region.Rows())
	assert.Equal(t, 4, region.Cols())

	seen := make(map[mesh.NodeID]bool)
	for r := 0; r < region.Rows(); r++ {
		for c := 0; c < region.Cols(); c++ {
			seen[region.At(r, c)] = true
		}
	}
	assert.Len(t, seen, 12)
	assert.Empty(t, d.NotVisited())
}

// TestDetectRegionFrom_AvoidsHole grows a region on a 5x5 grid with the
// centre cell (2,2) removed. The 4 nodes bordering that hole have degree 4
// still (node adjacency is untouched — only the cell is missing) but the
// edges around the hole are now border edges, which findQuadFromPoint's
// quad search (corner detection via shared-neighbour cardinality) will
// reject as soon as it tries to cross that gap. The detected region must
// therefore be no larger than a strip that avoids the hole, and some nodes
// must remain unvisited.
func TestDetectRegionFrom_AvoidsHole(t *testing.T) {
	rel := meshtest.NewGridHole(5, 5, 2, 2)
	d := detect.New(rel, nil)

	seed := meshtest.NodeAt(5, 1, 1) // interior, away enough from the hole to anchor a quad

	region, err := d.DetectRegionFrom(seed, 100, 100)
	require.NoError(t, err)
	require.NotNil(t, region)

	area := region.Rows() * region.Cols()
	assert.LessOrEqual(t, area, 25)
	assert.NotEmpty(t, d.NotVisited(), "hole should force a non-empty unstructured remainder")
}

// TestDetectRegionFrom_RollsBackOnFailure exercises the boundary-node case:
// seeding from a corner node (degree 2) must fail with ErrStructureFailure,
// and the failed attempt must leave every node unvisited behind (full
// transactional rollback, as if the call never happened).
func TestDetectRegionFrom_RollsBackOnFailure(t *testing.T) {
	rel := meshtest.NewGrid(4, 4)
	d := detect.New(rel, nil)

	corner := meshtest.NodeAt(4, 0, 0)
	_, err := d.DetectRegionFrom(corner, 100, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, detect.ErrStructureFailure)
	assert.Len(t, d.NotVisited(), rel.NumNodes())
}

// TestDetectRegions_TwoDisjointGridsShareOneNode builds two 4x4 grids
// touching at a single shared node and asks DetectRegions for at most 2
// regions. The grids' own interiors are each fully structured, so the
// detector should account for both without ever panicking or exceeding
// maxRegions, regardless of how the one node they share gets classified.
func TestDetectRegions_TwoDisjointGridsShareOneNode(t *testing.T) {
	rel, shared := meshtest.NewTwoGridsSharedNode(4)
	d := detect.New(rel, rand.New(rand.NewSource(1)))

	// Start from an interior node of the first grid so the first region
	// grows from well inside it.
	start := meshtest.NodeAt(4, 1, 1)
	regions := d.DetectRegions(start, 100, 100, 2, 4)

	require.LessOrEqual(t, len(regions), 2)
	require.NotEmpty(t, regions)

	totalArea := 0
	for _, region := range regions {
		totalArea += region.Rows() * region.Cols()
	}
	assert.LessOrEqual(t, totalArea, rel.NumNodes())
	assert.GreaterOrEqual(t, int(shared), 0) // shared id is well-formed regardless of grid side
}

// TestDetectRegions_StopsAtMaxRegions confirms the multi-region loop never
// returns more than maxRegions results even when plenty of unvisited nodes
// with valid structure remain.
func TestDetectRegions_StopsAtMaxRegions(t *testing.T) {
	rel := meshtest.NewGrid(6, 6)
	d := detect.New(rel, rand.New(rand.NewSource(7)))

	// A 3x3 cap on a 6x6 grid leaves most nodes unvisited after the first
	// region, which would normally justify a second attempt; maxRegions=1
	// must stop the loop there regardless.
	regions := d.DetectRegions(meshtest.NodeAt(6, 2, 2), 3, 3, 1, 10)
	require.Len(t, regions, 1)
	assert.NotEmpty(t, d.NotVisited())
}

// TestChooseSeed_DeterministicWithoutRNG checks that a nil-rng Detector
// always proposes the smallest-id candidate, making DetectRegions fully
// reproducible without a seed.
func TestChooseSeed_DeterministicWithoutRNG(t *testing.T) {
	rel := meshtest.NewGrid(3, 3)
	d := detect.New(rel, nil)

	regions := d.DetectRegions(meshtest.NodeAt(3, 1, 1), 100, 100, 5, 5)
	require.NotEmpty(t, regions)
	// With no rng, every subsequent seed choice (if any) would be the
	// smallest remaining id; for a full 3x3 grid with this seed, one region
	// should already cover everything.
	assert.Empty(t, d.NotVisited())
}
