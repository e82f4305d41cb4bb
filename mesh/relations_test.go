package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/meshtopo/internal/meshtest"
	"github.com/katalvlaran/meshtopo/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ValidGridSucceeds confirms a well-formed lattice input validates
// cleanly and its accessors agree with the input that built it.
func TestNew_ValidGridSucceeds(t *testing.T) {
	in := meshtest.NewGridInput(3, 4)
	rel, err := mesh.New(in)
	require.NoError(t, err)

	assert.Equal(t, 12, rel.NumNodes())
	assert.Equal(t, 6, rel.NumCells())
	assert.Equal(t, len(in.InedgeToNodes), rel.NumEdges())
	assert.Equal(t, len(in.BorderedgeToNodes), rel.NumBorderEdges())

	n := meshtest.NodeAt(4, 1, 1)
	assert.Equal(t, 4, rel.Degree(n))
	assert.True(t, rel.IsNeighbor(n, meshtest.NodeAt(4, 1, 2)))
	assert.False(t, rel.IsNeighbor(n, meshtest.NodeAt(4, 2, 2)))
}

// TestNew_RejectsAsymmetricAdjacency confirms New rejects a node_to_node
// where b is in adj(a) but a is not in adj(b).
func TestNew_RejectsAsymmetricAdjacency(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	delete(in.NodeToNode[0], mesh.NodeID(1))

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrAsymmetricAdjacency)
}

// TestNew_RejectsNodeOutOfRange confirms an adjacency entry referencing a
// node id outside [0, NumNodes) is rejected rather than silently ignored.
func TestNew_RejectsNodeOutOfRange(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	in.NodeToNode[0][mesh.NodeID(99)] = struct{}{}

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrNodeOutOfRange)
}

// TestNew_RejectsCoordCountMismatch confirms coord_data must have exactly
// one entry per node.
func TestNew_RejectsCoordCountMismatch(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	in.CoordData = in.CoordData[:len(in.CoordData)-1]

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrCoordCountMismatch)
}

// TestNew_RejectsBadCellArity confirms a cell without 4 distinct nodes is
// rejected, e.g. a degenerate cell repeating one corner.
func TestNew_RejectsBadCellArity(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	in.CellToOrdNodes[0][3] = in.CellToOrdNodes[0][0]

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrBadCellArity)
}

// TestNew_RejectsEdgeEndpointsNotAdjacent confirms an internal edge whose
// node pair does not correspond to a true node_to_node adjacency is
// rejected, rather than trusted at face value.
func TestNew_RejectsEdgeEndpointsNotAdjacent(t *testing.T) {
	in := meshtest.NewGridInput(3, 3)
	// (0,0) and (2,2) are not adjacent in a 3x3 grid.
	in.InedgeToNodes[0] = mesh.EdgeNodes{meshtest.NodeAt(3, 0, 0), meshtest.NodeAt(3, 2, 2)}

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrBadEdgeNodes)
}

// TestNew_RejectsInternalEdgeWithOneCell confirms an internal edge must be
// bordered by two distinct cells (that's what separates it from a border
// edge in the first place).
func TestNew_RejectsInternalEdgeWithOneCell(t *testing.T) {
	in := meshtest.NewGridInput(3, 3)
	c := in.InedgeToCells[0][0]
	in.InedgeToCells[0] = mesh.EdgeCells{c, c}

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrBadEdgeCellCount)
}

// TestNew_RejectsCellOutOfRange confirms a border edge referencing a
// nonexistent cell id is rejected.
func TestNew_RejectsCellOutOfRange(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	require.NotEmpty(t, in.BorderedgeToCell)
	in.BorderedgeToCell[0] = mesh.CellID(len(in.CellToOrdNodes))

	_, err := mesh.New(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrCellOutOfRange)
}

// TestNeighbors_DeterministicByDefault confirms Neighbors returns ascending
// NodeID order when no shuffle option is set, and that repeated calls agree.
func TestNeighbors_DeterministicByDefault(t *testing.T) {
	rel := meshtest.NewGrid(3, 3)
	n := meshtest.NodeAt(3, 1, 1)

	first := rel.Neighbors(n)
	second := rel.Neighbors(n)
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1], first[i])
	}
}

// TestNeighbors_ShuffledOptionKeepsNeighbourSet confirms that with
// WithShuffledAdjacency, whose order is not guaranteed to agree across
// calls, Neighbors still returns exactly the true neighbour set. Since a
// shuffle could coincidentally reproduce the same order, order is not
// asserted.
func TestNeighbors_ShuffledOptionKeepsNeighbourSet(t *testing.T) {
	in := meshtest.NewGridInput(4, 4)
	rel, err := mesh.New(in, mesh.WithShuffledAdjacency(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	n := meshtest.NodeAt(4, 1, 1)
	want := []mesh.NodeID{
		meshtest.NodeAt(4, 0, 1), meshtest.NodeAt(4, 1, 0),
		meshtest.NodeAt(4, 1, 2), meshtest.NodeAt(4, 2, 1),
	}
	got := rel.Neighbors(n)
	assert.ElementsMatch(t, want, got)
}

// TestAllNodes_AscendingAndComplete confirms AllNodes enumerates every node
// id exactly once, in ascending order.
func TestAllNodes_AscendingAndComplete(t *testing.T) {
	rel := meshtest.NewGrid(2, 5)
	all := rel.AllNodes()
	require.Len(t, all, rel.NumNodes())
	for i, id := range all {
		assert.Equal(t, mesh.NodeID(i), id)
	}
}

// TestCoord_MatchesInput confirms Coord returns the coordinate payload as
// given, untouched by validation.
func TestCoord_MatchesInput(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	rel, err := mesh.New(in)
	require.NoError(t, err)

	for n, want := range in.CoordData {
		assert.Equal(t, want, rel.Coord(mesh.NodeID(n)))
	}
}
