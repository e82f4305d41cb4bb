package meshio_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/meshtopo/internal/meshtest"
	"github.com/katalvlaran/meshtopo/mesh"
	"github.com/katalvlaran/meshtopo/meshio"
	"github.com/katalvlaran/meshtopo/orchestrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteRead_RoundTripsOriginalSections writes a full augmented archive
// and reads it back: since meshio.Read only parses the seven original
// sections, the result must equal the Input that went in, regardless of
// what renumbering/induction produced.
func TestWriteRead_RoundTripsOriginalSections(t *testing.T) {
	in := meshtest.NewGridInput(3, 4)
	rel, err := mesh.New(in)
	require.NoError(t, err)

	result, err := orchestrate.Run(rel, orchestrate.WithStartNode(meshtest.NodeAt(4, 1, 1)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "archive.mesh")
	require.NoError(t, meshio.Write(path, in, result.Renumbering, result.Applied))

	got, err := meshio.Read(path)
	require.NoError(t, err)

	assert.Equal(t, in.NodeToNode, got.NodeToNode)
	assert.Equal(t, in.CellToOrdNodes, got.CellToOrdNodes)
	assert.Equal(t, in.InedgeToNodes, got.InedgeToNodes)
	assert.Equal(t, in.InedgeToCells, got.InedgeToCells)
	assert.Equal(t, in.BorderedgeToNodes, got.BorderedgeToNodes)
	assert.Equal(t, in.BorderedgeToCell, got.BorderedgeToCell)
	assert.Equal(t, in.CoordData, got.CoordData)
}

// TestRead_MissingSectionFails confirms Read rejects an archive that is
// missing one of the seven required input sections, instead of silently
// defaulting it to empty.
func TestRead_MissingSectionFails(t *testing.T) {
	in := meshtest.NewGridInput(2, 2)
	rel, err := mesh.New(in)
	require.NoError(t, err)

	result, err := orchestrate.Run(rel)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "archive.mesh")
	require.NoError(t, meshio.Write(path, in, result.Renumbering, result.Applied))

	truncated := filepath.Join(t.TempDir(), "truncated.mesh")
	removeSection(t, path, truncated, "#coord_data")

	_, err = meshio.Read(truncated)
	require.Error(t, err)
	assert.ErrorIs(t, err, meshio.ErrMissingSection)
}

// TestRead_TruncatedRecordFails confirms a record with the wrong field
// count fails to parse instead of silently truncating.
func TestRead_TruncatedRecordFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mesh")
	writeRaw(t, path, "#node_to_node\n1\n#cell_to_ord_nodes\n0 1 2\n#inedge_to_nodes\n#inedge_to_cells\n#borderedge_to_nodes\n#borderedge_to_cell\n#coord_data\n0 0\n")

	_, err := meshio.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, meshio.ErrTruncatedRecord)
}
