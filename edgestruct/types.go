package edgestruct

import "github.com/katalvlaran/meshtopo/mesh"

// Direction distinguishes the two strip orientations an edge region can
// take: horizontal strips connect column-adjacent nodes within a row,
// vertical strips connect row-adjacent nodes within a column.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// EdgeRegion is the structured edge strip induced in one direction: a
// RowFinish-RowStart x ColFinish-ColStart matrix of internal edge ids,
// row-major, bounded (in node-grid coordinates) by RowStart/RowFinish and
// ColStart/ColFinish, plus the node- and cell-compass every edge in the
// strip was validated to share.
type EdgeRegion struct {
	Dir         Direction
	Edges       [][]mesh.EdgeID
	NodeCompass [2]int
	CellCompass [2]int

	// RowStart/RowFinish/ColStart/ColFinish bound the strip in the node
	// region's own (row, col) coordinate space, not an edge-local one: for
	// a horizontal strip at node row r, edge (r, c) connects
	// region.At(r, c) to region.At(r, c+1); for a vertical strip, edge
	// (r, c) connects region.At(r, c) to region.At(r+1, c).
	RowStart, RowFinish, ColStart, ColFinish int
}

// Rows returns the number of edge rows in the strip.
func (e *EdgeRegion) Rows() int { return len(e.Edges) }

// Cols returns the number of edge columns in the strip.
func (e *EdgeRegion) Cols() int {
	if len(e.Edges) == 0 {
		return 0
	}
	return len(e.Edges[0])
}

// At returns the edge id at strip-local (row, col).
func (e *EdgeRegion) At(row, col int) mesh.EdgeID { return e.Edges[row][col] }
