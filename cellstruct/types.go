package cellstruct

import "github.com/katalvlaran/meshtopo/mesh"

// Corner names a 2x2 node window's logical position, and doubles as the
// index into a Compass.
type Corner int

const (
	NW Corner = iota
	NE
	SW
	SE
)

// Compass maps each logical corner to the slot ordinal (0..3) that corner's
// node occupies inside every cell of the region — invariant across the
// whole region once established at the seed window.
type Compass [4]int

// CellRegion is the structured cell sub-grid induced from a node region: a
// (RowFinish-RowStart) x (ColFinish-ColStart) matrix of cell ids, row-major,
// plus the compass that decodes any cell's node tuple back to logical
// corners.
type CellRegion struct {
	Cells                                [][]mesh.CellID
	Compass                              Compass
	RowStart, RowFinish, ColStart, ColFinish int
}

// Rows returns the number of cell rows in the region.
func (r *CellRegion) Rows() int { return len(r.Cells) }

// Cols returns the number of cell columns in the region.
func (r *CellRegion) Cols() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells[0])
}
