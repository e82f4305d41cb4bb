package cellstruct

import (
	"fmt"

	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/mesh"
)

// cellSlot records that a node occupies slot Slot inside Cell's ordered
// node tuple.
type cellSlot struct {
	Cell mesh.CellID
	Slot int
}

// nodeCellIndex is the inverse of cell_to_ord_nodes: for each node, every
// (cell, slot) pair it participates in. Built once per Induce call.
type nodeCellIndex map[mesh.NodeID][]cellSlot

func buildNodeCellIndex(rel *mesh.Relations) nodeCellIndex {
	idx := make(nodeCellIndex, rel.NumNodes())
	for c := 0; c < rel.NumCells(); c++ {
		nodes := rel.CellNodes(mesh.CellID(c))
		for slot, n := range nodes {
			idx[n] = append(idx[n], cellSlot{Cell: mesh.CellID(c), Slot: slot})
		}
	}
	return idx
}

// cellsOf returns the set of cells n participates in, regardless of slot.
func (idx nodeCellIndex) cellsOf(n mesh.NodeID) map[mesh.CellID]struct{} {
	out := make(map[mesh.CellID]struct{}, len(idx[n]))
	for _, cs := range idx[n] {
		out[cs.Cell] = struct{}{}
	}
	return out
}

// slotOf returns the slot n occupies inside cell c, if any.
func (idx nodeCellIndex) slotOf(n mesh.NodeID, c mesh.CellID) (int, bool) {
	for _, cs := range idx[n] {
		if cs.Cell == c {
			return cs.Slot, true
		}
	}
	return 0, false
}

// cellAtSlot returns the single cell in which n occupies exactly slot, if
// any. Used during propagation, where the compass already fixes which slot
// each corner is expected to hold.
func (idx nodeCellIndex) cellAtSlot(n mesh.NodeID, slot int) (mesh.CellID, bool) {
	for _, cs := range idx[n] {
		if cs.Slot == slot {
			return cs.Cell, true
		}
	}
	return 0, false
}

// commonCell intersects the four corners' candidate cell sets. It reports
// ErrWraparound if more than one cell is common to all four, and ok=false
// with no error if none is.
func commonCell(idx nodeCellIndex, corners [4]mesh.NodeID) (mesh.CellID, bool, error) {
	common := idx.cellsOf(corners[0])
	for _, n := range corners[1:] {
		next := idx.cellsOf(n)
		for c := range common {
			if _, ok := next[c]; !ok {
				delete(common, c)
			}
		}
	}
	switch len(common) {
	case 0:
		return 0, false, nil
	case 1:
		for c := range common {
			return c, true, nil
		}
	}
	return 0, false, ErrWraparound
}

// Induce derives the structured cell region for region.
func Induce(rel *mesh.Relations, region *detect.Region) (*CellRegion, error) {
	idx := buildNodeCellIndex(rel)
	rows, cols := region.Rows(), region.Cols()

	var seedCell mesh.CellID
	var seedR, seedC int
	var compass Compass
	found := false

	for r := 0; r < rows-1 && !found; r++ {
		for c := 0; c < cols-1; c++ {
			corners := windowCorners(region, r, c)
			cell, ok, err := commonCell(idx, corners)
			if err != nil {
				return nil, fmt.Errorf("cellstruct.Induce: window (%d,%d): %w", r, c, err)
			}
			if !ok {
				continue
			}
			slots := [4]int{}
			seen := map[int]bool{}
			distinct := true
			for i, n := range corners {
				slot, ok := idx.slotOf(n, cell)
				if !ok || seen[slot] {
					distinct = false
					break
				}
				seen[slot] = true
				slots[i] = slot
			}
			if !distinct {
				continue
			}
			seedCell, seedR, seedC = cell, r, c
			compass = Compass{slots[0], slots[1], slots[2], slots[3]}
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoCommonCell
	}

	out := &CellRegion{Compass: compass, RowStart: seedR, ColStart: seedC}

	// Step 3: propagate rightward along the seed row.
	colFinish := seedC + 1
	firstRow := []mesh.CellID{seedCell}
	for c := seedC + 1; c < cols-1; c++ {
		corners := windowCorners(region, seedR, c)
		cell, ok := resolveByCompass(idx, corners, compass)
		if !ok {
			break
		}
		firstRow = append(firstRow, cell)
		colFinish = c + 1
	}
	out.ColFinish = colFinish
	out.Cells = append(out.Cells, firstRow)

	// Step 4: propagate downward, one full row at a time; a row that fails
	// mid-construction is dropped in its entirety.
	rowFinish := seedR + 1
	for r := seedR + 1; r < rows-1; r++ {
		row := make([]mesh.CellID, 0, colFinish-seedC)
		ok := true
		for c := seedC; c < colFinish; c++ {
			corners := windowCorners(region, r, c)
			cell, got := resolveByCompass(idx, corners, compass)
			if !got {
				ok = false
				break
			}
			row = append(row, cell)
		}
		if !ok {
			break
		}
		out.Cells = append(out.Cells, row)
		rowFinish = r + 1
	}
	out.RowFinish = rowFinish

	return out, nil
}

// windowCorners reads off the NW, NE, SW, SE nodes of the 2x2 window at
// region logical position (r, c).
func windowCorners(region *detect.Region, r, c int) [4]mesh.NodeID {
	return [4]mesh.NodeID{
		region.At(r, c),     // NW
		region.At(r, c+1),   // NE
		region.At(r+1, c),   // SW
		region.At(r+1, c+1), // SE
	}
}

// resolveByCompass finds, for each corner, the cell in which it occupies
// the compass-fixed slot for that corner; it succeeds only if all four
// corners agree on the same cell.
func resolveByCompass(idx nodeCellIndex, corners [4]mesh.NodeID, compass Compass) (mesh.CellID, bool) {
	var candidate mesh.CellID
	for i, n := range corners {
		c, ok := idx.cellAtSlot(n, compass[i])
		if !ok {
			return 0, false
		}
		if i == 0 {
			candidate = c
		} else if c != candidate {
			return 0, false
		}
	}
	return candidate, true
}
