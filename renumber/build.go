package renumber

import (
	"fmt"

	"github.com/katalvlaran/meshtopo/cellstruct"
	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/edgestruct"
	"github.com/katalvlaran/meshtopo/mesh"
)

// Build derives the full Renumbering from one detection pass: nodeRegions
// is the detector's output in detection order; cellRegions, hEdgeRegions
// and vEdgeRegions are parallel to nodeRegions (nil at index i means
// induction was not attempted or failed for nodeRegions[i]).
func Build(rel *mesh.Relations, nodeRegions []*detect.Region, cellRegions []*cellstruct.CellRegion, hEdgeRegions, vEdgeRegions []*edgestruct.EdgeRegion) (*Renumbering, error) {
	if len(cellRegions) != len(nodeRegions) || len(hEdgeRegions) != len(nodeRegions) || len(vEdgeRegions) != len(nodeRegions) {
		return nil, fmt.Errorf("renumber.Build: region slice length mismatch")
	}

	out := &Renumbering{}

	nodeAssigned := make([]bool, rel.NumNodes())
	nodeOldToNew := make([]int, rel.NumNodes())
	next := 0
	for _, region := range nodeRegions {
		offset := next
		rows, cols := region.Rows(), region.Cols()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				old := int(region.At(r, c))
				if nodeAssigned[old] {
					return nil, fmt.Errorf("renumber.Build: node %d: %w", old, ErrDuplicateAssignment)
				}
				nodeAssigned[old] = true
				nodeOldToNew[old] = next
				next++
			}
		}
		out.NodeRegions = append(out.NodeRegions, NodeRegionPlacement{Region: region, Offset: offset})
	}
	for old := 0; old < rel.NumNodes(); old++ {
		if !nodeAssigned[old] {
			nodeOldToNew[old] = next
			next++
		}
	}
	nodeMap, err := finishMapping(nodeOldToNew, rel.NumNodes())
	if err != nil {
		return nil, fmt.Errorf("renumber.Build: nodes: %w", err)
	}
	out.Nodes = nodeMap

	cellAssigned := make([]bool, rel.NumCells())
	cellOldToNew := make([]int, rel.NumCells())
	next = 0
	for _, cr := range cellRegions {
		if cr == nil {
			continue
		}
		offset := next
		for r := 0; r < cr.Rows(); r++ {
			for c := 0; c < cr.Cols(); c++ {
				old := int(cr.Cells[r][c])
				if cellAssigned[old] {
					return nil, fmt.Errorf("renumber.Build: cell %d: %w", old, ErrDuplicateAssignment)
				}
				cellAssigned[old] = true
				cellOldToNew[old] = next
				next++
			}
		}
		out.CellRegions = append(out.CellRegions, CellRegionPlacement{Region: cr, Offset: offset})
	}
	for old := 0; old < rel.NumCells(); old++ {
		if !cellAssigned[old] {
			cellOldToNew[old] = next
			next++
		}
	}
	cellMap, err := finishMapping(cellOldToNew, rel.NumCells())
	if err != nil {
		return nil, fmt.Errorf("renumber.Build: cells: %w", err)
	}
	out.Cells = cellMap

	edgeAssigned := make([]bool, rel.NumEdges())
	edgeOldToNew := make([]int, rel.NumEdges())
	next = 0
	out.HEdgeRegions = make([]EdgeRegionPlacement, len(nodeRegions))
	out.VEdgeRegions = make([]EdgeRegionPlacement, len(nodeRegions))
	assignStrip := func(strip *edgestruct.EdgeRegion) (EdgeRegionPlacement, error) {
		if strip == nil {
			return EdgeRegionPlacement{}, nil
		}
		offset := next
		for r := 0; r < strip.Rows(); r++ {
			for c := 0; c < strip.Cols(); c++ {
				old := int(strip.At(r, c))
				if edgeAssigned[old] {
					return EdgeRegionPlacement{}, fmt.Errorf("edge %d: %w", old, ErrDuplicateAssignment)
				}
				edgeAssigned[old] = true
				edgeOldToNew[old] = next
				next++
			}
		}
		return EdgeRegionPlacement{Region: strip, Offset: offset}, nil
	}
	for i := range nodeRegions {
		hp, err := assignStrip(hEdgeRegions[i])
		if err != nil {
			return nil, fmt.Errorf("renumber.Build: %w", err)
		}
		out.HEdgeRegions[i] = hp
		vp, err := assignStrip(vEdgeRegions[i])
		if err != nil {
			return nil, fmt.Errorf("renumber.Build: %w", err)
		}
		out.VEdgeRegions[i] = vp
	}
	for old := 0; old < rel.NumEdges(); old++ {
		if !edgeAssigned[old] {
			edgeOldToNew[old] = next
			next++
		}
	}
	edgeMap, err := finishMapping(edgeOldToNew, rel.NumEdges())
	if err != nil {
		return nil, fmt.Errorf("renumber.Build: edges: %w", err)
	}
	out.Edges = edgeMap

	return out, nil
}

// finishMapping validates oldToNew is a complete bijection over
// [0, n) and derives the inverse.
func finishMapping(oldToNew []int, n int) (Mapping, error) {
	if len(oldToNew) != n {
		return Mapping{}, ErrIncompleteBijection
	}
	newToOld := make([]int, n)
	seen := make([]bool, n)
	for old, nw := range oldToNew {
		if nw < 0 || nw >= n || seen[nw] {
			return Mapping{}, ErrIncompleteBijection
		}
		seen[nw] = true
		newToOld[nw] = old
	}
	return Mapping{OldToNew: oldToNew, NewToOld: newToOld}, nil
}
