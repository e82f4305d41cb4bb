package edgestruct

import (
	"fmt"

	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/mesh"
)

// Induce derives the structured horizontal and vertical edge strips for
// region. If border shrinking consumes either strip entirely, Induce
// returns ErrEmptyStrip rather than a degenerate empty region,
// since a region with node structure but no interior edges at all in one
// direction indicates the caller picked too small a region to be useful.
func Induce(rel *mesh.Relations, region *detect.Region) (horizontal, vertical *EdgeRegion, err error) {
	edgeIndex := buildEdgeIndex(rel)
	borderSet := buildBorderSet(rel)

	horizontal, err = induceStrip(rel, region, Horizontal, edgeIndex, borderSet)
	if err != nil {
		return nil, nil, fmt.Errorf("edgestruct.Induce: horizontal strip: %w", err)
	}
	vertical, err = induceStrip(rel, region, Vertical, edgeIndex, borderSet)
	if err != nil {
		return nil, nil, fmt.Errorf("edgestruct.Induce: vertical strip: %w", err)
	}
	return horizontal, vertical, nil
}

// pairAt returns the (from, to) node pair the logical edge at node-grid
// position (r, c) connects, under direction dir: a pair of direction-keyed
// projection functions standing in for per-direction accessor subclasses.
func pairAt(region *detect.Region, dir Direction, r, c int) (mesh.NodeID, mesh.NodeID) {
	if dir == Horizontal {
		return region.At(r, c), region.At(r, c+1)
	}
	return region.At(r, c), region.At(r+1, c)
}

// induceStrip computes one direction's edge strip: start from the full
// candidate rectangle, shrink every boundary that carries a border edge,
// then fix a node-/cell-compass from the surviving seed edge and require
// every remaining edge in the strip to agree with it.
func induceStrip(rel *mesh.Relations, region *detect.Region, dir Direction, edgeIndex map[pairKey]mesh.EdgeID, borderSet map[pairKey]struct{}) (*EdgeRegion, error) {
	rows, cols := region.Rows(), region.Cols()

	var rowStart, rowFinish, colStart, colFinish int
	if dir == Horizontal {
		rowStart, rowFinish = 0, rows
		colStart, colFinish = 0, cols-1
	} else {
		rowStart, rowFinish = 0, rows-1
		colStart, colFinish = 0, cols
	}

	isBorder := func(r, c int) bool {
		a, b := pairAt(region, dir, r, c)
		_, ok := borderSet[normalize(a, b)]
		return ok
	}

	for {
		if rowStart >= rowFinish || colStart >= colFinish {
			return nil, ErrEmptyStrip
		}
		shrunk := false

		for c := colStart; c < colFinish; c++ {
			if isBorder(rowStart, c) {
				rowStart++
				shrunk = true
				break
			}
		}
		if shrunk {
			continue
		}
		if rowFinish-1 > rowStart {
			for c := colStart; c < colFinish; c++ {
				if isBorder(rowFinish-1, c) {
					rowFinish--
					shrunk = true
					break
				}
			}
			if shrunk {
				continue
			}
		}
		for r := rowStart; r < rowFinish; r++ {
			if isBorder(r, colStart) {
				colStart++
				shrunk = true
				break
			}
		}
		if shrunk {
			continue
		}
		if colFinish-1 > colStart {
			for r := rowStart; r < rowFinish; r++ {
				if isBorder(r, colFinish-1) {
					colFinish--
					shrunk = true
					break
				}
			}
			if shrunk {
				continue
			}
		}
		break
	}

	fromN, toN := pairAt(region, dir, rowStart, colStart)
	seedEdge, ok := edgeIndex[normalize(fromN, toN)]
	if !ok {
		return nil, fmt.Errorf("%w: seed edge (%d,%d)", ErrNotInternal, rowStart, colStart)
	}
	nodeCompass := nodeCompassOf(rel.EdgeNodes(seedEdge), fromN)
	cellCompass := cellCompassOf(rel.EdgeCells(seedEdge))

	edges := make([][]mesh.EdgeID, 0, rowFinish-rowStart)
	for r := rowStart; r < rowFinish; r++ {
		row := make([]mesh.EdgeID, 0, colFinish-colStart)
		for c := colStart; c < colFinish; c++ {
			a, b := pairAt(region, dir, r, c)
			eid, ok := edgeIndex[normalize(a, b)]
			if !ok {
				return nil, fmt.Errorf("%w: edge (%d,%d)", ErrNotInternal, r, c)
			}
			if nodeCompassOf(rel.EdgeNodes(eid), a) != nodeCompass {
				return nil, fmt.Errorf("%w: node compass at (%d,%d)", ErrCompassMismatch, r, c)
			}
			if cellCompassOf(rel.EdgeCells(eid)) != cellCompass {
				return nil, fmt.Errorf("%w: cell compass at (%d,%d)", ErrCompassMismatch, r, c)
			}
			row = append(row, eid)
		}
		edges = append(edges, row)
	}

	return &EdgeRegion{
		Dir:         dir,
		Edges:       edges,
		NodeCompass: nodeCompass,
		CellCompass: cellCompass,
		RowStart:    rowStart,
		RowFinish:   rowFinish,
		ColStart:    colStart,
		ColFinish:   colFinish,
	}, nil
}

// nodeCompassOf reports which slot of nodes' stored pair the from endpoint
// occupies: [0,1] if from is nodes[0], [1,0] if from is nodes[1].
func nodeCompassOf(nodes mesh.EdgeNodes, from mesh.NodeID) [2]int {
	if nodes[0] == from {
		return [2]int{0, 1}
	}
	return [2]int{1, 0}
}

// cellCompassOf reports whether cells' stored pair is already in ascending
// id order ([0,1]) or needs swapping ([1,0]).
func cellCompassOf(cells mesh.EdgeCells) [2]int {
	if cells[0] <= cells[1] {
		return [2]int{0, 1}
	}
	return [2]int{1, 0}
}
