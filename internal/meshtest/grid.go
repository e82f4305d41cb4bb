// Package meshtest builds small synthetic mesh.Relations fixtures shared
// across the detect/cellstruct/edgestruct/renumber test suites, so each
// package's tests don't have to hand-roll rectangular-lattice bookkeeping.
package meshtest

import "github.com/katalvlaran/meshtopo/mesh"

// NewGrid builds a rows x cols rectangular node lattice, no wraparound:
// node (r, c) has id r*cols+c and is adjacent to its in-range up/down/
// left/right neighbours only. Cells are the (rows-1) x (cols-1) quads
// between adjacent node rows/columns, in NW/NE/SW/SE slot order; an
// internal edge is any node-adjacency bordered by two cells, a border
// edge any bordered by exactly one. Requires rows >= 2 and cols >= 2.
func NewGrid(rows, cols int) *mesh.Relations {
	rel, err := mesh.New(NewGridInput(rows, cols))
	if err != nil {
		panic(err) // fixture construction is a test-suite bug, not a runtime condition
	}
	return rel
}

// NewGridInput builds the same lattice as NewGrid but returns the raw
// mesh.Input instead of a validated Relations, for tests (meshio's
// read/write round trip) that need the pre-validation archive shape.
func NewGridInput(rows, cols int) mesh.Input {
	nodeID := func(r, c int) mesh.NodeID { return mesh.NodeID(r*cols + c) }
	cellID := func(cr, cc int) mesh.CellID { return mesh.CellID(cr*(cols-1) + cc) }

	numNodes := rows * cols
	nodeAdj := make([]map[mesh.NodeID]struct{}, numNodes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nbrs := make(map[mesh.NodeID]struct{}, 4)
			if r > 0 {
				nbrs[nodeID(r-1, c)] = struct{}{}
			}
			if r < rows-1 {
				nbrs[nodeID(r+1, c)] = struct{}{}
			}
			if c > 0 {
				nbrs[nodeID(r, c-1)] = struct{}{}
			}
			if c < cols-1 {
				nbrs[nodeID(r, c+1)] = struct{}{}
			}
			nodeAdj[nodeID(r, c)] = nbrs
		}
	}

	var cellToOrdNodes []mesh.CellNodes
	for cr := 0; cr < rows-1; cr++ {
		for cc := 0; cc < cols-1; cc++ {
			cellToOrdNodes = append(cellToOrdNodes, mesh.CellNodes{
				nodeID(cr, cc), nodeID(cr, cc+1), nodeID(cr+1, cc), nodeID(cr+1, cc+1),
			})
		}
	}

	var inedgeToNodes []mesh.EdgeNodes
	var inedgeToCells []mesh.EdgeCells
	var borderedgeToNodes []mesh.BorderEdgeNodes
	var borderedgeToCell []mesh.CellID

	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			aboveValid := r-1 >= 0
			belowValid := r <= rows-2
			switch {
			case aboveValid && belowValid:
				inedgeToNodes = append(inedgeToNodes, mesh.EdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				inedgeToCells = append(inedgeToCells, mesh.EdgeCells{cellID(r-1, c), cellID(r, c)})
			case belowValid:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				borderedgeToCell = append(borderedgeToCell, cellID(r, c))
			case aboveValid:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				borderedgeToCell = append(borderedgeToCell, cellID(r-1, c))
			}
		}
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			leftValid := c-1 >= 0
			rightValid := c <= cols-2
			switch {
			case leftValid && rightValid:
				inedgeToNodes = append(inedgeToNodes, mesh.EdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				inedgeToCells = append(inedgeToCells, mesh.EdgeCells{cellID(r, c-1), cellID(r, c)})
			case rightValid:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				borderedgeToCell = append(borderedgeToCell, cellID(r, c))
			case leftValid:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				borderedgeToCell = append(borderedgeToCell, cellID(r, c-1))
			}
		}
	}

	coordData := make([]mesh.Coord, numNodes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coordData[nodeID(r, c)] = mesh.Coord{X: float64(c), Y: float64(r)}
		}
	}

	return mesh.Input{
		NodeToNode:        nodeAdj,
		CellToOrdNodes:    cellToOrdNodes,
		InedgeToNodes:     inedgeToNodes,
		InedgeToCells:     inedgeToCells,
		BorderedgeToNodes: borderedgeToNodes,
		BorderedgeToCell:  borderedgeToCell,
		CoordData:         coordData,
	}
}

// NodeAt returns the node id at logical (r, c) in a rows x cols grid
// built by NewGrid.
func NodeAt(cols, r, c int) mesh.NodeID { return mesh.NodeID(r*cols + c) }

// NewGridHole builds the same lattice as NewGrid but with the single cell
// at (holeCr, holeCc) removed: its 4 bordering edges become border edges
// instead of internal ones, and the cell itself is dropped from
// cell_to_ord_nodes (remaining cell ids are renumbered densely). Node
// adjacency is unaffected.
func NewGridHole(rows, cols, holeCr, holeCc int) *mesh.Relations {
	nodeID := func(r, c int) mesh.NodeID { return mesh.NodeID(r*cols + c) }
	cellID := func(cr, cc int) mesh.CellID { return mesh.CellID(cr*(cols-1) + cc) }
	isHole := func(cr, cc int) bool { return cr == holeCr && cc == holeCc }

	numNodes := rows * cols
	nodeAdj := make([]map[mesh.NodeID]struct{}, numNodes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nbrs := make(map[mesh.NodeID]struct{}, 4)
			if r > 0 {
				nbrs[nodeID(r-1, c)] = struct{}{}
			}
			if r < rows-1 {
				nbrs[nodeID(r+1, c)] = struct{}{}
			}
			if c > 0 {
				nbrs[nodeID(r, c-1)] = struct{}{}
			}
			if c < cols-1 {
				nbrs[nodeID(r, c+1)] = struct{}{}
			}
			nodeAdj[nodeID(r, c)] = nbrs
		}
	}

	var cellToOrdNodes []mesh.CellNodes
	cellIDs := make(map[[2]int]mesh.CellID)
	for cr := 0; cr < rows-1; cr++ {
		for cc := 0; cc < cols-1; cc++ {
			if isHole(cr, cc) {
				continue
			}
			cellIDs[[2]int{cr, cc}] = cellID(cr, cc)
			cellToOrdNodes = append(cellToOrdNodes, mesh.CellNodes{
				nodeID(cr, cc), nodeID(cr, cc+1), nodeID(cr+1, cc), nodeID(cr+1, cc+1),
			})
		}
	}
	// cellToOrdNodes must be dense 0..N-1; since isHole drops one entry,
	// renumber contiguously in (cr, cc) row-major order to keep ids dense.
	dense := make(map[[2]int]mesh.CellID, len(cellIDs))
	keys := make([][2]int, 0, len(cellIDs))
	for k := range cellIDs {
		keys = append(keys, k)
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j][0] < keys[i][0] || (keys[j][0] == keys[i][0] && keys[j][1] < keys[i][1]) {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	cellToOrdNodes = cellToOrdNodes[:0]
	for i, k := range keys {
		dense[k] = mesh.CellID(i)
		cellToOrdNodes = append(cellToOrdNodes, mesh.CellNodes{
			nodeID(k[0], k[1]), nodeID(k[0], k[1]+1), nodeID(k[0]+1, k[1]), nodeID(k[0]+1, k[1]+1),
		})
	}
	cellAt := func(cr, cc int) (mesh.CellID, bool) {
		id, ok := dense[[2]int{cr, cc}]
		return id, ok
	}

	var inedgeToNodes []mesh.EdgeNodes
	var inedgeToCells []mesh.EdgeCells
	var borderedgeToNodes []mesh.BorderEdgeNodes
	var borderedgeToCell []mesh.CellID

	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			above, aboveOK := cellAt(r-1, c)
			below, belowOK := cellAt(r, c)
			switch {
			case aboveOK && belowOK:
				inedgeToNodes = append(inedgeToNodes, mesh.EdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				inedgeToCells = append(inedgeToCells, mesh.EdgeCells{above, below})
			case belowOK:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				borderedgeToCell = append(borderedgeToCell, below)
			case aboveOK:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r, c+1)})
				borderedgeToCell = append(borderedgeToCell, above)
			}
		}
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			left, leftOK := cellAt(r, c-1)
			right, rightOK := cellAt(r, c)
			switch {
			case leftOK && rightOK:
				inedgeToNodes = append(inedgeToNodes, mesh.EdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				inedgeToCells = append(inedgeToCells, mesh.EdgeCells{left, right})
			case rightOK:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				borderedgeToCell = append(borderedgeToCell, right)
			case leftOK:
				borderedgeToNodes = append(borderedgeToNodes, mesh.BorderEdgeNodes{nodeID(r, c), nodeID(r+1, c)})
				borderedgeToCell = append(borderedgeToCell, left)
			}
		}
	}

	coordData := make([]mesh.Coord, numNodes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coordData[nodeID(r, c)] = mesh.Coord{X: float64(c), Y: float64(r)}
		}
	}

	rel, err := mesh.New(mesh.Input{
		NodeToNode:        nodeAdj,
		CellToOrdNodes:    cellToOrdNodes,
		InedgeToNodes:     inedgeToNodes,
		InedgeToCells:     inedgeToCells,
		BorderedgeToNodes: borderedgeToNodes,
		BorderedgeToCell:  borderedgeToCell,
		CoordData:         coordData,
	})
	if err != nil {
		panic(err)
	}
	return rel
}

// NewTwoGridsSharedNode builds two size x size lattices that touch at
// exactly one node: the top-right node of the first grid is identified
// with the bottom-left node of the second, giving two otherwise-disjoint
// grids connected by a single shared node. Returns the combined Relations
// plus the shared node's id.
func NewTwoGridsSharedNode(size int) (rel *mesh.Relations, sharedNode mesh.NodeID) {
	firstCount := size * size
	// Second grid's nodes are offset by firstCount-1: its (0,0) node is
	// identified with the first grid's (size-1, size-1) node.
	nodeID := func(gridOffset, r, c int) mesh.NodeID {
		id := gridOffset + r*size + c
		return mesh.NodeID(id)
	}
	shared := nodeID(0, size-1, size-1)

	numNodesRaw := firstCount + firstCount // before identification
	// second grid's raw node (0,0) aliases `shared`; every other second-grid
	// raw id shifts down by one slot once (0,0) is removed.
	secondRawID := func(r, c int) mesh.NodeID { return nodeID(firstCount, r, c) }
	canonical := make(map[mesh.NodeID]mesh.NodeID, numNodesRaw)
	next := mesh.NodeID(0)
	for id := mesh.NodeID(0); id < mesh.NodeID(firstCount); id++ {
		canonical[id] = next
		next++
	}
	canonical[secondRawID(0, 0)] = shared
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if r == 0 && c == 0 {
				continue
			}
			canonical[secondRawID(r, c)] = next
			next++
		}
	}
	numNodes := int(next)

	nodeAdjRaw := make(map[mesh.NodeID]map[mesh.NodeID]struct{})
	addEdge := func(a, b mesh.NodeID) {
		if nodeAdjRaw[a] == nil {
			nodeAdjRaw[a] = make(map[mesh.NodeID]struct{})
		}
		if nodeAdjRaw[b] == nil {
			nodeAdjRaw[b] = make(map[mesh.NodeID]struct{})
		}
		nodeAdjRaw[a][b] = struct{}{}
		nodeAdjRaw[b][a] = struct{}{}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if c < size-1 {
				addEdge(canonical[nodeID(0, r, c)], canonical[nodeID(0, r, c+1)])
			}
			if r < size-1 {
				addEdge(canonical[nodeID(0, r, c)], canonical[nodeID(0, r+1, c)])
			}
			if c < size-1 {
				addEdge(canonical[secondRawID(r, c)], canonical[secondRawID(r, c+1)])
			}
			if r < size-1 {
				addEdge(canonical[secondRawID(r, c)], canonical[secondRawID(r+1, c)])
			}
		}
	}

	nodeAdj := make([]map[mesh.NodeID]struct{}, numNodes)
	for id, nbrs := range nodeAdjRaw {
		nodeAdj[id] = nbrs
	}
	for i := range nodeAdj {
		if nodeAdj[i] == nil {
			nodeAdj[i] = make(map[mesh.NodeID]struct{})
		}
	}

	coordData := make([]mesh.Coord, numNodes)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			coordData[canonical[nodeID(0, r, c)]] = mesh.Coord{X: float64(c), Y: float64(r)}
			coordData[canonical[secondRawID(r, c)]] = mesh.Coord{X: float64(c + size), Y: float64(r + size)}
		}
	}

	// No cells or internal edges needed for the node-detector-only tests
	// this fixture serves; cell/edge sections are left empty (a valid,
	// if unusual, mesh: plenty of real inputs have regions with no
	// induced cell/edge structure at all).
	rel, err := mesh.New(mesh.Input{
		NodeToNode: nodeAdj,
		CoordData:  coordData,
	})
	if err != nil {
		panic(err)
	}
	return rel, shared
}
