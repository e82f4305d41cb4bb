package renumber

import "github.com/katalvlaran/meshtopo/mesh"

// Applied is the renumbered mesh data, ready for mesh.New and for the
// archive writer. Unlike mesh.Input, NodeToNode is expressed as plain
// adjacency sets keyed by the new NodeID space.
type Applied struct {
	NodeToNode        []map[mesh.NodeID]struct{}
	CellToOrdNodes    []mesh.CellNodes
	InedgeToNodes     []mesh.EdgeNodes
	InedgeToCells     []mesh.EdgeCells
	BorderedgeToNodes []mesh.BorderEdgeNodes
	BorderedgeToCell  []mesh.CellID
	CoordData         []mesh.Coord
}

// Apply remaps every relation in rel through r: relations whose indices
// are a renumbered entity kind are reordered by the inverse map,
// relations whose values are a renumbered entity kind are remapped
// through the forward map. Border edges keep their original order,
// renumbered only by the outer node/cell shift — only the node/cell
// values their entries reference are remapped.
func (r *Renumbering) Apply(rel *mesh.Relations) *Applied {
	numNodes := rel.NumNodes()
	numCells := rel.NumCells()
	numEdges := rel.NumEdges()
	numBorder := rel.NumBorderEdges()

	out := &Applied{
		NodeToNode:        make([]map[mesh.NodeID]struct{}, numNodes),
		CellToOrdNodes:    make([]mesh.CellNodes, numCells),
		InedgeToNodes:     make([]mesh.EdgeNodes, numEdges),
		InedgeToCells:     make([]mesh.EdgeCells, numEdges),
		BorderedgeToNodes: make([]mesh.BorderEdgeNodes, numBorder),
		BorderedgeToCell:  make([]mesh.CellID, numBorder),
		CoordData:         make([]mesh.Coord, numNodes),
	}

	newNode := func(old mesh.NodeID) mesh.NodeID { return mesh.NodeID(r.Nodes.OldToNew[old]) }
	newCell := func(old mesh.CellID) mesh.CellID { return mesh.CellID(r.Cells.OldToNew[old]) }

	for newID := 0; newID < numNodes; newID++ {
		oldID := mesh.NodeID(r.Nodes.NewToOld[newID])
		oldNbrs := rel.Neighbors(oldID)
		nbrs := make(map[mesh.NodeID]struct{}, len(oldNbrs))
		for _, n := range oldNbrs {
			nbrs[newNode(n)] = struct{}{}
		}
		out.NodeToNode[newID] = nbrs
		out.CoordData[newID] = rel.Coord(oldID)
	}

	for newID := 0; newID < numCells; newID++ {
		oldID := mesh.CellID(r.Cells.NewToOld[newID])
		oldNodes := rel.CellNodes(oldID)
		var nodes mesh.CellNodes
		for slot, n := range oldNodes {
			nodes[slot] = newNode(n)
		}
		out.CellToOrdNodes[newID] = nodes
	}

	for newID := 0; newID < numEdges; newID++ {
		oldID := mesh.EdgeID(r.Edges.NewToOld[newID])
		oldNodes := rel.EdgeNodes(oldID)
		out.InedgeToNodes[newID] = mesh.EdgeNodes{newNode(oldNodes[0]), newNode(oldNodes[1])}
		oldCells := rel.EdgeCells(oldID)
		out.InedgeToCells[newID] = mesh.EdgeCells{newCell(oldCells[0]), newCell(oldCells[1])}
	}

	for b := 0; b < numBorder; b++ {
		oldNodes := rel.BorderEdgeNodes(b)
		out.BorderedgeToNodes[b] = mesh.BorderEdgeNodes{newNode(oldNodes[0]), newNode(oldNodes[1])}
		out.BorderedgeToCell[b] = newCell(rel.BorderEdgeCell(b))
	}

	return out
}
