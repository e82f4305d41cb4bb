package meshio

const (
	secNodeToNode        = "node_to_node"
	secCellToOrdNodes    = "cell_to_ord_nodes"
	secInedgeToNodes     = "inedge_to_nodes"
	secInedgeToCells     = "inedge_to_cells"
	secBorderedgeToNodes = "borderedge_to_nodes"
	secBorderedgeToCell  = "borderedge_to_cell"
	secCoordData         = "coord_data"

	secStructuredNodeRegions   = "structured_node_regions"
	secStructuredCellRegions   = "structured_cell_regions"
	secUnstructuredCellRegions = "unstructured_cell_regions"
	secNewCellToOrdNodes       = "new_cell_to_ord_nodes"
	secStructuredEdgeRegions   = "structured_edge_regions"
	secStructuredHEdgeRegions  = "structured_h_edge_regions"
	secStructuredVEdgeRegions  = "structured_v_edge_regions"
	secUnstructuredEdgesOffset = "unstructured_edges_offset"
	secNewInedgeToNodes        = "new_inedge_to_nodes"
	secNewInedgeToCells        = "new_inedge_to_cells"
	secNewBorderedgeToNodes    = "new_borderedge_to_nodes"
	secNewBorderedgeToCell     = "new_borderedge_to_cell"
	secNewCoordData            = "new_coord_data"

	secOldnodeToNewnode = "oldnode_to_newnode"
	secOldcellToNewcell = "oldcell_to_newcell"
	secNewedgeToOldedge = "newedge_to_oldedge"
)

// requiredInputSections is every archive entry an input mesh file must
// carry.
var requiredInputSections = []string{
	secNodeToNode,
	secCellToOrdNodes,
	secInedgeToNodes,
	secInedgeToCells,
	secBorderedgeToNodes,
	secBorderedgeToCell,
	secCoordData,
}
