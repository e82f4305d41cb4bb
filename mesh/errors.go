package mesh

import "errors"

// Sentinel errors for Relations construction and validation.
//
// These are input invariant violations: fatal, non-recoverable failures
// that indicate the input archive itself is malformed, as opposed to
// detect.ErrStructureFailure, which is recoverable and only ever means
// "this seed/region hypothesis doesn't hold".
var (
	// ErrAsymmetricAdjacency indicates node_to_node violates b in adj(a) <=> a in adj(b).
	ErrAsymmetricAdjacency = errors.New("mesh: asymmetric node adjacency")

	// ErrBadCellArity indicates a cell does not have exactly 4 distinct nodes.
	ErrBadCellArity = errors.New("mesh: cell does not have 4 distinct nodes")

	// ErrBadEdgeCellCount indicates an internal edge's cell pair is not 2 distinct cells.
	ErrBadEdgeCellCount = errors.New("mesh: internal edge does not have 2 distinct cells")

	// ErrBadEdgeNodes indicates an edge's node pair does not correspond to a true adjacency.
	ErrBadEdgeNodes = errors.New("mesh: edge endpoints are not adjacent")

	// ErrNodeOutOfRange indicates a relation referenced a node id outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("mesh: node id out of range")

	// ErrCellOutOfRange indicates a relation referenced a cell id outside [0, NumCells).
	ErrCellOutOfRange = errors.New("mesh: cell id out of range")

	// ErrCoordCountMismatch indicates coord_data length does not match node count.
	ErrCoordCountMismatch = errors.New("mesh: coord_data length does not match node count")
)
