// Package mesh holds the in-memory relations store for an unstructured
// quadrilateral mesh: node adjacency, cell-to-node and edge-to-node/cell
// maps, and coordinate payload. It is read-only once built; detectors and
// the renumbering engine consume it through narrow accessor methods and
// never mutate it directly.
package mesh

// NodeID, CellID and EdgeID are the original (pre-renumbering) integer
// identifiers used throughout the archive format. They are distinct types
// so that node/cell/edge indices can never be mixed up at compile time.
type NodeID int
type CellID int
type EdgeID int

// Coord is a 2-D coordinate. It is reorder-only payload: the detector never
// consults it when making structural decisions (spec: coord_data is never
// used for decisions, only for reordering).
type Coord struct {
	X, Y float64
}

// CellNodes is the ordered 4-tuple of nodes incident to a cell, in the
// cell's own compass-slot order (slot 0..3). Slot ordering is intrinsic to
// the cell and is what cell-region compasses index into.
type CellNodes [4]NodeID

// EdgeNodes is the unordered pair of node endpoints of an internal edge
// (border edges use BorderEdgeNodes), stored in a fixed slot order (slot 0, slot 1) that compass
// derivation refers to.
type EdgeNodes [2]NodeID

// EdgeCells is the ordered pair of cells incident to an internal edge.
type EdgeCells [2]CellID

// BorderEdgeNodes is the node pair of a border edge.
type BorderEdgeNodes [2]NodeID
