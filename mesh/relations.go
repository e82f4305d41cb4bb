package mesh

import (
	"fmt"
	"math/rand"
	"sort"
)

// Relations is the read-only relations store built once from an input
// archive. It holds node adjacency, cell-to-node, edge-to-node/cell, and
// coordinate data. Once constructed by New, a Relations value is never
// mutated: detectors and the renumbering engine only ever read from it.
//
// Grounded on core.Graph's vertex/adjacency bookkeeping (adjacency_list.go),
// re-expressed for a fixed, validated mesh of nodes/cells/edges rather than
// a general mutable graph.
type Relations struct {
	nodeAdj           []map[NodeID]struct{} // index: NodeID
	cellToOrdNodes    []CellNodes           // index: CellID
	inedgeToNodes     []EdgeNodes           // index: EdgeID
	inedgeToCells     []EdgeCells           // index: EdgeID
	borderedgeToNodes []BorderEdgeNodes
	borderedgeToCell  []CellID
	coordData         []Coord

	shuffleRNG *rand.Rand // optional; nil => deterministic sorted adjacency order
}

// Option configures a Relations during construction.
type Option func(*Relations)

// WithShuffledAdjacency makes Neighbors return its result in an order
// reshuffled by rng on every call, instead of the default deterministic
// ascending order. This exists purely as a differential-testing device to
// stress the detector's insensitivity to neighbour iteration order —
// production callers should leave it unset.
func WithShuffledAdjacency(rng *rand.Rand) Option {
	return func(r *Relations) { r.shuffleRNG = rng }
}

// Input is the raw, as-read relation data handed to New. All id-valued
// fields are zero-based and dense (NodeID 0..len(NodeToNode)-1, etc.),
// matching the archive format meshio reads and writes.
type Input struct {
	NodeToNode        []map[NodeID]struct{}
	CellToOrdNodes    []CellNodes
	InedgeToNodes     []EdgeNodes
	InedgeToCells     []EdgeCells
	BorderedgeToNodes []BorderEdgeNodes
	BorderedgeToCell  []CellID
	CoordData         []Coord
}

// New validates in and constructs a Relations. It returns the first
// violated invariant among: symmetric adjacency, 4-distinct-node cells,
// 2-distinct-cell internal edges, edge endpoints genuinely adjacent, node/
// cell ids in range, and coord_data sized to match node count. These are
// input invariant violations: fatal, never recoverable by retrying a
// different seed.
func New(in Input, opts ...Option) (*Relations, error) {
	numNodes := len(in.NodeToNode)

	if len(in.CoordData) != numNodes {
		return nil, fmt.Errorf("mesh.New: %w: got %d, want %d", ErrCoordCountMismatch, len(in.CoordData), numNodes)
	}

	for a, nbrs := range in.NodeToNode {
		for b := range nbrs {
			if int(b) < 0 || int(b) >= numNodes {
				return nil, fmt.Errorf("mesh.New: node %d: %w: neighbour %d", a, ErrNodeOutOfRange, b)
			}
			if _, ok := in.NodeToNode[b][NodeID(a)]; !ok {
				return nil, fmt.Errorf("mesh.New: %w: %d in adj(%d) but %d not in adj(%d)", ErrAsymmetricAdjacency, a, b, a, b)
			}
		}
	}

	numCells := len(in.CellToOrdNodes)
	for c, nodes := range in.CellToOrdNodes {
		seen := make(map[NodeID]struct{}, 4)
		for _, n := range nodes {
			if int(n) < 0 || int(n) >= numNodes {
				return nil, fmt.Errorf("mesh.New: cell %d: %w: node %d", c, ErrNodeOutOfRange, n)
			}
			seen[n] = struct{}{}
		}
		if len(seen) != 4 {
			return nil, fmt.Errorf("mesh.New: cell %d: %w", c, ErrBadCellArity)
		}
	}

	if len(in.InedgeToNodes) != len(in.InedgeToCells) {
		return nil, fmt.Errorf("mesh.New: inedge_to_nodes and inedge_to_cells length mismatch (%d vs %d)",
			len(in.InedgeToNodes), len(in.InedgeToCells))
	}
	for e, nodes := range in.InedgeToNodes {
		a, b := nodes[0], nodes[1]
		if int(a) < 0 || int(a) >= numNodes || int(b) < 0 || int(b) >= numNodes {
			return nil, fmt.Errorf("mesh.New: edge %d: %w", e, ErrNodeOutOfRange)
		}
		if a == b {
			return nil, fmt.Errorf("mesh.New: edge %d: %w: endpoints identical", e, ErrBadEdgeNodes)
		}
		if _, ok := in.NodeToNode[a][b]; !ok {
			return nil, fmt.Errorf("mesh.New: edge %d: %w", e, ErrBadEdgeNodes)
		}
		cells := in.InedgeToCells[e]
		if cells[0] == cells[1] {
			return nil, fmt.Errorf("mesh.New: edge %d: %w", e, ErrBadEdgeCellCount)
		}
		for _, c := range cells {
			if int(c) < 0 || int(c) >= numCells {
				return nil, fmt.Errorf("mesh.New: edge %d: %w: cell %d", e, ErrCellOutOfRange, c)
			}
		}
	}

	if len(in.BorderedgeToNodes) != len(in.BorderedgeToCell) {
		return nil, fmt.Errorf("mesh.New: borderedge_to_nodes and borderedge_to_cell length mismatch (%d vs %d)",
			len(in.BorderedgeToNodes), len(in.BorderedgeToCell))
	}
	for e, c := range in.BorderedgeToCell {
		if int(c) < 0 || int(c) >= numCells {
			return nil, fmt.Errorf("mesh.New: border edge %d: %w: cell %d", e, ErrCellOutOfRange, c)
		}
	}

	r := &Relations{
		nodeAdj:           in.NodeToNode,
		cellToOrdNodes:    in.CellToOrdNodes,
		inedgeToNodes:     in.InedgeToNodes,
		inedgeToCells:     in.InedgeToCells,
		borderedgeToNodes: in.BorderedgeToNodes,
		borderedgeToCell:  in.BorderedgeToCell,
		coordData:         in.CoordData,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NumNodes returns the number of nodes in the mesh.
func (r *Relations) NumNodes() int { return len(r.nodeAdj) }

// NumCells returns the number of cells in the mesh.
func (r *Relations) NumCells() int { return len(r.cellToOrdNodes) }

// NumEdges returns the number of internal edges in the mesh.
func (r *Relations) NumEdges() int { return len(r.inedgeToNodes) }

// NumBorderEdges returns the number of border edges in the mesh.
func (r *Relations) NumBorderEdges() int { return len(r.borderedgeToNodes) }

// Degree returns the number of neighbours of n.
func (r *Relations) Degree(n NodeID) int { return len(r.nodeAdj[n]) }

// Neighbors returns the neighbours of n. By default the order is
// deterministic (ascending NodeID); if the Relations was built with
// WithShuffledAdjacency, the order is reshuffled on every call instead.
// The returned slice is owned by the caller.
func (r *Relations) Neighbors(n NodeID) []NodeID {
	nbrs := r.nodeAdj[n]
	out := make([]NodeID, 0, len(nbrs))
	for id := range nbrs {
		out = append(out, id)
	}
	if r.shuffleRNG != nil {
		r.shuffleRNG.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsNeighbor reports whether b is a neighbour of a.
func (r *Relations) IsNeighbor(a, b NodeID) bool {
	_, ok := r.nodeAdj[a][b]
	return ok
}

// CellNodes returns the ordered 4-tuple of nodes for cell c.
func (r *Relations) CellNodes(c CellID) CellNodes { return r.cellToOrdNodes[c] }

// EdgeNodes returns the node pair for internal edge e.
func (r *Relations) EdgeNodes(e EdgeID) EdgeNodes { return r.inedgeToNodes[e] }

// EdgeCells returns the incident cell pair for internal edge e.
func (r *Relations) EdgeCells(e EdgeID) EdgeCells { return r.inedgeToCells[e] }

// BorderEdgeNodes returns the node pair for border edge b.
func (r *Relations) BorderEdgeNodes(b int) BorderEdgeNodes { return r.borderedgeToNodes[b] }

// BorderEdgeCell returns the single incident cell for border edge b.
func (r *Relations) BorderEdgeCell(b int) CellID { return r.borderedgeToCell[b] }

// Coord returns the coordinate of node n.
func (r *Relations) Coord(n NodeID) Coord { return r.coordData[n] }

// AllNodes returns all node ids 0..NumNodes-1, in ascending order.
func (r *Relations) AllNodes() []NodeID {
	out := make([]NodeID, r.NumNodes())
	for i := range out {
		out[i] = NodeID(i)
	}
	return out
}
