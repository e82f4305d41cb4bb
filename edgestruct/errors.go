// Package edgestruct implements the edge structure inducer: given a node
// region and its cell region, it derives the horizontal and vertical
// structured edge strips, each excluding any edge that touches the mesh
// boundary, and a node/cell compass describing how each edge's stored
// node and cell pairs align with the strip's logical direction.
//
// Grounded on original_source/structure-detection/detect_edge_structure.py
// (EdgeStructureFromNodeStructure, HorizontalEdgeAccessor,
// VerticalEdgeAccessor, find_edge_structure_boundary) for exact semantics.
// A direction tag plus two projection functions replaces the original's
// multiple-inheritance accessor classes with the single pairAt function in
// induce.go, which switches on Direction at the call site rather than
// storing callables.
package edgestruct

import "errors"

// ErrEmptyStrip indicates border-edge shrinking consumed the entire
// candidate strip — the region has no interior edges in this direction.
var ErrEmptyStrip = errors.New("edgestruct: strip shrank to empty")

// ErrNotInternal indicates a logical node pair inside the (already
// border-shrunk) strip has no corresponding internal edge at all — an
// inconsistency between the node region and the mesh relations.
var ErrNotInternal = errors.New("edgestruct: logical edge is not an internal edge")

// ErrCompassMismatch indicates an edge later in the strip disagrees with
// the node- or cell-compass established by the strip's seed edge.
var ErrCompassMismatch = errors.New("edgestruct: edge disagrees with strip compass")
