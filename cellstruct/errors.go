// Package cellstruct implements the cell structure inducer: given an
// already-detected node region, it identifies the quad cell incident to
// each 2x2 node block and derives a four-way compass recording how the
// region's logical corners map onto each cell's own node-slot ordering.
//
// Grounded on original_source/structure-detection/detect_cell_structure.py
// (CellStructureFromNodeStructure, _find_topleftmost_structured_quad,
// _find_remaining_structure) for exact algorithmic semantics.
package cellstruct

import "errors"

// ErrNoCommonCell indicates no 2x2 window in the region has exactly one
// cell incident to all four corner nodes — the region has no inducible
// cell structure at all.
var ErrNoCommonCell = errors.New("cellstruct: no window has a unique common cell")

// ErrWraparound indicates a 2x2 window's four corners share more than one
// incident cell in common: rejected as a structure failure rather than
// treated as unimplemented.
var ErrWraparound = errors.New("cellstruct: window has more than one common cell")

// ErrCompassNotDistinct indicates the four corner nodes of the seed window
// occupy fewer than four distinct slots in the common cell's node tuple.
var ErrCompassNotDistinct = errors.New("cellstruct: seed window compass slots are not pairwise distinct")
