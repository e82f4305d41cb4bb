// Package renumber builds and applies the three renumbering bijections
// (nodes, cells, internal edges): structured entities are flattened
// row-major region by region in detection order, the unstructured
// remainder is appended in ascending old-id order, and every relation in
// the mesh is remapped or reordered accordingly.
//
// Grounded on original_source/structure-detection/
// detect_and_append_structure.py (renumber_nodes, renumber_cells,
// renumber_edges, apply_renumbering) for exact semantics; gridgraph's
// explicit-state, sentinel-error style for the Go re-expression.
package renumber

import "errors"

// ErrDuplicateAssignment indicates two different structured regions both
// claim the same old entity id: a renumbering inconsistency, fatal, and
// a bug in detection rather than malformed input.
var ErrDuplicateAssignment = errors.New("renumber: entity assigned to more than one structured region")

// ErrIncompleteBijection indicates the final old->new map does not cover
// every entity exactly once after structured regions and the unstructured
// remainder are both accounted for.
var ErrIncompleteBijection = errors.New("renumber: map is not a complete bijection")
