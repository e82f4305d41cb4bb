// Package detect implements the node structure detector: growing a maximal
// logical (row, column) grid of node ids from a seed, using only topological
// adjacency (never coordinates), with full transactional backtracking on
// failure.
//
// Grounded on original_source/structure-detection/quad_mesh.py
// (DetectQuadStructure, SizeLimiter, StructureException) for exact
// algorithmic semantics, and on gridgraph/components.go and
// builder/impl_grid.go for Go idiom (explicit owned state, sentinel errors).
package detect

import (
	"errors"
	"fmt"
)

// ErrStructureFailure is the single recoverable-failure sentinel: it means
// the logical-grid hypothesis does not hold at the current frontier. All
// detect errors returned to a caller from DetectRegionFrom wrap this
// sentinel, so callers can branch with errors.Is(err, ErrStructureFailure)
// instead of matching strings.
var ErrStructureFailure = errors.New("detect: structure failure")

// structureFailuref builds an error wrapping ErrStructureFailure with a
// formatted, human-readable reason.
func structureFailuref(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStructureFailure, fmt.Sprintf(format, args...))
}
