package orchestrate

import "github.com/katalvlaran/meshtopo/renumber"

// Result is everything a writer needs to emit the augmented mesh archive:
// the renumbered relation data, the three bijections, and the region
// placements that let the writer emit
// structured_node_regions/structured_cell_regions/structured_edge_regions
// headers without recomputing anything.
type Result struct {
	Renumbering *renumber.Renumbering
	Applied     *renumber.Applied

	// UnvisitedNodes is whatever DetectRegions never reached — old ids,
	// ascending.
	UnvisitedNodes []int

	// SkippedCellRegions and SkippedEdgeRegions count node regions for
	// which cell or edge induction, respectively, failed; their nodes still renumber into the structured node prefix
	// but contribute no structured cells/edges.
	SkippedCellRegions int
	SkippedEdgeRegions int
}
