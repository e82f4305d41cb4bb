package renumber

import (
	"github.com/katalvlaran/meshtopo/cellstruct"
	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/edgestruct"
)

// Mapping is a bijection between old and new integer ids for one entity
// kind. Both directions are kept: the archive format prints
// oldnode_to_newnode and oldcell_to_newcell in the old->new direction but
// newedge_to_oldedge in the new->old direction, so callers need whichever
// direction the archive asks for.
type Mapping struct {
	OldToNew []int // index: old id, value: new id
	NewToOld []int // index: new id, value: old id
}

// NodeRegionPlacement records where one detected node region's nodes
// landed in the new numbering: region.At(r, c)'s new id is
// Offset + r*region.Cols() + c.
type NodeRegionPlacement struct {
	Region *detect.Region
	Offset int
}

// CellRegionPlacement is the same idea for an induced cell region.
type CellRegionPlacement struct {
	Region *cellstruct.CellRegion
	Offset int
}

// EdgeRegionPlacement is the same idea for an induced horizontal or
// vertical edge strip.
type EdgeRegionPlacement struct {
	Region *edgestruct.EdgeRegion
	Offset int
}

// Renumbering is the full set of bijections and region placements derived
// from one detection pass, ready to drive Apply and the archive writer.
type Renumbering struct {
	Nodes Mapping
	Cells Mapping
	Edges Mapping

	NodeRegions []NodeRegionPlacement
	CellRegions []CellRegionPlacement

	// HEdgeRegions and VEdgeRegions each hold one placement per node
	// region, in the same order as NodeRegions; a placement's Region is nil
	// if induction failed or was not attempted for that node region.
	HEdgeRegions []EdgeRegionPlacement
	VEdgeRegions []EdgeRegionPlacement
}
