package orchestrate

import (
	"fmt"

	"github.com/katalvlaran/meshtopo/cellstruct"
	"github.com/katalvlaran/meshtopo/detect"
	"github.com/katalvlaran/meshtopo/edgestruct"
	"github.com/katalvlaran/meshtopo/mesh"
	"github.com/katalvlaran/meshtopo/renumber"
)

// Run drives the full pipeline over rel: detect node regions, induce cell
// and edge structure for each, build the renumbering, and apply it.
// Cell/edge induction failures are logged and skipped per-region (a
// structure failure is recoverable, not fatal); a renumbering
// inconsistency is the only fatal outcome Run itself can produce, since
// rel is assumed already validated by mesh.New.
func Run(rel *mesh.Relations, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	d := detect.New(rel, cfg.rng)
	nodeRegions := d.DetectRegions(cfg.startNode, cfg.maxRows, cfg.maxCols, cfg.maxRegions, cfg.maxFail)
	cfg.logger.Info("node regions detected", "count", len(nodeRegions), "start_node", cfg.startNode)

	cellRegions := make([]*cellstruct.CellRegion, len(nodeRegions))
	hEdgeRegions := make([]*edgestruct.EdgeRegion, len(nodeRegions))
	vEdgeRegions := make([]*edgestruct.EdgeRegion, len(nodeRegions))
	skippedCells, skippedEdges := 0, 0

	for i, region := range nodeRegions {
		cr, err := cellstruct.Induce(rel, region)
		if err != nil {
			cfg.logger.Warn("cell induction failed for region, skipping", "region", i, "error", err)
			skippedCells++
		} else {
			cellRegions[i] = cr
		}

		h, v, err := edgestruct.Induce(rel, region)
		if err != nil {
			cfg.logger.Warn("edge induction failed for region, skipping", "region", i, "error", err)
			skippedEdges++
		} else {
			hEdgeRegions[i] = h
			vEdgeRegions[i] = v
		}
	}

	renumbering, err := renumber.Build(rel, nodeRegions, cellRegions, hEdgeRegions, vEdgeRegions)
	if err != nil {
		cfg.logger.Error("renumbering failed", "error", err)
		return nil, fmt.Errorf("orchestrate.Run: %w", err)
	}

	applied := renumbering.Apply(rel)

	unvisited := make([]int, 0, len(d.NotVisited()))
	for _, n := range d.NotVisited() {
		unvisited = append(unvisited, int(n))
	}

	cfg.logger.Info("renumbering complete",
		"nodes", rel.NumNodes(), "cells", rel.NumCells(), "edges", rel.NumEdges(),
		"unvisited", len(unvisited), "skipped_cell_regions", skippedCells, "skipped_edge_regions", skippedEdges)

	return &Result{
		Renumbering:        renumbering,
		Applied:            applied,
		UnvisitedNodes:     unvisited,
		SkippedCellRegions: skippedCells,
		SkippedEdgeRegions: skippedEdges,
	}, nil
}
