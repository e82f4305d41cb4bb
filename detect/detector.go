package detect

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/meshtopo/mesh"
)

// Detector owns the visited/not_visited bookkeeping shared across region
// attempts: explicit state owned by a single Detector value rather than
// package-level mutable globals, in the style of a grid-graph connected-
// components walk's visited-slice bookkeeping.
//
// A Detector is not safe for concurrent use; the whole pipeline runs
// single-threaded cooperatively.
type Detector struct {
	rel        *mesh.Relations
	visited    map[mesh.NodeID]bool
	notVisited map[mesh.NodeID]bool
	rng        *rand.Rand // optional; nil => deterministic (smallest-id) seed choice
}

// New returns a Detector over rel with every node initially unvisited. rng
// is used only to choose seeds uniformly at random in DetectRegions and, if
// rel was built with mesh.WithShuffledAdjacency, has no further effect here
// (the shuffle lives in Relations itself). A nil rng makes seed choice
// deterministic (ascending node id).
func New(rel *mesh.Relations, rng *rand.Rand) *Detector {
	d := &Detector{
		rel:        rel,
		visited:    make(map[mesh.NodeID]bool, rel.NumNodes()),
		notVisited: make(map[mesh.NodeID]bool, rel.NumNodes()),
		rng:        rng,
	}
	for _, n := range rel.AllNodes() {
		d.notVisited[n] = true
	}
	return d
}

// visit moves n from not_visited to visited.
func (d *Detector) visit(n mesh.NodeID) {
	delete(d.notVisited, n)
	d.visited[n] = true
}

// unvisit moves n from visited back to not_visited.
func (d *Detector) unvisit(n mesh.NodeID) {
	delete(d.visited, n)
	d.notVisited[n] = true
}

// NotVisited returns the currently unvisited nodes in ascending order.
func (d *Detector) NotVisited() []mesh.NodeID {
	out := make([]mesh.NodeID, 0, len(d.notVisited))
	for n := range d.notVisited {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// neighbours returns n's neighbours, failing with ErrStructureFailure if n
// does not have exactly four (the interior-node assumption every phase
// relies on: a structured node always has degree 4).
func (d *Detector) neighbours(n mesh.NodeID) ([]mesh.NodeID, error) {
	nbrs := d.rel.Neighbors(n)
	if len(nbrs) != 4 {
		return nil, structureFailuref("node %d has %d neighbours, want 4", n, len(nbrs))
	}
	return nbrs, nil
}

// DetectRegionFrom attempts to grow one maximal node region from seed,
// bounded by maxRows x maxCols. On any structure failure the attempt is
// rolled back in full: every node this call added to visited is returned to
// not_visited, as if the call never happened (a transactional attempt).
//
// maxRows/maxCols apply to this call directly: there is no hidden
// off-by-one skip on the first call of a run.
func (d *Detector) DetectRegionFrom(seed mesh.NodeID, maxRows, maxCols int) (*Region, error) {
	b := newBuildState(d)

	initQuad, err := b.findQuadFromPoint(seed)
	if err != nil {
		// findQuadFromPoint rolls back its own partial appends before
		// returning, so nothing further to undo here.
		return nil, err
	}

	// Phase B: extend first row forward.
	colsExpanded := 3
	current := initQuad
	for colsExpanded <= maxCols {
		next, err := b.extendQuadRow(current, false)
		if err != nil {
			break
		}
		current = next
		colsExpanded++
	}

	// Phase C: extend first row backward.
	current = mirrorCols(initQuad)
	for colsExpanded <= maxCols {
		next, err := b.extendQuadRow(current, true)
		if err != nil {
			break
		}
		current = next
		colsExpanded++
	}

	prevPrevRow, prevRow := *b.currentRow, *b.nextRow

	if len(prevRow) < 3 || len(prevPrevRow) < 3 {
		b.unvisitAll()
		return nil, structureFailuref("region too narrow (only %d columns)", len(prevRow))
	}

	b.advanceRow(false)

	// Phase D: extend subsequent rows.
	rowsExpanded := 3
	for rowsExpanded <= maxRows {
		if err := b.buildRowFromPrevRows(prevPrevRow, prevRow); err != nil {
			break
		}
		b.advanceRow(false)
		prevPrevRow, prevRow = prevRow, *b.currentRow
		rowsExpanded++
	}
	// Discard the trailing row: buildRowFromPrevRows rolls back its own
	// nodes on failure, so this row is always empty when we get here —
	// dropping it just unlinks the placeholder advanceRow opened for it.
	b.rows = b.rows[:len(b.rows)-1]

	// Phase E: extend previous rows (symmetric, walking upward).
	prevPrevRow, prevRow = *b.rows[1], *b.rows[0]
	b.currentRow, b.nextRow = b.rows[1], b.rows[0]
	b.advanceRow(true)

	for rowsExpanded <= maxRows {
		if err := b.buildRowFromPrevRows(prevPrevRow, prevRow); err != nil {
			break
		}
		b.advanceRow(true)
		prevPrevRow, prevRow = prevRow, *b.currentRow
		rowsExpanded++
	}
	// Discard the leading placeholder row, for the same reason as above.
	b.rows = b.rows[1:]

	out := make([][]mesh.NodeID, len(b.rows))
	for i, rp := range b.rows {
		out[i] = *rp
	}
	return &Region{Nodes: out}, nil
}

// DetectRegions runs the multi-region loop: starting from startNode, it
// repeatedly grows a region, then picks a new
// seed uniformly at random from not_visited minus a blacklist of seeds that
// have already failed. A structure failure blacklists its seed and
// increments a failure counter; a successful region resets the counter.
// Detection stops after maxRegions regions, after maxFail consecutive
// failures, or once not_visited (minus the blacklist) is exhausted.
func (d *Detector) DetectRegions(startNode mesh.NodeID, maxRows, maxCols, maxRegions, maxFail int) []*Region {
	var regions []*Region
	failed := make(map[mesh.NodeID]bool)
	fails := 0

	seed, ok := startNode, true
	for len(regions) < maxRegions && ok {
		region, err := d.DetectRegionFrom(seed, maxRows, maxCols)
		if err != nil {
			failed[seed] = true
			fails++
			if fails >= maxFail {
				return regions
			}
		} else {
			regions = append(regions, region)
			fails = 0
		}

		seed, ok = d.chooseSeed(failed)
	}
	return regions
}

// chooseSeed picks a node uniformly at random (or deterministically, if no
// rng was configured) from not_visited minus failed.
func (d *Detector) chooseSeed(failed map[mesh.NodeID]bool) (mesh.NodeID, bool) {
	candidates := make([]mesh.NodeID, 0, len(d.notVisited))
	for n := range d.notVisited {
		if !failed[n] {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	if d.rng == nil {
		return candidates[0], true
	}
	return candidates[d.rng.Intn(len(candidates))], true
}
