package detect

import "github.com/katalvlaran/meshtopo/mesh"

// buildState owns the in-progress rows of a single DetectRegionFrom attempt.
// currentRow and nextRow alias elements of rows: advanceRow reslices rows
// but never copies a row, so appends through currentRow/nextRow land in
// the row stored in rows, mirroring the original's current_row/next_row
// aliasing into a single output list. DetectRegionFrom's prevPrevRow/
// prevRow locals are slice copies, taken only once a row is complete.
//
// Grounded on quad_mesh.py's DetectQuadStructure row/column bookkeeping,
// re-expressed with pointers in place of Python's shared list references.
type buildState struct {
	d *Detector

	currentRow *[]mesh.NodeID
	nextRow    *[]mesh.NodeID
	rows       []*[]mesh.NodeID
}

// newBuildState starts a fresh two-row attempt: row 0 (current) and row 1
// (next), both empty, both already linked into rows in that order.
func newBuildState(d *Detector) *buildState {
	row0 := make([]mesh.NodeID, 0, 4)
	row1 := make([]mesh.NodeID, 0, 4)
	b := &buildState{d: d}
	b.currentRow = &row0
	b.nextRow = &row1
	b.rows = []*[]mesh.NodeID{b.currentRow, b.nextRow}
	return b
}

func (b *buildState) appendToRow(row *[]mesh.NodeID, n mesh.NodeID) {
	*row = append(*row, n)
	b.d.visit(n)
}

func (b *buildState) prependToRow(row *[]mesh.NodeID, n mesh.NodeID) {
	*row = append([]mesh.NodeID{n}, *row...)
	b.d.visit(n)
}

func (b *buildState) appendToCurrentRow(n mesh.NodeID)  { b.appendToRow(b.currentRow, n) }
func (b *buildState) appendToNextRow(n mesh.NodeID)     { b.appendToRow(b.nextRow, n) }
func (b *buildState) prependToCurrentRow(n mesh.NodeID) { b.prependToRow(b.currentRow, n) }
func (b *buildState) prependToNextRow(n mesh.NodeID)    { b.prependToRow(b.nextRow, n) }

// advanceRow retires next_row into current_row and opens a fresh next_row,
// linking it into rows at the end (forward growth) or the front (reverse
// growth, used by phase E's upward extension).
func (b *buildState) advanceRow(reverse bool) {
	b.currentRow = b.nextRow
	fresh := make([]mesh.NodeID, 0, 4)
	b.nextRow = &fresh
	if reverse {
		b.rows = append([]*[]mesh.NodeID{b.nextRow}, b.rows...)
	} else {
		b.rows = append(b.rows, b.nextRow)
	}
}

// unvisitAll returns every node currently held in rows to not_visited. Used
// to fully roll back a DetectRegionFrom attempt whose seed rows came out
// too narrow to be worth a region at all.
func (b *buildState) unvisitAll() {
	for _, rp := range b.rows {
		for _, n := range *rp {
			b.d.unvisit(n)
		}
	}
}

// candidateNeighbours returns n's neighbours minus exclude, or nil if n is
// not an interior (degree-4) node — reaching a boundary node simply means
// there is nothing further to extend into, not a hard error.
func (b *buildState) candidateNeighbours(n mesh.NodeID, exclude ...mesh.NodeID) []mesh.NodeID {
	nbrs, err := b.d.neighbours(n)
	if err != nil {
		return nil
	}
	return setMinus(nbrs, exclude...)
}

// uniqueFresh returns the single not-yet-visited candidate among cands. It
// reports false if zero or more than one candidate qualifies: an
// "if not unique, fail" rule used throughout anchor-finding and row growth.
func uniqueFresh(d *Detector, cands []mesh.NodeID) (mesh.NodeID, bool) {
	var found mesh.NodeID
	count := 0
	for _, c := range cands {
		if d.notVisited[c] {
			found = c
			count++
		}
	}
	if count != 1 {
		return 0, false
	}
	return found, true
}

// boundarySafe checks the boundary-safety invariant for a just-placed
// node n: the intersection of n's adjacency with visited
// territory must equal exactly logicalNbrs, n's already-placed logical
// neighbours. Any additional visited neighbour means n has an edge into
// visited territory the region didn't expect — a structure failure.
func (b *buildState) boundarySafe(n mesh.NodeID, logicalNbrs ...mesh.NodeID) bool {
	nbrs, err := b.d.neighbours(n)
	if err != nil {
		return false
	}
	visitedCount := 0
	for _, nb := range nbrs {
		if nb == n || !b.d.visited[nb] {
			continue
		}
		visitedCount++
		if !containsID(logicalNbrs, nb) {
			return false
		}
	}
	return visitedCount == len(logicalNbrs)
}

// findQuadFromPoint anchors the very first quad of a region at seed. It
// tries each ordered pair (a, b) of seed's four neighbours:
// a pair is colinear through seed if adj(a) ∩ adj(b) = {seed} (skipped — a
// and b lie on the same logical axis as seed, not opposite corners); it is a
// corner pair if the intersection is {seed, x} for some x ≠ seed, which
// yields the quad seed=r2c1, a=r1c1, x=r1c2, b=r2c2. Any other intersection
// size is neither: skip and try the next pair. A candidate quad's four
// nodes are placed tentatively and removed again if the boundary-safety
// check fails, so a failed search leaves nothing to roll back.
func (b *buildState) findQuadFromPoint(seed mesh.NodeID) (quad, error) {
	seedNbrs, err := b.d.neighbours(seed)
	if err != nil {
		return quad{}, err
	}

	for i, a := range seedNbrs {
		if !b.d.notVisited[a] {
			continue
		}
		aNbrs, err := b.d.neighbours(a)
		if err != nil {
			continue
		}
		for j, bNode := range seedNbrs {
			if i == j || !b.d.notVisited[bNode] {
				continue
			}
			bNbrs, err := b.d.neighbours(bNode)
			if err != nil {
				continue
			}

			others := setMinus(setIntersect(aNbrs, bNbrs), seed)
			if len(others) != 1 {
				// size 0: colinear pair, a and b sit opposite seed on one
				// axis. size > 1: not a simple corner pair (wraparound-
				// like multiplicity). Either way, try the next pair.
				continue
			}
			x := others[0]
			if x == a || x == bNode || !b.d.notVisited[x] {
				continue
			}

			b.appendToCurrentRow(a)  // r1c1
			b.appendToNextRow(seed)  // r2c1
			b.appendToCurrentRow(x)  // r1c2
			b.appendToNextRow(bNode) // r2c2

			if !b.boundarySafe(a, x, seed) || !b.boundarySafe(seed, a, bNode) ||
				!b.boundarySafe(x, a, bNode) || !b.boundarySafe(bNode, seed, x) {
				// One of the four nodes has an edge into visited territory
				// beyond this quad's own internal edges — not a valid seed
				// quad. Undo and try the next pair.
				b.d.unvisit(a)
				b.d.unvisit(seed)
				b.d.unvisit(x)
				b.d.unvisit(bNode)
				*b.currentRow = (*b.currentRow)[:0]
				*b.nextRow = (*b.nextRow)[:0]
				continue
			}
			return quad{R1C1: a, R1C2: x, R2C1: seed, R2C2: bNode}, nil
		}
	}
	return quad{}, structureFailuref("no valid quad anchored at node %d", seed)
}

// extendQuadRow grows the row pair described by q by one more column:
// candidates A = adj(r1c_k) \ {r1c_k-1, r2c_k} and
// C = adj(r2c_k) \ {r2c_k-1, r1c_k}; the next column is the unique pair
// (α, γ) ∈ A×C with α ∈ adj(γ). Appends (forward growth) or prepends
// (reverse growth, used by phase C's backward pass over the seed row) to
// both current_row and next_row. The returned quad's shape is identical
// regardless of direction: the caller arranges for q to already be
// column-mirrored before the first reverse call.
func (b *buildState) extendQuadRow(q quad, reverse bool) (quad, error) {
	topCandidates := b.candidateNeighbours(q.R1C2, q.R1C1, q.R2C2)
	botCandidates := b.candidateNeighbours(q.R2C2, q.R2C1, q.R1C2)

	var alpha, gamma mesh.NodeID
	matches := 0
	for _, a := range topCandidates {
		if !b.d.notVisited[a] {
			continue
		}
		for _, c := range botCandidates {
			if a == c || !b.d.notVisited[c] {
				continue
			}
			if b.d.rel.IsNeighbor(a, c) {
				alpha, gamma = a, c
				matches++
			}
		}
	}
	if matches != 1 {
		return quad{}, structureFailuref("cannot extend row past columns %d/%d: %d candidate pairs", q.R1C2, q.R2C2, matches)
	}

	if reverse {
		b.prependToCurrentRow(alpha)
		b.prependToNextRow(gamma)
	} else {
		b.appendToCurrentRow(alpha)
		b.appendToNextRow(gamma)
	}

	if !b.boundarySafe(alpha, q.R1C2, gamma) || !b.boundarySafe(gamma, q.R2C2, alpha) {
		b.d.unvisit(alpha)
		b.d.unvisit(gamma)
		if reverse {
			*b.currentRow = (*b.currentRow)[1:]
			*b.nextRow = (*b.nextRow)[1:]
		} else {
			*b.currentRow = (*b.currentRow)[:len(*b.currentRow)-1]
			*b.nextRow = (*b.nextRow)[:len(*b.nextRow)-1]
		}
		return quad{}, structureFailuref("column past %d/%d has an edge into visited territory", q.R1C2, q.R2C2)
	}
	return quad{R1C1: q.R1C2, R1C2: alpha, R2C1: q.R2C2, R2C2: gamma}, nil
}

// buildRowFromPrevRows grows one new row into next_row from the two rows
// immediately behind it (the same per-column rule also builds "above" the
// seed rows when called with prevPrevRow/prevRow in upward order). A row
// narrower than 3 columns is rejected outright: there is no general rule
// for columns 0 and 1 independent of each other once fewer than 3 remain.
//
// Columns resolve in this order: middle columns k ∈ [1, cols-2] first
// (each the unique element of adj(prev_row[k]) minus its two
// row-neighbours and prev_prev_row[k]), then the last column (the unique
// common neighbour of the just-placed penultimate node and prev_row's
// last node), then column 0 (the unique neighbour of prev_row[0] that is
// also adjacent to the now-known column 1) — column 0 is necessarily
// computed last since its rule depends on column 1 already being known.
//
// A failure at any column rolls back every node this row placed: there
// are no partial rows in the output.
func (b *buildState) buildRowFromPrevRows(prevPrevRow, prevRow []mesh.NodeID) error {
	cols := len(prevRow)
	if cols <= 2 {
		return structureFailuref("row too narrow to extend (%d columns)", cols)
	}

	newRow := make([]mesh.NodeID, cols)
	placed := make([]bool, cols)
	rollback := func() {
		for i, ok := range placed {
			if ok {
				b.d.unvisit(newRow[i])
			}
		}
	}
	place := func(col int, n mesh.NodeID) {
		b.d.visit(n)
		newRow[col] = n
		placed[col] = true
	}

	for k := 1; k <= cols-2; k++ {
		cands := b.candidateNeighbours(prevRow[k], prevRow[k-1], prevRow[k+1], prevPrevRow[k])
		chosen, ok := uniqueFresh(b.d, cands)
		if !ok {
			rollback()
			return structureFailuref("row build failed at column %d", k)
		}
		place(k, chosen)
	}

	last := cols - 1
	lastCands := setIntersect(
		b.candidateNeighbours(newRow[last-1]),
		b.candidateNeighbours(prevRow[last], prevRow[last-1]),
	)
	chosenLast, ok := uniqueFresh(b.d, lastCands)
	if !ok {
		rollback()
		return structureFailuref("row build failed at last column")
	}
	place(last, chosenLast)

	firstCands := setIntersect(
		b.candidateNeighbours(prevRow[0], prevPrevRow[0]),
		b.candidateNeighbours(newRow[1]),
	)
	chosenFirst, ok := uniqueFresh(b.d, firstCands)
	if !ok {
		rollback()
		return structureFailuref("row build failed at column 0")
	}
	place(0, chosenFirst)

	*b.nextRow = append(*b.nextRow, newRow...)
	return nil
}
