package detect

import "github.com/katalvlaran/meshtopo/mesh"

// setMinus returns the elements of base not present in excl, preserving
// base's relative order. Used throughout detection to express "neighbours
// of x, excluding the already-known ones" without allocating a map for
// small (degree-4) neighbour sets.
func setMinus(base []mesh.NodeID, excl ...mesh.NodeID) []mesh.NodeID {
	out := make([]mesh.NodeID, 0, len(base))
	for _, n := range base {
		if !containsID(excl, n) {
			out = append(out, n)
		}
	}
	return out
}

// setIntersect returns the elements present in both a and b, in a's order.
func setIntersect(a, b []mesh.NodeID) []mesh.NodeID {
	out := make([]mesh.NodeID, 0, len(a))
	for _, n := range a {
		if containsID(b, n) {
			out = append(out, n)
		}
	}
	return out
}

// containsID reports whether id is present in ids.
func containsID(ids []mesh.NodeID, id mesh.NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// sameSet reports whether a and b contain exactly the same elements,
// ignoring order and duplicates.
func sameSet(a, b []mesh.NodeID) bool {
	if len(a) != len(b) {
		// Still might be equal as sets if a has duplicates: fall back to
		// the map-based comparison.
		return setEqualSlow(a, b)
	}
	for _, x := range a {
		if !containsID(b, x) {
			return false
		}
	}
	return true
}

func setEqualSlow(a, b []mesh.NodeID) bool {
	seen := make(map[mesh.NodeID]bool, len(a))
	for _, x := range a {
		seen[x] = true
	}
	for _, x := range b {
		if !seen[x] {
			return false
		}
		delete(seen, x)
	}
	return len(seen) == 0
}
